package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodificarLista aceita os três formatos de envelope que a API devolve para
// coleções (lista pura, {"items": [...]} e objeto com a chave da entidade,
// como {"clients": [...]}) e entrega sempre a mesma fatia em memória. Esta é a
// única fronteira do portal que conhece essa variação de formato.
func DecodificarLista[T any](dados []byte, chaves ...string) ([]T, error) {
	corpo := bytes.TrimSpace(dados)
	if len(corpo) == 0 || bytes.Equal(corpo, []byte("null")) {
		return []T{}, nil
	}

	if corpo[0] == '[' {
		var lista []T
		if err := json.Unmarshal(corpo, &lista); err != nil {
			return nil, fmt.Errorf("decodificar lista: %w", err)
		}
		return lista, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(corpo, &envelope); err != nil {
		return nil, fmt.Errorf("decodificar envelope: %w", err)
	}

	chaves = append(chaves, "items")
	for _, chave := range chaves {
		bruto, ok := envelope[chave]
		if !ok || bytes.Equal(bytes.TrimSpace(bruto), []byte("null")) {
			continue
		}
		var lista []T
		if err := json.Unmarshal(bruto, &lista); err != nil {
			return nil, fmt.Errorf("decodificar envelope %q: %w", chave, err)
		}
		return lista, nil
	}
	return nil, fmt.Errorf("resposta sem lista reconhecível (chaves esperadas: %s)", strings.Join(chaves, ", "))
}

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registro struct {
	ID   string `json:"id"`
	Nome string `json:"name"`
}

func TestDecodificarListaNormalizaEnvelopes(t *testing.T) {
	esperado := []registro{{ID: "1", Nome: "Acme"}, {ID: "2", Nome: "Beta"}}

	casos := map[string]string{
		"lista pura":        `[{"id":"1","name":"Acme"},{"id":"2","name":"Beta"}]`,
		"envelope items":    `{"items":[{"id":"1","name":"Acme"},{"id":"2","name":"Beta"}]}`,
		"envelope entidade": `{"clients":[{"id":"1","name":"Acme"},{"id":"2","name":"Beta"}]}`,
	}
	for nome, corpo := range casos {
		t.Run(nome, func(t *testing.T) {
			lista, err := DecodificarLista[registro]([]byte(corpo), "clients")
			require.NoError(t, err)
			assert.Equal(t, esperado, lista)
		})
	}
}

func TestDecodificarListaVazios(t *testing.T) {
	for nome, corpo := range map[string]string{
		"corpo vazio": "",
		"null":        "null",
		"espacos":     "   ",
	} {
		t.Run(nome, func(t *testing.T) {
			lista, err := DecodificarLista[registro]([]byte(corpo), "clients")
			require.NoError(t, err)
			assert.Empty(t, lista)
			assert.NotNil(t, lista)
		})
	}
}

func TestDecodificarListaChaveNula(t *testing.T) {
	// chave presente mas nula cai para a próxima chave conhecida
	lista, err := DecodificarLista[registro]([]byte(`{"clients":null,"items":[{"id":"9","name":"X"}]}`), "clients")
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}

func TestDecodificarListaEnvelopeDesconhecido(t *testing.T) {
	_, err := DecodificarLista[registro]([]byte(`{"outra_coisa":[]}`), "clients")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clients")
	assert.Contains(t, err.Error(), "items")
}

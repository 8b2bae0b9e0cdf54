package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Cliente é o único ponto de contato com a API REST do sistema. Todos os
// recursos (contratos, clientes, parcelas...) passam por aqui, que cuida do
// bearer token, da serialização JSON e da tradução de falhas HTTP.
type Cliente struct {
	base string
	http *http.Client
	log  *zap.Logger
}

// Novo cria um cliente apontando para a base versionada da API.
func Novo(base string, timeout time.Duration, log *zap.Logger) *Cliente {
	return &Cliente{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

func (c *Cliente) fazer(ctx context.Context, metodo, caminho, token string, corpo any) ([]byte, error) {
	var leitor io.Reader
	if corpo != nil {
		dados, err := json.Marshal(corpo)
		if err != nil {
			return nil, fmt.Errorf("serializar payload: %w", err)
		}
		leitor = bytes.NewReader(dados)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, c.base+caminho, leitor)
	if err != nil {
		return nil, fmt.Errorf("montar requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if corpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("falha de rede na API", zap.String("caminho", caminho), zap.Error(err))
		return nil, fmt.Errorf("chamar API: %w", err)
	}
	defer resp.Body.Close()

	dados, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ler resposta: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := novoErro(resp.StatusCode, dados)
		c.log.Debug("API respondeu erro",
			zap.String("metodo", metodo),
			zap.String("caminho", caminho),
			zap.Int("status", resp.StatusCode),
			zap.String("mensagem", apiErr.Mensagem))
		return nil, apiErr
	}
	return dados, nil
}

func (c *Cliente) decodificar(dados []byte, saida any) error {
	if saida == nil || len(bytes.TrimSpace(dados)) == 0 {
		return nil
	}
	if err := json.Unmarshal(dados, saida); err != nil {
		return fmt.Errorf("decodificar resposta: %w", err)
	}
	return nil
}

// Get busca um recurso e decodifica o JSON em saida (quando não nula).
func (c *Cliente) Get(ctx context.Context, token, caminho string, saida any) error {
	dados, err := c.fazer(ctx, http.MethodGet, caminho, token, nil)
	if err != nil {
		return err
	}
	return c.decodificar(dados, saida)
}

// GetBruto busca um recurso e devolve o corpo sem interpretar, para os
// chamadores que precisam lidar com envelopes heterogêneos.
func (c *Cliente) GetBruto(ctx context.Context, token, caminho string) ([]byte, error) {
	return c.fazer(ctx, http.MethodGet, caminho, token, nil)
}

// Post cria um recurso.
func (c *Cliente) Post(ctx context.Context, token, caminho string, corpo, saida any) error {
	dados, err := c.fazer(ctx, http.MethodPost, caminho, token, corpo)
	if err != nil {
		return err
	}
	return c.decodificar(dados, saida)
}

// Put substitui um recurso.
func (c *Cliente) Put(ctx context.Context, token, caminho string, corpo, saida any) error {
	dados, err := c.fazer(ctx, http.MethodPut, caminho, token, corpo)
	if err != nil {
		return err
	}
	return c.decodificar(dados, saida)
}

// Patch altera parcialmente um recurso.
func (c *Cliente) Patch(ctx context.Context, token, caminho string, corpo, saida any) error {
	dados, err := c.fazer(ctx, http.MethodPatch, caminho, token, corpo)
	if err != nil {
		return err
	}
	return c.decodificar(dados, saida)
}

// Delete remove um recurso.
func (c *Cliente) Delete(ctx context.Context, token, caminho string) error {
	_, err := c.fazer(ctx, http.MethodDelete, caminho, token, nil)
	return err
}

// Lista busca uma coleção e normaliza qualquer um dos envelopes usados pela
// API para a chave informada (além de "items" e da lista pura).
func Lista[T any](ctx context.Context, c *Cliente, token, caminho, chave string) ([]T, error) {
	dados, err := c.GetBruto(ctx, token, caminho)
	if err != nil {
		return nil, err
	}
	return DecodificarLista[T](dados, chave)
}

package parcela

import (
	"context"
	"net/url"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
)

// Filtros da listagem de parcelas, repassados à API via query string.
type Filtros struct {
	Faturada string // "true", "false" ou vazio (todas)
	Mes      string // competência exata, ex.: "Jan/25"
	Ano      string // sufixo de ano, ex.: "25"
}

func (f Filtros) query() string {
	valores := url.Values{}
	if f.Faturada != "" {
		valores.Set("billed", f.Faturada)
	}
	if f.Mes != "" {
		valores.Set("month", f.Mes)
	}
	if f.Ano != "" {
		valores.Set("year", f.Ano)
	}
	if len(valores) == 0 {
		return ""
	}
	return "?" + valores.Encode()
}

// Recurso é o invólucro tipado da API de parcelas.
type Recurso struct {
	API *api.Cliente
}

func NovoRecurso(c *api.Cliente) *Recurso { return &Recurso{API: c} }

// Listar devolve as parcelas com os filtros aplicados no servidor.
func (r *Recurso) Listar(ctx context.Context, token string, filtros Filtros) ([]Parcela, error) {
	return api.Lista[Parcela](ctx, r.API, token, "/installments"+filtros.query(), "installments")
}

// Resumir busca o consolidado de faturamento.
func (r *Recurso) Resumir(ctx context.Context, token string) (*Resumo, error) {
	var resumo Resumo
	if err := r.API.Get(ctx, token, "/installments/summary", &resumo); err != nil {
		return nil, err
	}
	return &resumo, nil
}

// Criar cadastra uma parcela.
func (r *Recurso) Criar(ctx context.Context, token string, dto CriarParcelaDTO) (*Parcela, error) {
	var criada Parcela
	if err := r.API.Post(ctx, token, "/installments", dto, &criada); err != nil {
		return nil, err
	}
	return &criada, nil
}

// MarcarFaturada alterna o sinal de faturamento da parcela.
func (r *Recurso) MarcarFaturada(ctx context.Context, token, id string, faturada bool) error {
	corpo := struct {
		Faturada bool `json:"billed"`
	}{Faturada: faturada}
	return r.API.Patch(ctx, token, "/installments/"+id+"/mark-billed", corpo, nil)
}

// Remover exclui a parcela.
func (r *Recurso) Remover(ctx context.Context, token, id string) error {
	return r.API.Delete(ctx, token, "/installments/"+id)
}

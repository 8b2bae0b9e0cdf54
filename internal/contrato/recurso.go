package contrato

import (
	"context"
	"net/url"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
)

// Recurso é o invólucro tipado da API de contratos.
type Recurso struct {
	API *api.Cliente
}

func NovoRecurso(c *api.Cliente) *Recurso { return &Recurso{API: c} }

// Listar devolve os contratos, opcionalmente filtrados por status no próprio
// servidor.
func (r *Recurso) Listar(ctx context.Context, token, status string) ([]Contrato, error) {
	caminho := "/contracts"
	if status != "" {
		caminho += "?status=" + url.QueryEscape(status)
	}
	return api.Lista[Contrato](ctx, r.API, token, caminho, "contracts")
}

// Criar cadastra um contrato e devolve o registro com os agregados do
// servidor.
func (r *Recurso) Criar(ctx context.Context, token string, dto CriarContratoDTO) (*Contrato, error) {
	var criado Contrato
	if err := r.API.Post(ctx, token, "/contracts", dto, &criado); err != nil {
		return nil, err
	}
	return &criado, nil
}

// Remover exclui um contrato; parcelas dependentes fazem a API recusar.
func (r *Recurso) Remover(ctx context.Context, token, id string) error {
	return r.API.Delete(ctx, token, "/contracts/"+id)
}

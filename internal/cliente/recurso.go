package cliente

import (
	"context"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
)

// Recurso é o invólucro tipado da API de clientes.
type Recurso struct {
	API *api.Cliente
}

func NovoRecurso(c *api.Cliente) *Recurso { return &Recurso{API: c} }

// Listar devolve os clientes visíveis para a sessão, qualquer que seja o
// envelope usado pela API.
func (r *Recurso) Listar(ctx context.Context, token string) ([]Cliente, error) {
	return api.Lista[Cliente](ctx, r.API, token, "/clients", "clients")
}

// Criar cadastra um cliente.
func (r *Recurso) Criar(ctx context.Context, token string, dto CriarClienteDTO) (*Cliente, error) {
	var criado Cliente
	if err := r.API.Post(ctx, token, "/clients", dto, &criado); err != nil {
		return nil, err
	}
	return &criado, nil
}

// Atualizar altera um cliente existente.
func (r *Recurso) Atualizar(ctx context.Context, token, id string, dto AtualizarClienteDTO) (*Cliente, error) {
	var atualizado Cliente
	if err := r.API.Put(ctx, token, "/clients/"+id, dto, &atualizado); err != nil {
		return nil, err
	}
	return &atualizado, nil
}

// Remover exclui o cliente; contratos dependentes fazem a API recusar.
func (r *Recurso) Remover(ctx context.Context, token, id string) error {
	return r.API.Delete(ctx, token, "/clients/"+id)
}

package parceiro

import (
	"context"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
)

// Recurso é o invólucro tipado da API de parceiros.
type Recurso struct {
	API *api.Cliente
}

func NovoRecurso(c *api.Cliente) *Recurso { return &Recurso{API: c} }

// Listar devolve todos os parceiros visíveis para a sessão.
func (r *Recurso) Listar(ctx context.Context, token string) ([]Parceiro, error) {
	return api.Lista[Parceiro](ctx, r.API, token, "/partners", "partners")
}

// ClienteVinculado é a visão mínima dos clientes usada na expansão por
// parceiro, lida direto da API de clientes.
type ClienteVinculado struct {
	ID         string  `json:"id"`
	Nome       string  `json:"name"`
	CNPJ       string  `json:"cnpj,omitempty"`
	ParceiroID *string `json:"partner_id,omitempty"`
}

// ListarVinculos devolve os clientes agrupados por parceiro.
func (r *Recurso) ListarVinculos(ctx context.Context, token string) (map[string][]ClienteVinculado, error) {
	clientes, err := api.Lista[ClienteVinculado](ctx, r.API, token, "/clients", "clients")
	if err != nil {
		return nil, err
	}
	vinculos := make(map[string][]ClienteVinculado)
	for _, c := range clientes {
		if c.ParceiroID != nil {
			vinculos[*c.ParceiroID] = append(vinculos[*c.ParceiroID], c)
		}
	}
	return vinculos, nil
}

// Criar cadastra um novo parceiro.
func (r *Recurso) Criar(ctx context.Context, token string, dto CriarParceiroDTO) (*Parceiro, error) {
	var criado Parceiro
	if err := r.API.Post(ctx, token, "/partners", dto, &criado); err != nil {
		return nil, err
	}
	return &criado, nil
}

// Atualizar altera nome, atividade ou marcação estratégica.
func (r *Recurso) Atualizar(ctx context.Context, token, id string, dto AtualizarParceiroDTO) (*Parceiro, error) {
	var atualizado Parceiro
	if err := r.API.Put(ctx, token, "/partners/"+id, dto, &atualizado); err != nil {
		return nil, err
	}
	return &atualizado, nil
}

// Remover exclui o parceiro; a API recusa com conflito quando há dependentes.
func (r *Recurso) Remover(ctx context.Context, token, id string) error {
	return r.API.Delete(ctx, token, "/partners/"+id)
}

package consultor

import (
	"context"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
)

// Recurso é o invólucro tipado da API de consultores.
type Recurso struct {
	API *api.Cliente
}

func NovoRecurso(c *api.Cliente) *Recurso { return &Recurso{API: c} }

// ListarGrupos devolve os consultores agrupados por contrato.
func (r *Recurso) ListarGrupos(ctx context.Context, token string) ([]Grupo, error) {
	return api.Lista[Grupo](ctx, r.API, token, "/consultants", "groups")
}

// Criar aloca um novo consultor a um contrato.
func (r *Recurso) Criar(ctx context.Context, token string, dto CriarConsultorDTO) (*Consultor, error) {
	var criado Consultor
	if err := r.API.Post(ctx, token, "/consultants", dto, &criado); err != nil {
		return nil, err
	}
	return &criado, nil
}

// Feedbacks devolve o histórico de avaliações do consultor.
func (r *Recurso) Feedbacks(ctx context.Context, token, consultorID string) ([]Feedback, error) {
	return api.Lista[Feedback](ctx, r.API, token, "/feedbacks/"+consultorID, "feedbacks")
}

package usuario

import (
	"context"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
)

// Recurso é o invólucro tipado da API de autenticação e usuários.
type Recurso struct {
	API *api.Cliente
}

func NovoRecurso(c *api.Cliente) *Recurso { return &Recurso{API: c} }

// Login autentica as credenciais e devolve token + usuário. É a única
// chamada da API feita sem bearer token.
func (r *Recurso) Login(ctx context.Context, credenciais Credenciais) (*RespostaLogin, error) {
	var resposta RespostaLogin
	if err := r.API.Post(ctx, "", "/auth/login", credenciais, &resposta); err != nil {
		return nil, err
	}
	return &resposta, nil
}

// Listar devolve os usuários visíveis para a sessão.
func (r *Recurso) Listar(ctx context.Context, token string) ([]Usuario, error) {
	return api.Lista[Usuario](ctx, r.API, token, "/auth/users", "users")
}

// Criar cadastra um usuário.
func (r *Recurso) Criar(ctx context.Context, token string, dto CriarUsuarioDTO) (*Usuario, error) {
	var criado Usuario
	if err := r.API.Post(ctx, token, "/auth/users", dto, &criado); err != nil {
		return nil, err
	}
	return &criado, nil
}

// Atualizar altera um usuário existente.
func (r *Recurso) Atualizar(ctx context.Context, token, id string, dto AtualizarUsuarioDTO) (*Usuario, error) {
	var atualizado Usuario
	if err := r.API.Put(ctx, token, "/auth/users/"+id, dto, &atualizado); err != nil {
		return nil, err
	}
	return &atualizado, nil
}

// Remover exclui o usuário.
func (r *Recurso) Remover(ctx context.Context, token, id string) error {
	return r.API.Delete(ctx, token, "/auth/users/"+id)
}

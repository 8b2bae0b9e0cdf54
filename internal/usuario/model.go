package usuario

import "github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"

// Usuario do sistema, com papel e vínculo opcional de parceiro.
type Usuario struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Papel        string  `json:"role"`
	ParceiroID   *string `json:"partner_id"`
	Ativo        bool    `json:"is_active"`
	CriadoEm     string  `json:"created_at"`
	AtualizadoEm string  `json:"updated_at"`
}

// ChaveParceiro devolve o vínculo como string simples para os filtros.
func (u Usuario) ChaveParceiro() string {
	if u.ParceiroID == nil {
		return ""
	}
	return *u.ParceiroID
}

// Credenciais enviadas ao login.
type Credenciais struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RespostaLogin devolvida pela API: o token e o registro do usuário que
// passam a compor a sessão.
type RespostaLogin struct {
	Token   string         `json:"token"`
	Usuario sessao.Usuario `json:"user"`
}

// CriarUsuarioDTO é o payload de criação.
type CriarUsuarioDTO struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Senha      string  `json:"password"`
	Papel      string  `json:"role"`
	ParceiroID *string `json:"partner_id"`
}

// AtualizarUsuarioDTO é o payload de edição/ativação.
type AtualizarUsuarioDTO struct {
	Username   string  `json:"username,omitempty"`
	Email      string  `json:"email,omitempty"`
	Papel      string  `json:"role,omitempty"`
	ParceiroID *string `json:"partner_id,omitempty"`
	Ativo      *bool   `json:"is_active,omitempty"`
}

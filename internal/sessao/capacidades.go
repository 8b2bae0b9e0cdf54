package sessao

import "encoding/json"

// Papéis aceitos pelo sistema. Qualquer outro valor zera as capacidades.
const (
	PapelAdminGlobal     = "admin_global"
	PapelAdminParceiro   = "admin_partner"
	PapelUsuarioParceiro = "user_partner"
)

// Usuario é o registro serializado que acompanha o token da sessão.
// Os nomes de campo seguem exatamente o contrato da API.
type Usuario struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Papel      string  `json:"role"`
	ParceiroID *string `json:"partner_id"`
	Ativo      bool    `json:"is_active"`
}

// Capacidades descreve tudo que as telas precisam saber sobre a sessão.
// É derivada uma única vez por requisição e injetada via contexto, no lugar
// das leituras avulsas de armazenamento que cada tela fazia por conta própria.
type Capacidades struct {
	Autenticado        bool
	Papel              string
	ParceiroID         string
	Usuario            Usuario
	PodeGerirParceiros bool
	PodeGerirClientes  bool
	PodeGerirUsuarios  bool
	VisaoCliente       bool
}

// AdminGlobal indica acesso irrestrito entre parceiros.
func (c Capacidades) AdminGlobal() bool { return c.Papel == PapelAdminGlobal }

// Resolver deriva as capacidades a partir do registro serializado do usuário.
// Entrada ausente, malformada ou com papel desconhecido resulta no descritor
// zerado e não autenticado; a função nunca falha.
func Resolver(bruto []byte) Capacidades {
	if len(bruto) == 0 {
		return Capacidades{}
	}

	var u Usuario
	if err := json.Unmarshal(bruto, &u); err != nil {
		return Capacidades{}
	}

	caps := Capacidades{Autenticado: true, Papel: u.Papel, Usuario: u}
	if u.ParceiroID != nil {
		caps.ParceiroID = *u.ParceiroID
	}

	switch u.Papel {
	case PapelAdminGlobal:
		caps.PodeGerirParceiros = true
		caps.PodeGerirClientes = true
		caps.PodeGerirUsuarios = true
	case PapelAdminParceiro:
		caps.PodeGerirUsuarios = true
	case PapelUsuarioParceiro:
		caps.VisaoCliente = true
	default:
		return Capacidades{}
	}
	return caps
}

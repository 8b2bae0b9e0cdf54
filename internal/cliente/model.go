package cliente

import "github.com/wsbdeveloper/portal-coddfy-frontend/internal/parceiro"

// Cliente da consultoria, opcionalmente vinculado a um parceiro.
type Cliente struct {
	ID           string             `json:"id"`
	Nome         string             `json:"name"`
	CNPJ         string             `json:"cnpj,omitempty"`
	RazaoSocial  string             `json:"razao_social,omitempty"`
	ParceiroID   *string            `json:"partner_id,omitempty"`
	Parceiro     *parceiro.Parceiro `json:"partner,omitempty"`
	CriadoEm     string             `json:"created_at"`
	AtualizadoEm string             `json:"updated_at"`
}

// ChaveParceiro devolve o vínculo de parceiro como string simples para os
// filtros de listagem.
func (c Cliente) ChaveParceiro() string {
	if c.ParceiroID == nil {
		return ""
	}
	return *c.ParceiroID
}

// CriarClienteDTO é o payload de criação. O CNPJ vai sempre sem máscara.
type CriarClienteDTO struct {
	Nome        string  `json:"name"`
	CNPJ        string  `json:"cnpj,omitempty"`
	RazaoSocial string  `json:"razao_social,omitempty"`
	ParceiroID  *string `json:"partner_id,omitempty"`
}

// AtualizarClienteDTO é o payload de edição.
type AtualizarClienteDTO struct {
	Nome        string  `json:"name"`
	CNPJ        string  `json:"cnpj,omitempty"`
	RazaoSocial string  `json:"razao_social,omitempty"`
	ParceiroID  *string `json:"partner_id,omitempty"`
}

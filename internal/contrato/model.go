package contrato

import "github.com/wsbdeveloper/portal-coddfy-frontend/internal/cliente"

// Status possíveis de um contrato, conforme derivados pelo servidor.
const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
	StatusAVencer = "a_vencer"
)

// Contrato de consultoria. Valores monetários chegam como string e os
// agregados (saldo, percentual) já vêm calculados do servidor; aqui eles são
// apenas formatados, nunca recalculados.
type Contrato struct {
	ID                 string             `json:"id"`
	Nome               string             `json:"name"`
	ClienteID          string             `json:"client_id"`
	ValorTotal         string             `json:"total_value"`
	ValorFaturado      string             `json:"billed_value"`
	Saldo              string             `json:"balance"`
	Status             string             `json:"status"`
	DataFim            string             `json:"end_date"`
	PercentualFaturado float64            `json:"billed_percentage"`
	CriadoEm           string             `json:"created_at"`
	AtualizadoEm       string             `json:"updated_at"`
	Cliente            *cliente.Cliente   `json:"client,omitempty"`
	Parcelas           []ParcelaResumo    `json:"installments,omitempty"`
	Consultores        []ConsultorAlocado `json:"consultants,omitempty"`
}

// ParcelaResumo é a visão reduzida das parcelas aninhadas no contrato.
type ParcelaResumo struct {
	ID       string `json:"id"`
	Mes      string `json:"month"`
	Valor    string `json:"value"`
	Faturada bool   `json:"billed"`
}

// ConsultorAlocado é a visão reduzida dos consultores aninhados no contrato.
type ConsultorAlocado struct {
	ID       string `json:"id"`
	Nome     string `json:"name"`
	Funcao   string `json:"role"`
	Feedback int    `json:"feedback"`
}

// RotuloStatus devolve o texto exibido no badge de status.
func RotuloStatus(status string) string {
	switch status {
	case StatusAtivo:
		return "Ativo"
	case StatusInativo:
		return "Inativo"
	case StatusAVencer:
		return "A Vencer"
	default:
		return status
	}
}

// NomeCliente devolve o nome aninhado do cliente, quando presente.
func (c Contrato) NomeCliente() string {
	if c.Cliente == nil {
		return ""
	}
	return c.Cliente.Nome
}

// CriarContratoDTO é o payload de criação: valor total como número JSON e
// data de vencimento em ISO 8601.
type CriarContratoDTO struct {
	Nome       string  `json:"name"`
	ClienteID  string  `json:"client_id"`
	ValorTotal float64 `json:"total_value"`
	Status     string  `json:"status"`
	DataFim    string  `json:"end_date"`
}

package painel

// Estatisticas gerais calculadas pelo servidor.
type Estatisticas struct {
	ContratosAtivos      int     `json:"active_contracts"`
	ContratosInativos    int     `json:"inactive_contracts"`
	ConsultoresAlocados  int     `json:"allocated_consultants"`
	FeedbackMedio        float64 `json:"average_feedback"`
	ValorTotalContratos  string  `json:"total_contracts_value"`
	ValorTotalFaturado   string  `json:"total_billed_value"`
	SaldoTotal           string  `json:"total_balance"`
}

// ContratoVencendo é um contrato próximo do fim de vigência.
type ContratoVencendo struct {
	ID             string `json:"id"`
	Nome           string `json:"name"`
	ClienteNome    string `json:"client_name"`
	DataFim        string `json:"end_date"`
	DiasRestantes  int    `json:"days_remaining"`
	Status         string `json:"status"`
}

// ResumoFinanceiro consolidado do servidor; o portal só formata.
type ResumoFinanceiro struct {
	ValorTotal         string  `json:"total_value"`
	ValorFaturado      string  `json:"billed_value"`
	Saldo              string  `json:"balance"`
	PercentualFaturado float64 `json:"billed_percentage"`
}

// Dados completos do painel.
type Dados struct {
	Estatisticas      Estatisticas       `json:"stats"`
	ContratosVencendo []ContratoVencendo `json:"expiring_contracts"`
	ResumoFinanceiro  ResumoFinanceiro   `json:"financial_summary"`
}

// Urgente marca contratos a menos de quinze dias do vencimento.
func (c ContratoVencendo) Urgente() bool { return c.DiasRestantes < 15 }

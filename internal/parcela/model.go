package parcela

// Parcela é um ciclo de faturamento de um contrato. A competência usa o
// formato livre "Mes/AA" (ex.: Jan/25) e os campos de nota e datas são
// opcionais no cadastro.
type Parcela struct {
	ID                    string           `json:"id"`
	ContratoID            string           `json:"contract_id"`
	Mes                   string           `json:"month"`
	Valor                 string           `json:"value"`
	Faturada              bool             `json:"billed"`
	NumeroNota            string           `json:"invoice_number,omitempty"`
	DataFaturamento       string           `json:"billing_date,omitempty"`
	PrazoPagamento        string           `json:"payment_term,omitempty"`
	DataPrevistaPagamento string           `json:"expected_payment_date,omitempty"`
	DataPagamento         string           `json:"payment_date,omitempty"`
	CriadoEm              string           `json:"created_at"`
	AtualizadoEm          string           `json:"updated_at"`
	Contrato              *ContratoResumo  `json:"contract,omitempty"`
}

// ContratoResumo é a visão reduzida do contrato aninhado na parcela.
type ContratoResumo struct {
	ID      string        `json:"id"`
	Nome    string        `json:"name"`
	Cliente ClienteResumo `json:"client"`
}

// ClienteResumo carrega só o nome do cliente para exibição.
type ClienteResumo struct {
	Nome string `json:"name"`
}

// NomeContrato devolve o nome do contrato aninhado, quando presente.
func (p Parcela) NomeContrato() string {
	if p.Contrato == nil {
		return ""
	}
	return p.Contrato.Nome
}

// Resumo consolidado de faturamento calculado pelo servidor.
type Resumo struct {
	TotalFaturado      float64          `json:"total_billed"`
	TotalPendente      float64          `json:"total_pending"`
	Total              float64          `json:"total"`
	QtdeFaturadas      int              `json:"count_billed"`
	QtdePendentes      int              `json:"count_pending"`
	PercentualFaturado float64          `json:"percentage_billed"`
	Contratos          []ResumoContrato `json:"contracts"`
}

// ResumoContrato é a linha do resumo por contrato.
type ResumoContrato struct {
	ContratoID    string  `json:"contract_id"`
	ContratoNome  string  `json:"contract_name"`
	TotalParcelas int     `json:"total_installments"`
	ValorTotal    float64 `json:"total_value"`
	ValorFaturado float64 `json:"billed_value"`
	ValorPendente float64 `json:"pending_value"`
}

// CriarParcelaDTO é o payload de criação. Datas, quando preenchidas, vão em
// ISO 8601.
type CriarParcelaDTO struct {
	ContratoID            string  `json:"contract_id"`
	Mes                   string  `json:"month"`
	Valor                 float64 `json:"value"`
	NumeroNota            string  `json:"invoice_number,omitempty"`
	DataFaturamento       string  `json:"billing_date,omitempty"`
	PrazoPagamento        string  `json:"payment_term,omitempty"`
	DataPrevistaPagamento string  `json:"expected_payment_date,omitempty"`
	DataPagamento         string  `json:"payment_date,omitempty"`
}

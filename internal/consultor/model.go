package consultor

// Consultor alocado a exatamente um contrato, avaliado por uma nota de
// feedback de 0 a 100.
type Consultor struct {
	ID             string `json:"id"`
	Nome           string `json:"name"`
	Funcao         string `json:"role"`
	ContratoID     string `json:"contract_id"`
	ParceiroID     string `json:"partner_id,omitempty"`
	Feedback       int    `json:"feedback"`
	CorPerformance string `json:"performance_color,omitempty"`
	CriadoEm       string `json:"created_at"`
	AtualizadoEm   string `json:"updated_at"`
}

// Grupo é a visão de consultores agregada por contrato que a API devolve.
type Grupo struct {
	ContratoID       string      `json:"contract_id"`
	ContratoNome     string      `json:"contract_name"`
	ClienteNome      string      `json:"client_name"`
	TotalConsultores int         `json:"total_consultants"`
	FeedbackMedio    float64     `json:"average_feedback"`
	Consultores      []Consultor `json:"consultants"`
}

// Feedback registrado para um consultor ao longo do tempo.
type Feedback struct {
	ID          string `json:"id"`
	ConsultorID string `json:"consultant_id"`
	Nota        int    `json:"score"`
	Comentario  string `json:"comment,omitempty"`
	CriadoEm    string `json:"created_at"`
}

// CriarConsultorDTO é o payload de criação.
type CriarConsultorDTO struct {
	Nome       string `json:"name"`
	Funcao     string `json:"role"`
	ContratoID string `json:"contract_id"`
	ParceiroID string `json:"partner_id,omitempty"`
	Feedback   int    `json:"feedback"`
}

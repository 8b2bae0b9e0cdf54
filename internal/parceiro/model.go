package parceiro

// Parceiro é a fronteira de segregação de clientes e usuários.
type Parceiro struct {
	ID           string `json:"id"`
	Nome         string `json:"name"`
	Ativo        bool   `json:"is_active"`
	Estrategico  bool   `json:"is_strategic"`
	CriadoEm     string `json:"created_at"`
	AtualizadoEm string `json:"updated_at"`
}

// CriarParceiroDTO é o payload de criação enviado à API.
type CriarParceiroDTO struct {
	Nome        string `json:"name"`
	Estrategico bool   `json:"is_strategic"`
}

// AtualizarParceiroDTO é o payload de edição/ativação.
type AtualizarParceiroDTO struct {
	Nome        string `json:"name,omitempty"`
	Ativo       *bool  `json:"is_active,omitempty"`
	Estrategico *bool  `json:"is_strategic,omitempty"`
}

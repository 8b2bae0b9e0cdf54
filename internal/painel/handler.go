package painel

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/web"
)

// Recurso é o invólucro tipado da API do painel.
type Recurso struct {
	API *api.Cliente
}

func NovoRecurso(c *api.Cliente) *Recurso { return &Recurso{API: c} }

// Buscar carrega a visão consolidada do painel.
func (r *Recurso) Buscar(ctx context.Context, token string) (*Dados, error) {
	var dados Dados
	if err := r.API.Get(ctx, token, "/dashboard", &dados); err != nil {
		return nil, err
	}
	return &dados, nil
}

// Handler da página inicial.
type Handler struct {
	Recurso *Recurso
	Sessoes *sessao.Armazenamento
	Paginas *web.Renderizador
	Log     *zap.Logger
}

func NovoHandler(recurso *Recurso, sessoes *sessao.Armazenamento, paginas *web.Renderizador, log *zap.Logger) *Handler {
	return &Handler{Recurso: recurso, Sessoes: sessoes, Paginas: paginas, Log: log}
}

// Exibir renderiza o painel com estatísticas, resumo financeiro e contratos
// próximos do vencimento.
func (h *Handler) Exibir(w http.ResponseWriter, r *http.Request) {
	caps := sessao.Das(r)
	token := sessao.Token(r)

	dados, err := h.Recurso.Buscar(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}

	var mensagemErro string
	if err != nil {
		mensagemErro = api.Mensagem(err)
		dados = &Dados{}
	}

	h.Paginas.Pagina(w, "painel", struct {
		web.Base
		Dados *Dados
	}{
		Base:  web.Base{Titulo: "Dashboard", Caps: caps, Erro: mensagemErro},
		Dados: dados,
	})
}

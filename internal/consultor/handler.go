package consultor

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/contrato"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formulario"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/parceiro"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/web"
)

// Handler das telas de consultores.
type Handler struct {
	Recurso   *Recurso
	Contratos *contrato.Recurso
	Parceiros *parceiro.Recurso
	Sessoes   *sessao.Armazenamento
	Paginas   *web.Renderizador
	Log       *zap.Logger
}

func NovoHandler(recurso *Recurso, contratos *contrato.Recurso, parceiros *parceiro.Recurso, sessoes *sessao.Armazenamento, paginas *web.Renderizador, log *zap.Logger) *Handler {
	return &Handler{Recurso: recurso, Contratos: contratos, Parceiros: parceiros, Sessoes: sessoes, Paginas: paginas, Log: log}
}

// NovoFormulario monta o esquema do cadastro de consultor. A nota de
// feedback fica restrita à faixa 0–100 antes de qualquer envio; o parceiro
// só aparece para o admin global.
func NovoFormulario() *formulario.Controlador {
	form := formulario.Novo(
		formulario.Campo{Nome: "name", Rotulo: "Nome", Tipo: formulario.TipoTexto, Obrigatorio: true},
		formulario.Campo{Nome: "role", Rotulo: "Função", Tipo: formulario.TipoTexto, Obrigatorio: true},
		formulario.Campo{Nome: "contract_id", Rotulo: "Contrato", Tipo: formulario.TipoSelecao, Obrigatorio: true},
		formulario.Campo{
			Nome: "partner_id", Rotulo: "Parceiro", Tipo: formulario.TipoSelecao, Obrigatorio: true,
			Visivel: func(c sessao.Capacidades) bool { return c.AdminGlobal() },
		},
		formulario.Campo{
			Nome: "feedback", Rotulo: "Feedback (%)", Tipo: formulario.TipoInteiro, Obrigatorio: true,
			Min: formulario.Num(0), Max: formulario.Num(100),
		},
	)
	form.Predefinir(map[string]string{"feedback": "85"})
	return form
}

type dadosPagina struct {
	web.Base
	Grupos    []Grupo
	Contratos []contrato.Contrato
	Parceiros []parceiro.Parceiro
	Form      *formulario.Controlador
}

// Listar exibe os consultores agrupados por contrato.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	h.exibir(w, r, NovoFormulario(), r.URL.Query().Get("ok"), "")
}

func (h *Handler) exibir(w http.ResponseWriter, r *http.Request, form *formulario.Controlador, flash, mensagemErro string) {
	caps := sessao.Das(r)
	token := sessao.Token(r)

	grupos, err := h.Recurso.ListarGrupos(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}
	contratos, errContratos := h.Contratos.Listar(r.Context(), token, "")
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, errContratos) {
		return
	}

	var parceiros []parceiro.Parceiro
	var errParceiros error
	if caps.AdminGlobal() {
		parceiros, errParceiros = h.Parceiros.Listar(r.Context(), token)
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, errParceiros) {
			return
		}
	}

	if mensagemErro == "" {
		for _, e := range []error{err, errContratos, errParceiros} {
			if e != nil {
				mensagemErro = api.Mensagem(e)
				break
			}
		}
	}

	h.Paginas.Pagina(w, "consultores", dadosPagina{
		Base:      web.Base{Titulo: "Consultores", Caps: caps, Flash: flash, Erro: mensagemErro},
		Grupos:    grupos,
		Contratos: contratos,
		Parceiros: parceiros,
		Form:      form,
	})
}

// Criar trata o cadastro de um consultor.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	caps := sessao.Das(r)
	token := sessao.Token(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	form := NovoFormulario()
	form.LerRequisicao(r)

	err := form.Enviar(caps, func() error {
		nota, err := strconv.Atoi(form.Valor("feedback"))
		if err != nil {
			return err
		}
		dto := CriarConsultorDTO{
			Nome:       form.Valor("name"),
			Funcao:     form.Valor("role"),
			ContratoID: form.Valor("contract_id"),
			Feedback:   nota,
		}
		if caps.AdminGlobal() {
			dto.ParceiroID = form.Valor("partner_id")
		} else {
			dto.ParceiroID = caps.ParceiroID
		}
		_, err = h.Recurso.Criar(r.Context(), token, dto)
		return err
	})
	if err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		if form.Estado() == formulario.Falha {
			form.ErroGeral = api.Mensagem(err)
		}
		h.exibir(w, r, form, "", "")
		return
	}

	http.Redirect(w, r, "/consultores?ok=Consultor+criado+com+sucesso", http.StatusSeeOther)
}

// Feedbacks exibe o histórico de avaliações de um consultor.
func (h *Handler) Feedbacks(w http.ResponseWriter, r *http.Request) {
	caps := sessao.Das(r)
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]

	feedbacks, err := h.Recurso.Feedbacks(r.Context(), token, id)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}

	var mensagemErro string
	if err != nil {
		mensagemErro = api.Mensagem(err)
	}

	h.Paginas.Pagina(w, "feedbacks", struct {
		web.Base
		ConsultorID string
		Feedbacks   []Feedback
	}{
		Base:        web.Base{Titulo: "Feedbacks", Caps: caps, Erro: mensagemErro},
		ConsultorID: id,
		Feedbacks:   feedbacks,
	})
}

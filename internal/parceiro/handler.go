package parceiro

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formulario"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/web"
)

// Handler das telas de parceiros.
type Handler struct {
	Recurso *Recurso
	Sessoes *sessao.Armazenamento
	Paginas *web.Renderizador
	Log     *zap.Logger
}

func NovoHandler(recurso *Recurso, sessoes *sessao.Armazenamento, paginas *web.Renderizador, log *zap.Logger) *Handler {
	return &Handler{Recurso: recurso, Sessoes: sessoes, Paginas: paginas, Log: log}
}

// NovoFormulario monta o esquema do cadastro de parceiro.
func NovoFormulario() *formulario.Controlador {
	return formulario.Novo(
		formulario.Campo{Nome: "name", Rotulo: "Nome do Parceiro", Tipo: formulario.TipoTexto, Obrigatorio: true},
		formulario.Campo{Nome: "is_strategic", Rotulo: "Parceiro Estratégico", Tipo: formulario.TipoSelecao},
	)
}

type dadosPagina struct {
	web.Base
	Parceiros []Parceiro
	Vinculos  map[string][]ClienteVinculado
	Form      *formulario.Controlador
	Expandido string
}

// Listar exibe os parceiros; o parâmetro expandido controla qual deles
// mostra seus vínculos abertos.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	h.exibir(w, r, NovoFormulario(), r.URL.Query().Get("ok"), "")
}

func (h *Handler) exibir(w http.ResponseWriter, r *http.Request, form *formulario.Controlador, flash, mensagemErro string) {
	caps := sessao.Das(r)
	token := sessao.Token(r)

	parceiros, err := h.Recurso.Listar(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}
	vinculos, errVinculos := h.Recurso.ListarVinculos(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, errVinculos) {
		return
	}

	if mensagemErro == "" {
		if err != nil {
			mensagemErro = api.Mensagem(err)
		} else if errVinculos != nil {
			mensagemErro = api.Mensagem(errVinculos)
		}
	}

	h.Paginas.Pagina(w, "parceiros", dadosPagina{
		Base:      web.Base{Titulo: "Parceiros", Caps: caps, Flash: flash, Erro: mensagemErro},
		Parceiros: parceiros,
		Vinculos:  vinculos,
		Form:      form,
		Expandido: r.URL.Query().Get("expandido"),
	})
}

// Criar trata o cadastro de parceiro.
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
		_, err := h.Recurso.Criar(r.Context(), token, CriarParceiroDTO{
			Nome:        form.Valor("name"),
			Estrategico: form.Valor("is_strategic") == "true",
		})
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

	http.Redirect(w, r, "/parceiros?ok=Parceiro+criado+com+sucesso", http.StatusSeeOther)
}

// AlternarAtivo ativa ou desativa um parceiro.
func (h *Handler) AlternarAtivo(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]
	ativo := r.PostFormValue("ativo") == "true"

	if _, err := h.Recurso.Atualizar(r.Context(), token, id, AtualizarParceiroDTO{Ativo: &ativo}); err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		h.exibir(w, r, NovoFormulario(), "", api.Mensagem(err))
		return
	}
	http.Redirect(w, r, "/parceiros", http.StatusSeeOther)
}

// Remover exclui um parceiro após a confirmação na tela.
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]

	if err := h.Recurso.Remover(r.Context(), token, id); err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		h.Log.Warn("falha ao excluir parceiro", zap.String("id", id), zap.Error(err))
		h.exibir(w, r, NovoFormulario(), "", api.Mensagem(err))
		return
	}
	http.Redirect(w, r, "/parceiros?ok=Parceiro+exclu%C3%ADdo", http.StatusSeeOther)
}

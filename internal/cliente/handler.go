package cliente

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/filtro"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formato"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formulario"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/parceiro"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/web"
)

// Handler das telas de clientes.
type Handler struct {
	Recurso   *Recurso
	Parceiros *parceiro.Recurso
	Sessoes   *sessao.Armazenamento
	Paginas   *web.Renderizador
	Log       *zap.Logger
}

func NovoHandler(recurso *Recurso, parceiros *parceiro.Recurso, sessoes *sessao.Armazenamento, paginas *web.Renderizador, log *zap.Logger) *Handler {
	return &Handler{Recurso: recurso, Parceiros: parceiros, Sessoes: sessoes, Paginas: paginas, Log: log}
}

// NovoFormulario monta o esquema do cadastro de cliente. O parceiro só é
// exibido (e exigido) para o admin global; para os demais papéis o vínculo
// vem da própria sessão.
func NovoFormulario() *formulario.Controlador {
	return formulario.Novo(
		formulario.Campo{Nome: "name", Rotulo: "Nome do Cliente", Tipo: formulario.TipoTexto, Obrigatorio: true},
		formulario.Campo{Nome: "cnpj", Rotulo: "CNPJ", Tipo: formulario.TipoTexto},
		formulario.Campo{Nome: "razao_social", Rotulo: "Razão Social", Tipo: formulario.TipoTexto},
		formulario.Campo{
			Nome: "partner_id", Rotulo: "Parceiro", Tipo: formulario.TipoSelecao, Obrigatorio: true,
			Visivel: func(c sessao.Capacidades) bool { return c.AdminGlobal() },
		},
	)
}

type dadosPagina struct {
	web.Base
	Clientes       []Cliente
	Parceiros      []parceiro.Parceiro
	Form           *formulario.Controlador
	Busca          string
	FiltroParceiro string
}

// Listar exibe a página de clientes com busca livre e filtro por parceiro.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	h.exibir(w, r, NovoFormulario(), r.URL.Query().Get("ok"), "")
}

func (h *Handler) exibir(w http.ResponseWriter, r *http.Request, form *formulario.Controlador, flash, mensagemErro string) {
	caps := sessao.Das(r)
	token := sessao.Token(r)

	clientes, err := h.Recurso.Listar(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}
	parceiros, errParceiros := h.Parceiros.Listar(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, errParceiros) {
		return
	}

	busca := r.URL.Query().Get("busca")
	filtroParceiro := r.URL.Query().Get("parceiro")
	clientes = filtro.Aplicar(clientes, filtro.Todos(
		filtro.PorTexto(busca, func(c Cliente) []string { return []string{c.Nome, c.RazaoSocial, c.CNPJ} }),
		filtro.PorChave(filtroParceiro, Cliente.ChaveParceiro),
	))

	if mensagemErro == "" {
		if err != nil {
			mensagemErro = api.Mensagem(err)
		} else if errParceiros != nil {
			mensagemErro = api.Mensagem(errParceiros)
		}
	}

	h.Paginas.Pagina(w, "clientes", dadosPagina{
		Base:           web.Base{Titulo: "Clientes", Caps: caps, Flash: flash, Erro: mensagemErro},
		Clientes:       clientes,
		Parceiros:      parceiros,
		Form:           form,
		Busca:          busca,
		FiltroParceiro: filtroParceiro,
	})
}

// Criar trata o envio do cadastro. Sem parceiro selecionado, o admin global
// é barrado localmente antes de qualquer chamada à API.
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
		_, err := h.Recurso.Criar(r.Context(), token, h.montarDTO(caps, form))
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

	http.Redirect(w, r, "/clientes?ok=Cliente+criado+com+sucesso", http.StatusSeeOther)
}

func (h *Handler) montarDTO(caps sessao.Capacidades, form *formulario.Controlador) CriarClienteDTO {
	dto := CriarClienteDTO{
		Nome:        form.Valor("name"),
		CNPJ:        formato.LimparCNPJ(form.Valor("cnpj")),
		RazaoSocial: form.Valor("razao_social"),
	}
	if caps.AdminGlobal() {
		pid := form.Valor("partner_id")
		dto.ParceiroID = &pid
	} else if caps.ParceiroID != "" {
		pid := caps.ParceiroID
		dto.ParceiroID = &pid
	}
	return dto
}

// Atualizar trata a edição de um cliente existente.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	caps := sessao.Das(r)
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]

	if err := r.ParseForm(); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	form := NovoFormulario()
	form.LerRequisicao(r)

	err := form.Enviar(caps, func() error {
		dto := h.montarDTO(caps, form)
		_, err := h.Recurso.Atualizar(r.Context(), token, id, AtualizarClienteDTO(dto))
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

	http.Redirect(w, r, "/clientes?ok=Cliente+atualizado", http.StatusSeeOther)
}

// Remover exclui um cliente após a confirmação na tela.
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]

	if err := h.Recurso.Remover(r.Context(), token, id); err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		h.Log.Warn("falha ao excluir cliente", zap.String("id", id), zap.Error(err))
		h.exibir(w, r, NovoFormulario(), "", api.Mensagem(err))
		return
	}
	http.Redirect(w, r, "/clientes?ok=Cliente+exclu%C3%ADdo", http.StatusSeeOther)
}

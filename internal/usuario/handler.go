package usuario

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/cliente"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/filtro"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formulario"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/parceiro"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/web"
)

// Handler do login e da tela de gestão (usuários, parceiros e clientes).
type Handler struct {
	Recurso   *Recurso
	Parceiros *parceiro.Recurso
	Clientes  *cliente.Recurso
	Sessoes   *sessao.Armazenamento
	Paginas   *web.Renderizador
	Log       *zap.Logger
}

func NovoHandler(recurso *Recurso, parceiros *parceiro.Recurso, clientes *cliente.Recurso, sessoes *sessao.Armazenamento, paginas *web.Renderizador, log *zap.Logger) *Handler {
	return &Handler{Recurso: recurso, Parceiros: parceiros, Clientes: clientes, Sessoes: sessoes, Paginas: paginas, Log: log}
}

// NovoFormulario monta o esquema do cadastro de usuário. O parceiro é
// obrigatório exceto para o papel admin_global, regra checada à parte em
// Criar porque depende de outro campo e não só da sessão.
func NovoFormulario() *formulario.Controlador {
	return formulario.Novo(
		formulario.Campo{Nome: "username", Rotulo: "Usuário", Tipo: formulario.TipoTexto, Obrigatorio: true},
		formulario.Campo{Nome: "email", Rotulo: "E-mail", Tipo: formulario.TipoEmail, Obrigatorio: true},
		formulario.Campo{Nome: "password", Rotulo: "Senha", Tipo: formulario.TipoSenha, Obrigatorio: true},
		formulario.Campo{
			Nome: "role", Rotulo: "Papel", Tipo: formulario.TipoSelecao, Obrigatorio: true,
			Opcoes: []formulario.Opcao{
				{Valor: sessao.PapelAdminGlobal, Rotulo: "Admin Global"},
				{Valor: sessao.PapelAdminParceiro, Rotulo: "Admin do Parceiro"},
				{Valor: sessao.PapelUsuarioParceiro, Rotulo: "Usuário do Parceiro"},
			},
			// admin de parceiro só cadastra dentro do próprio parceiro
			Visivel: func(c sessao.Capacidades) bool { return c.AdminGlobal() },
		},
		formulario.Campo{
			Nome: "partner_id", Rotulo: "Parceiro", Tipo: formulario.TipoSelecao,
			Visivel: func(c sessao.Capacidades) bool { return c.AdminGlobal() },
		},
	)
}

// Entrar renderiza a tela de login.
func (h *Handler) Entrar(w http.ResponseWriter, r *http.Request) {
	h.paginaLogin(w, sessao.Capacidades{}, "")
}

func (h *Handler) paginaLogin(w http.ResponseWriter, caps sessao.Capacidades, mensagemErro string) {
	h.Paginas.Pagina(w, "login", struct {
		web.Base
	}{Base: web.Base{Titulo: "Entrar", Caps: caps, Erro: mensagemErro}})
}

// Autenticar envia as credenciais à API e grava a sessão nos cookies.
func (h *Handler) Autenticar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	credenciais := Credenciais{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if credenciais.Username == "" || credenciais.Password == "" {
		h.paginaLogin(w, sessao.Capacidades{}, "Informe usuário e senha.")
		return
	}

	resposta, err := h.Recurso.Login(r.Context(), credenciais)
	if err != nil {
		h.Log.Info("login recusado", zap.String("username", credenciais.Username))
		h.paginaLogin(w, sessao.Capacidades{}, api.Mensagem(err))
		return
	}

	h.Sessoes.Gravar(w, resposta.Token, resposta.Usuario)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Sair limpa a sessão e volta ao login.
func (h *Handler) Sair(w http.ResponseWriter, r *http.Request) {
	h.Sessoes.Limpar(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

type dadosGestao struct {
	web.Base
	Usuarios       []Usuario
	Parceiros      []parceiro.Parceiro
	Clientes       []cliente.Cliente
	NomesParceiros map[string]string
	Form           *formulario.Controlador
	FiltroParceiro string
	Expandido      string
}

// Gestao exibe a administração de usuários, parceiros e seus clientes, com
// filtro de parceiro (inclusive "sem vínculo") e expansão por parceiro.
func (h *Handler) Gestao(w http.ResponseWriter, r *http.Request) {
	h.exibirGestao(w, r, NovoFormulario(), r.URL.Query().Get("ok"), "")
}

func (h *Handler) exibirGestao(w http.ResponseWriter, r *http.Request, form *formulario.Controlador, flash, mensagemErro string) {
	caps := sessao.Das(r)
	token := sessao.Token(r)

	usuarios, err := h.Recurso.Listar(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}
	parceiros, errParceiros := h.Parceiros.Listar(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, errParceiros) {
		return
	}
	clientes, errClientes := h.Clientes.Listar(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, errClientes) {
		return
	}

	filtroParceiro := r.URL.Query().Get("parceiro")
	usuarios = filtro.Aplicar(usuarios, filtro.PorChave(filtroParceiro, Usuario.ChaveParceiro))

	nomes := make(map[string]string, len(parceiros))
	for _, p := range parceiros {
		nomes[p.ID] = p.Nome
	}

	if mensagemErro == "" {
		for _, e := range []error{err, errParceiros, errClientes} {
			if e != nil {
				mensagemErro = api.Mensagem(e)
				break
			}
		}
	}

	h.Paginas.Pagina(w, "gestao", dadosGestao{
		Base:           web.Base{Titulo: "Gestão", Caps: caps, Flash: flash, Erro: mensagemErro},
		Usuarios:       usuarios,
		Parceiros:      parceiros,
		Clientes:       clientes,
		NomesParceiros: nomes,
		Form:           form,
		FiltroParceiro: filtroParceiro,
		Expandido:      r.URL.Query().Get("expandido"),
	})
}

// Criar trata o cadastro de usuário. Papéis vinculados a parceiro exigem o
// vínculo antes de qualquer chamada à API.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	caps := sessao.Das(r)
	token := sessao.Token(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	form := NovoFormulario()
	form.LerRequisicao(r)

	papel := form.Valor("role")
	if !caps.AdminGlobal() {
		papel = sessao.PapelUsuarioParceiro
	}

	if form.Validar(caps) && papel != sessao.PapelAdminGlobal && caps.AdminGlobal() && form.Valor("partner_id") == "" {
		form.Erros["partner_id"] = "Parceiro é obrigatório para este papel"
	}
	if len(form.Erros) > 0 {
		h.exibirGestao(w, r, form, "", "")
		return
	}

	err := form.Enviar(caps, func() error {
		dto := CriarUsuarioDTO{
			Username: form.Valor("username"),
			Email:    form.Valor("email"),
			Senha:    form.Valor("password"),
			Papel:    papel,
		}
		switch {
		case caps.AdminGlobal() && papel != sessao.PapelAdminGlobal:
			pid := form.Valor("partner_id")
			dto.ParceiroID = &pid
		case !caps.AdminGlobal() && caps.ParceiroID != "":
			pid := caps.ParceiroID
			dto.ParceiroID = &pid
		}
		_, err := h.Recurso.Criar(r.Context(), token, dto)
		return err
	})
	if err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		if form.Estado() == formulario.Falha {
			form.ErroGeral = api.Mensagem(err)
		}
		h.exibirGestao(w, r, form, "", "")
		return
	}

	http.Redirect(w, r, "/gestao?ok=Usu%C3%A1rio+criado+com+sucesso", http.StatusSeeOther)
}

// Atualizar altera papel, e-mail ou atividade de um usuário.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]

	if err := r.ParseForm(); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	dto := AtualizarUsuarioDTO{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Papel:    r.PostFormValue("role"),
	}
	if ativo := r.PostFormValue("is_active"); ativo != "" {
		valor := ativo == "true"
		dto.Ativo = &valor
	}
	if pid := r.PostFormValue("partner_id"); pid != "" {
		dto.ParceiroID = &pid
	}

	if _, err := h.Recurso.Atualizar(r.Context(), token, id, dto); err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		h.exibirGestao(w, r, NovoFormulario(), "", api.Mensagem(err))
		return
	}
	http.Redirect(w, r, "/gestao?ok=Usu%C3%A1rio+atualizado", http.StatusSeeOther)
}

// Remover exclui um usuário após a confirmação na tela.
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]

	if err := h.Recurso.Remover(r.Context(), token, id); err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		h.Log.Warn("falha ao excluir usuário", zap.String("id", id), zap.Error(err))
		h.exibirGestao(w, r, NovoFormulario(), "", api.Mensagem(err))
		return
	}
	http.Redirect(w, r, "/gestao?ok=Usu%C3%A1rio+exclu%C3%ADdo", http.StatusSeeOther)
}

package contrato

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/cliente"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formato"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formulario"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/web"
)

// Handler das telas de contratos.
type Handler struct {
	Recurso  *Recurso
	Clientes *cliente.Recurso
	Sessoes  *sessao.Armazenamento
	Paginas  *web.Renderizador
	Log      *zap.Logger
}

func NovoHandler(recurso *Recurso, clientes *cliente.Recurso, sessoes *sessao.Armazenamento, paginas *web.Renderizador, log *zap.Logger) *Handler {
	return &Handler{Recurso: recurso, Clientes: clientes, Sessoes: sessoes, Paginas: paginas, Log: log}
}

// NovoFormulario monta o esquema do cadastro de contrato.
func NovoFormulario() *formulario.Controlador {
	return formulario.Novo(
		formulario.Campo{Nome: "name", Rotulo: "Nome do Contrato", Tipo: formulario.TipoTexto, Obrigatorio: true},
		formulario.Campo{Nome: "client_id", Rotulo: "Cliente", Tipo: formulario.TipoSelecao, Obrigatorio: true},
		formulario.Campo{Nome: "total_value", Rotulo: "Valor Total (R$)", Tipo: formulario.TipoNumero, Obrigatorio: true, Min: formulario.Num(0)},
		formulario.Campo{
			Nome: "status", Rotulo: "Status", Tipo: formulario.TipoSelecao, Obrigatorio: true,
			Opcoes: []formulario.Opcao{
				{Valor: StatusAtivo, Rotulo: "Ativo"},
				{Valor: StatusInativo, Rotulo: "Inativo"},
				{Valor: StatusAVencer, Rotulo: "A Vencer"},
			},
		},
		formulario.Campo{Nome: "end_date", Rotulo: "Data de Vencimento", Tipo: formulario.TipoData, Obrigatorio: true},
	)
}

type dadosPagina struct {
	web.Base
	Contratos []Contrato
	Clientes  []cliente.Cliente
	Form      *formulario.Controlador
	Status    string
}

// Listar exibe a página de contratos com o filtro de status repassado ao
// servidor.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	h.exibir(w, r, NovoFormulario(), r.URL.Query().Get("ok"), "")
}

func (h *Handler) exibir(w http.ResponseWriter, r *http.Request, form *formulario.Controlador, flash, mensagemErro string) {
	caps := sessao.Das(r)
	token := sessao.Token(r)
	status := r.URL.Query().Get("status")

	contratos, err := h.Recurso.Listar(r.Context(), token, status)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}
	clientes, errClientes := h.Clientes.Listar(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, errClientes) {
		return
	}

	if mensagemErro == "" {
		if err != nil {
			mensagemErro = api.Mensagem(err)
		} else if errClientes != nil {
			mensagemErro = api.Mensagem(errClientes)
		}
	}

	h.Paginas.Pagina(w, "contratos", dadosPagina{
		Base:      web.Base{Titulo: "Contratos", Caps: caps, Flash: flash, Erro: mensagemErro},
		Contratos: contratos,
		Clientes:  clientes,
		Form:      form,
		Status:    status,
	})
}

// Criar trata o envio do cadastro: valida localmente, converte o valor para
// número e a data para ISO 8601 e envia à API. A lista é recarregada no
// redirecionamento, sem atualização otimista.
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
		valor, err := formato.InterpretarMoeda(form.Valor("total_value"))
		if err != nil {
			return err
		}
		dataISO, err := formato.ConverterDataISO(form.Valor("end_date"))
		if err != nil {
			return err
		}
		_, err = h.Recurso.Criar(r.Context(), token, CriarContratoDTO{
			Nome:       form.Valor("name"),
			ClienteID:  form.Valor("client_id"),
			ValorTotal: valor.InexactFloat64(),
			Status:     form.Valor("status"),
			DataFim:    dataISO,
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

	http.Redirect(w, r, "/contratos?ok=Contrato+criado+com+sucesso", http.StatusSeeOther)
}

// Remover exclui um contrato após a confirmação na tela.
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]

	if err := h.Recurso.Remover(r.Context(), token, id); err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		h.Log.Warn("falha ao excluir contrato", zap.String("id", id), zap.Error(err))
		h.exibir(w, r, NovoFormulario(), "", api.Mensagem(err))
		return
	}
	http.Redirect(w, r, "/contratos?ok=Contrato+exclu%C3%ADdo", http.StatusSeeOther)
}

// ExportarCSV baixa a lista corrente (respeitando o filtro de status) como
// planilha CSV.
func (h *Handler) ExportarCSV(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	status := r.URL.Query().Get("status")

	contratos, err := h.Recurso.Listar(r.Context(), token, status)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}
	if err != nil {
		http.Error(w, api.Mensagem(err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="contratos.csv"`)

	escritor := csv.NewWriter(w)
	_ = escritor.Write([]string{"Contrato", "Cliente", "Status", "Valor Total", "Faturado", "Saldo", "% Faturado", "Vencimento"})
	for _, c := range contratos {
		_ = escritor.Write([]string{
			c.Nome,
			c.NomeCliente(),
			RotuloStatus(c.Status),
			c.ValorTotal,
			c.ValorFaturado,
			c.Saldo,
			fmt.Sprintf("%.1f", c.PercentualFaturado),
			formato.FormatarData(c.DataFim),
		})
	}
	escritor.Flush()
	if err := escritor.Error(); err != nil {
		h.Log.Error("falha ao exportar contratos", zap.Error(err))
	}
}

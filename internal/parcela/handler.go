package parcela

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/contrato"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formato"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formulario"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/web"
)

// Handler da tela de faturamento.
type Handler struct {
	Recurso   *Recurso
	Contratos *contrato.Recurso
	Sessoes   *sessao.Armazenamento
	Paginas   *web.Renderizador
	Log       *zap.Logger
}

func NovoHandler(recurso *Recurso, contratos *contrato.Recurso, sessoes *sessao.Armazenamento, paginas *web.Renderizador, log *zap.Logger) *Handler {
	return &Handler{Recurso: recurso, Contratos: contratos, Sessoes: sessoes, Paginas: paginas, Log: log}
}

// NovoFormulario monta o esquema do cadastro de parcela. A competência vem
// pré-selecionada com o mês corrente; nota e datas são opcionais, mas datas
// preenchidas precisam ser dd/mm/aaaa válidas.
func NovoFormulario(agora time.Time) *formulario.Controlador {
	meses := formato.MesesProximos(agora)
	opcoes := make([]formulario.Opcao, len(meses))
	for i, mes := range meses {
		opcoes[i] = formulario.Opcao{Valor: mes, Rotulo: mes}
	}

	form := formulario.Novo(
		formulario.Campo{Nome: "contract_id", Rotulo: "Contrato", Tipo: formulario.TipoSelecao, Obrigatorio: true},
		formulario.Campo{Nome: "month", Rotulo: "Competência", Tipo: formulario.TipoSelecao, Obrigatorio: true, Opcoes: opcoes},
		formulario.Campo{Nome: "value", Rotulo: "Valor (R$)", Tipo: formulario.TipoNumero, Obrigatorio: true, Min: formulario.Num(0)},
		formulario.Campo{Nome: "invoice_number", Rotulo: "Número da Nota", Tipo: formulario.TipoTexto},
		formulario.Campo{Nome: "billing_date", Rotulo: "Data de Faturamento", Tipo: formulario.TipoData},
		formulario.Campo{Nome: "payment_term", Rotulo: "Prazo de Pagamento", Tipo: formulario.TipoTexto},
		formulario.Campo{Nome: "expected_payment_date", Rotulo: "Data Prevista de Pagamento", Tipo: formulario.TipoData},
		formulario.Campo{Nome: "payment_date", Rotulo: "Data de Pagamento", Tipo: formulario.TipoData},
	)
	form.Predefinir(map[string]string{"month": formato.MesReferencia(agora)})
	return form
}

type dadosPagina struct {
	web.Base
	Parcelas  []Parcela
	Resumo    *Resumo
	Contratos []contrato.Contrato
	Form      *formulario.Controlador
	Filtros   Filtros
	Faturadas int
	Pendentes int
}

func filtrosDe(r *http.Request) Filtros {
	return Filtros{
		Faturada: r.URL.Query().Get("faturada"),
		Mes:      r.URL.Query().Get("mes"),
		Ano:      r.URL.Query().Get("ano"),
	}
}

// Listar exibe a tela de faturamento: parcelas filtradas, resumo e o
// cadastro de novas parcelas sobre os contratos ativos.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	h.exibir(w, r, NovoFormulario(time.Now()), r.URL.Query().Get("ok"), "")
}

func (h *Handler) exibir(w http.ResponseWriter, r *http.Request, form *formulario.Controlador, flash, mensagemErro string) {
	caps := sessao.Das(r)
	token := sessao.Token(r)
	filtros := filtrosDe(r)

	parcelas, err := h.Recurso.Listar(r.Context(), token, filtros)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}
	parcelas = FiltrarLocal(parcelas, filtros)

	resumo, errResumo := h.Recurso.Resumir(r.Context(), token)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, errResumo) {
		return
	}

	ativos, errContratos := h.Contratos.Listar(r.Context(), token, contrato.StatusAtivo)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, errContratos) {
		return
	}

	if mensagemErro == "" {
		for _, e := range []error{err, errResumo, errContratos} {
			if e != nil {
				mensagemErro = api.Mensagem(e)
				break
			}
		}
	}

	faturadas, pendentes := Contagem(parcelas)
	h.Paginas.Pagina(w, "faturamento", dadosPagina{
		Base:      web.Base{Titulo: "Faturamento", Caps: caps, Flash: flash, Erro: mensagemErro},
		Parcelas:  parcelas,
		Resumo:    resumo,
		Contratos: ativos,
		Form:      form,
		Filtros:   filtros,
		Faturadas: faturadas,
		Pendentes: pendentes,
	})
}

// Criar trata o cadastro de parcela, convertendo valor e datas opcionais.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	caps := sessao.Das(r)
	token := sessao.Token(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	form := NovoFormulario(time.Now())
	form.LerRequisicao(r)

	err := form.Enviar(caps, func() error {
		valor, err := formato.InterpretarMoeda(form.Valor("value"))
		if err != nil {
			return err
		}
		dto := CriarParcelaDTO{
			ContratoID:     form.Valor("contract_id"),
			Mes:            form.Valor("month"),
			Valor:          valor.InexactFloat64(),
			NumeroNota:     form.Valor("invoice_number"),
			PrazoPagamento: form.Valor("payment_term"),
		}
		for campo, destino := range map[string]*string{
			"billing_date":          &dto.DataFaturamento,
			"expected_payment_date": &dto.DataPrevistaPagamento,
			"payment_date":          &dto.DataPagamento,
		} {
			if valorData := form.Valor(campo); valorData != "" {
				iso, err := formato.ConverterDataISO(valorData)
				if err != nil {
					return err
				}
				*destino = iso
			}
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

	http.Redirect(w, r, "/faturamento?ok=Parcela+criada+com+sucesso", http.StatusSeeOther)
}

// MarcarFaturada alterna o sinal de pagamento da parcela e recarrega a
// listagem.
func (h *Handler) MarcarFaturada(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]
	faturada, _ := strconv.ParseBool(r.PostFormValue("faturada"))

	if err := h.Recurso.MarcarFaturada(r.Context(), token, id, faturada); err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		h.exibir(w, r, NovoFormulario(time.Now()), "", api.Mensagem(err))
		return
	}
	http.Redirect(w, r, "/faturamento", http.StatusSeeOther)
}

// Remover exclui uma parcela após a confirmação na tela.
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	id := mux.Vars(r)["id"]

	if err := h.Recurso.Remover(r.Context(), token, id); err != nil {
		if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
			return
		}
		h.Log.Warn("falha ao excluir parcela", zap.String("id", id), zap.Error(err))
		h.exibir(w, r, NovoFormulario(time.Now()), "", api.Mensagem(err))
		return
	}
	http.Redirect(w, r, "/faturamento?ok=Parcela+exclu%C3%ADda", http.StatusSeeOther)
}

// ExportarCSV baixa as parcelas da listagem corrente como planilha.
func (h *Handler) ExportarCSV(w http.ResponseWriter, r *http.Request) {
	token := sessao.Token(r)
	filtros := filtrosDe(r)

	parcelas, err := h.Recurso.Listar(r.Context(), token, filtros)
	if web.TratarErro(w, r, h.Paginas, h.Sessoes, err) {
		return
	}
	if err != nil {
		http.Error(w, api.Mensagem(err), http.StatusBadGateway)
		return
	}
	parcelas = FiltrarLocal(parcelas, filtros)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="faturamento.csv"`)

	escritor := csv.NewWriter(w)
	_ = escritor.Write([]string{"Competência", "Contrato", "Valor", "Situação", "Nota", "Faturamento", "Previsão de Pagamento", "Pagamento"})
	for _, p := range parcelas {
		situacao := "Pendente"
		if p.Faturada {
			situacao = "Pago"
		}
		_ = escritor.Write([]string{
			p.Mes,
			p.NomeContrato(),
			p.Valor,
			situacao,
			p.NumeroNota,
			formato.FormatarData(p.DataFaturamento),
			formato.FormatarData(p.DataPrevistaPagamento),
			formato.FormatarData(p.DataPagamento),
		})
	}
	escritor.Flush()
	if err := escritor.Error(); err != nil {
		h.Log.Error("falha ao exportar parcelas", zap.Error(err))
	}
}

// Package formulario concentra o controlador genérico de formulários de
// criação/edição que cada diálogo do portal parametriza com seu esquema de
// campos. A validação local cobre obrigatoriedade, faixas numéricas e formato
// de data; regras de negócio (unicidade, integridade referencial) ficam com o
// servidor e só aparecem aqui como mensagem de falha pós-envio.
package formulario

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formato"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
)

// Estado do ciclo de vida do formulário.
type Estado int

const (
	Ocioso Estado = iota
	Edicao
	Enviando
	Sucesso
	Falha
)

func (e Estado) String() string {
	switch e {
	case Edicao:
		return "edicao"
	case Enviando:
		return "enviando"
	case Sucesso:
		return "sucesso"
	case Falha:
		return "falha"
	default:
		return "ocioso"
	}
}

// Tipo do campo, que determina a validação local aplicada.
type Tipo int

const (
	TipoTexto Tipo = iota
	TipoEmail
	TipoSenha
	TipoNumero
	TipoInteiro
	TipoData
	TipoSelecao
)

// Opcao de um campo de seleção.
type Opcao struct {
	Valor  string
	Rotulo string
}

// Campo descreve um campo do esquema: nome na requisição, rótulo exibido,
// validação e o predicado de visibilidade sobre as capacidades da sessão.
// Campos invisíveis não são validados nem enviados.
type Campo struct {
	Nome        string
	Rotulo      string
	Tipo        Tipo
	Obrigatorio bool
	Min         *float64
	Max         *float64
	Opcoes      []Opcao
	Visivel     func(sessao.Capacidades) bool
}

func (c Campo) visivel(caps sessao.Capacidades) bool {
	return c.Visivel == nil || c.Visivel(caps)
}

// Num é um atalho para ponteiros de limite numérico no esquema.
func Num(v float64) *float64 { return &v }

var valida = validator.New(validator.WithRequiredStructEnabled())

// Controlador mantém o estado do formulário entre edição, envio e desfecho.
type Controlador struct {
	Campos    []Campo
	Valores   map[string]string
	Erros     map[string]string
	ErroGeral string

	estado Estado
}

// Novo cria um controlador ocioso para o esquema dado.
func Novo(campos ...Campo) *Controlador {
	return &Controlador{
		Campos:  campos,
		Valores: map[string]string{},
		Erros:   map[string]string{},
	}
}

// Estado corrente do formulário.
func (f *Controlador) Estado() Estado { return f.estado }

// Valor lido do campo, já sem espaços nas pontas.
func (f *Controlador) Valor(nome string) string {
	return strings.TrimSpace(f.Valores[nome])
}

// Editar registra valores digitados. Durante o envio o formulário fica
// travado e edições são ignoradas; após uma falha, editar retoma a edição.
func (f *Controlador) Editar(valores map[string]string) {
	if f.estado == Enviando {
		return
	}
	for nome, valor := range valores {
		f.Valores[nome] = valor
	}
	f.estado = Edicao
}

// Predefinir grava valores iniciais sem sair do estado ocioso, para campos
// pré-preenchidos como a competência corrente.
func (f *Controlador) Predefinir(valores map[string]string) {
	for nome, valor := range valores {
		f.Valores[nome] = valor
	}
}

// LerRequisicao captura do formulário HTTP os valores dos campos do esquema.
func (f *Controlador) LerRequisicao(r *http.Request) {
	valores := make(map[string]string, len(f.Campos))
	for _, campo := range f.Campos {
		valores[campo.Nome] = r.PostFormValue(campo.Nome)
	}
	f.Editar(valores)
}

// Opcoes devolve as opções do campo de seleção nomeado, para os templates.
func (f *Controlador) Opcoes(nome string) []Opcao {
	for _, campo := range f.Campos {
		if campo.Nome == nome {
			return campo.Opcoes
		}
	}
	return nil
}

// CamposVisiveis devolve o subconjunto do esquema exibido para a sessão.
func (f *Controlador) CamposVisiveis(caps sessao.Capacidades) []Campo {
	visiveis := make([]Campo, 0, len(f.Campos))
	for _, campo := range f.Campos {
		if campo.visivel(caps) {
			visiveis = append(visiveis, campo)
		}
	}
	return visiveis
}

// Validar roda as checagens locais sobre os campos visíveis. Reprovar deixa
// o formulário em edição com os erros por campo preenchidos.
func (f *Controlador) Validar(caps sessao.Capacidades) bool {
	f.Erros = map[string]string{}

	for _, campo := range f.Campos {
		if !campo.visivel(caps) {
			continue
		}
		valor := f.Valor(campo.Nome)

		if valor == "" {
			if campo.Obrigatorio {
				f.Erros[campo.Nome] = fmt.Sprintf("%s é obrigatório", campo.Rotulo)
			}
			continue
		}

		switch campo.Tipo {
		case TipoEmail:
			if err := valida.Var(valor, "email"); err != nil {
				f.Erros[campo.Nome] = fmt.Sprintf("%s inválido", campo.Rotulo)
			}
		case TipoNumero:
			n, err := formato.InterpretarMoeda(valor)
			if err != nil {
				f.Erros[campo.Nome] = fmt.Sprintf("%s deve ser um número válido", campo.Rotulo)
				continue
			}
			f.validarFaixa(campo, n.InexactFloat64())
		case TipoInteiro:
			n, err := strconv.Atoi(valor)
			if err != nil {
				f.Erros[campo.Nome] = fmt.Sprintf("%s deve ser um número inteiro", campo.Rotulo)
				continue
			}
			f.validarFaixa(campo, float64(n))
		case TipoData:
			if _, err := formato.ConverterDataISO(valor); err != nil {
				f.Erros[campo.Nome] = fmt.Sprintf("%s: data inválida, use dd/mm/aaaa", campo.Rotulo)
			}
		case TipoSelecao:
			if len(campo.Opcoes) > 0 && !contemOpcao(campo.Opcoes, valor) {
				f.Erros[campo.Nome] = fmt.Sprintf("%s tem um valor desconhecido", campo.Rotulo)
			}
		}
	}

	if len(f.Erros) > 0 {
		f.estado = Edicao
		return false
	}
	return true
}

func (f *Controlador) validarFaixa(campo Campo, n float64) {
	if campo.Min != nil && n < *campo.Min {
		f.Erros[campo.Nome] = fmt.Sprintf("%s deve ser no mínimo %v", campo.Rotulo, *campo.Min)
		return
	}
	if campo.Max != nil && n > *campo.Max {
		f.Erros[campo.Nome] = fmt.Sprintf("%s deve ser no máximo %v", campo.Rotulo, *campo.Max)
	}
}

func contemOpcao(opcoes []Opcao, valor string) bool {
	for _, o := range opcoes {
		if o.Valor == valor {
			return true
		}
	}
	return false
}

// Enviar valida localmente e, aprovado, executa o envio com o formulário
// travado. Sucesso leva ao estado Sucesso; falha do servidor leva a Falha com
// uma única mensagem apresentável, pronta para voltar à edição.
func (f *Controlador) Enviar(caps sessao.Capacidades, envia func() error) error {
	f.ErroGeral = ""
	if !f.Validar(caps) {
		return fmt.Errorf("formulário inválido")
	}

	f.estado = Enviando
	if err := envia(); err != nil {
		f.estado = Falha
		f.ErroGeral = err.Error()
		return err
	}
	f.estado = Sucesso
	return nil
}

// Reiniciar limpa valores e erros e volta ao estado ocioso, como após um
// envio bem-sucedido.
func (f *Controlador) Reiniciar() {
	f.Valores = map[string]string{}
	f.Erros = map[string]string{}
	f.ErroGeral = ""
	f.estado = Ocioso
}

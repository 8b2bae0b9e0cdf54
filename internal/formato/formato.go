package formato

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrDataInvalida é devolvido quando a entrada não representa uma data real
// do calendário (ex.: 31/02/2024).
var ErrDataInvalida = errors.New("data inválida, use o formato dd/mm/aaaa")

// somenteDigitos descarta tudo que não for dígito.
func somenteDigitos(valor string) string {
	var b strings.Builder
	for _, r := range valor {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LimparCNPJ devolve apenas os dígitos do CNPJ, limitados a 14.
func LimparCNPJ(valor string) string {
	digitos := somenteDigitos(valor)
	if len(digitos) > 14 {
		digitos = digitos[:14]
	}
	return digitos
}

// FormatarCNPJ aplica a máscara 00.000.000/0000-00 de forma progressiva,
// como no campo de digitação. A função é idempotente: formatar um valor já
// formatado produz a mesma string.
func FormatarCNPJ(valor string) string {
	d := LimparCNPJ(valor)
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return d
	case len(d) <= 5:
		return d[:2] + "." + d[2:]
	case len(d) <= 8:
		return d[:2] + "." + d[2:5] + "." + d[5:]
	case len(d) <= 12:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:]
	default:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	}
}

// FormatarMoeda exibe um valor em reais no padrão pt-BR.
func FormatarMoeda(valor float64) string {
	centavos := decimal.NewFromFloat(valor).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(centavos, money.BRL).Display()
}

// InterpretarMoeda converte a entrada de um campo monetário em decimal.
// Aceita tanto "15000.00" (input numérico) quanto "15.000,00" / "R$ 15.000,00".
func InterpretarMoeda(entrada string) (decimal.Decimal, error) {
	s := strings.TrimSpace(entrada)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("valor vazio")
	}
	if strings.Contains(s, ",") {
		// notação pt-BR: ponto é separador de milhar
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inválido: %q", entrada)
	}
	return d, nil
}

// MascararData aplica a máscara dd/mm/aaaa de forma progressiva.
func MascararData(valor string) string {
	d := somenteDigitos(valor)
	if len(d) > 8 {
		d = d[:8]
	}
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

// ConverterDataISO transforma "dd/mm/aaaa" (ou "aaaa-mm-dd", como em inputs
// de data HTML) em uma string ISO 8601 à meia-noite UTC. Datas que não
// existem no calendário são rejeitadas com ErrDataInvalida.
func ConverterDataISO(valor string) (string, error) {
	s := strings.TrimSpace(valor)
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", ErrDataInvalida
}

// FormatarData exibe uma data ISO como dd/mm/aaaa. Entradas irreconhecíveis
// voltam como chegaram, para nunca esconder o dado na tela.
func FormatarData(iso string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z07:00", "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return iso
}

var nomesMeses = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MesReferencia devolve o rótulo "Mes/AA" de uma data.
func MesReferencia(t time.Time) string {
	return fmt.Sprintf("%s/%02d", nomesMeses[t.Month()-1], t.Year()%100)
}

// MesesProximos gera a sequência de competências de dois meses atrás até
// doze meses à frente, usada no cadastro de parcelas.
func MesesProximos(agora time.Time) []string {
	base := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, time.UTC)
	meses := make([]string, 0, 15)
	for i := -2; i <= 12; i++ {
		meses = append(meses, MesReferencia(base.AddDate(0, i, 0)))
	}
	return meses
}

// AnoDoMes extrai o sufixo de ano de uma competência "Mes/AA".
func AnoDoMes(mes string) string {
	if i := strings.LastIndex(mes, "/"); i >= 0 {
		return mes[i+1:]
	}
	return ""
}

// ClasseFeedback mapeia a nota de um consultor para a classe do badge.
func ClasseFeedback(nota int) string {
	switch {
	case nota >= 90:
		return "success"
	case nota >= 80:
		return "warning"
	default:
		return "danger"
	}
}

// RotuloFeedback devolve o texto exibido junto ao badge da nota.
func RotuloFeedback(nota int) string {
	switch {
	case nota >= 90:
		return "Excelente"
	case nota >= 80:
		return "Bom"
	default:
		return "Precisa melhorar"
	}
}

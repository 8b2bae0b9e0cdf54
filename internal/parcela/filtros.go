package parcela

import (
	"strconv"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/filtro"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formato"
)

// FiltrarLocal reaplica os filtros sobre a lista recebida. A API já filtra
// no servidor; repetir aqui garante uma listagem coerente mesmo quando a
// resposta vem de uma versão da API que ignora algum parâmetro.
func FiltrarLocal(parcelas []Parcela, filtros Filtros) []Parcela {
	return filtro.Aplicar(parcelas, filtro.Todos(
		porFaturada(filtros.Faturada),
		filtro.PorIgualdade(filtros.Mes, func(p Parcela) string { return p.Mes }),
		porAno(filtros.Ano),
	))
}

func porFaturada(valor string) filtro.Predicado[Parcela] {
	faturada, err := strconv.ParseBool(valor)
	if err != nil {
		return nil
	}
	return func(p Parcela) bool { return p.Faturada == faturada }
}

func porAno(ano string) filtro.Predicado[Parcela] {
	if ano == "" {
		return nil
	}
	return func(p Parcela) bool { return formato.AnoDoMes(p.Mes) == ano }
}

// Contagem separa a lista em faturadas e pendentes; as duas somam sempre o
// total.
func Contagem(parcelas []Parcela) (faturadas, pendentes int) {
	for _, p := range parcelas {
		if p.Faturada {
			faturadas++
		} else {
			pendentes++
		}
	}
	return faturadas, pendentes
}

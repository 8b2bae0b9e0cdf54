package parcela

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var parcelasTeste = []Parcela{
	{ID: "1", Mes: "Jan/25", Faturada: true},
	{ID: "2", Mes: "Fev/25", Faturada: false},
	{ID: "3", Mes: "Jan/25", Faturada: false},
	{ID: "4", Mes: "Dez/24", Faturada: true},
}

func TestFiltrarLocal(t *testing.T) {
	casos := []struct {
		nome    string
		filtros Filtros
		ids     []string
	}{
		{"sem filtros", Filtros{}, []string{"1", "2", "3", "4"}},
		{"somente pagas", Filtros{Faturada: "true"}, []string{"1", "4"}},
		{"somente pendentes", Filtros{Faturada: "false"}, []string{"2", "3"}},
		{"filtro inválido aprova tudo", Filtros{Faturada: "talvez"}, []string{"1", "2", "3", "4"}},
		{"por competência", Filtros{Mes: "Jan/25"}, []string{"1", "3"}},
		{"por ano", Filtros{Ano: "24"}, []string{"4"}},
		{"combinado", Filtros{Faturada: "false", Mes: "Jan/25"}, []string{"3"}},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			resultado := FiltrarLocal(parcelasTeste, c.filtros)
			ids := make([]string, len(resultado))
			for i, p := range resultado {
				ids[i] = p.ID
			}
			assert.Equal(t, c.ids, ids)
		})
	}
}

func TestContagemSomaSempreOTotal(t *testing.T) {
	for _, filtros := range []Filtros{{}, {Faturada: "true"}, {Mes: "Jan/25"}, {Ano: "25"}} {
		lista := FiltrarLocal(parcelasTeste, filtros)
		faturadas, pendentes := Contagem(lista)
		assert.Equal(t, len(lista), faturadas+pendentes)
	}

	faturadas, pendentes := Contagem(parcelasTeste)
	assert.Equal(t, 2, faturadas)
	assert.Equal(t, 2, pendentes)
}

func TestNomeContrato(t *testing.T) {
	assert.Empty(t, Parcela{}.NomeContrato())
	p := Parcela{Contrato: &ContratoResumo{Nome: "Projeto X"}}
	assert.Equal(t, "Projeto X", p.NomeContrato())
}

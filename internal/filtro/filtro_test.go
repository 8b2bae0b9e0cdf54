package filtro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Nome     string
	Parceiro string
}

var itens = []item{
	{"Acme", "p-1"},
	{"Beta Consultoria", "p-2"},
	{"Gama", ""},
}

func TestAplicarSemPredicado(t *testing.T) {
	assert.Equal(t, itens, Aplicar(itens, nil))
}

func TestPorTexto(t *testing.T) {
	p := PorTexto("beta", func(i item) []string { return []string{i.Nome} })
	assert.Len(t, Aplicar(itens, p), 1)

	// sem diferenciar maiúsculas
	p = PorTexto("ACME", func(i item) []string { return []string{i.Nome} })
	assert.Len(t, Aplicar(itens, p), 1)

	assert.Nil(t, PorTexto("   ", func(i item) []string { return nil }))
}

func TestPorChave(t *testing.T) {
	chave := func(i item) string { return i.Parceiro }

	assert.Nil(t, PorChave("", chave))

	filtrados := Aplicar(itens, PorChave("p-1", chave))
	assert.Equal(t, []item{{"Acme", "p-1"}}, filtrados)

	// sentinela: só os sem vínculo
	filtrados = Aplicar(itens, PorChave(SemVinculo, chave))
	assert.Equal(t, []item{{"Gama", ""}}, filtrados)
}

func TestTodosCombinaEIgnoraNulos(t *testing.T) {
	p := Todos(
		nil,
		PorTexto("a", func(i item) []string { return []string{i.Nome} }),
		PorChave("p-1", func(i item) string { return i.Parceiro }),
	)
	assert.Equal(t, []item{{"Acme", "p-1"}}, Aplicar(itens, p))
}

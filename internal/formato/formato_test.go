package formato

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatarCNPJ(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"", ""},
		{"12", "12"},
		{"12345", "12.345"},
		{"12345678", "12.345.678"},
		{"123456780001", "12.345.678/0001"},
		{"12345678000190", "12.345.678/0001-90"},
		{"12345678000190999", "12.345.678/0001-90"}, // excedente descartado
		{"12.345.678/0001-90", "12.345.678/0001-90"},
		{"abc12def345", "12.345"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, FormatarCNPJ(c.entrada), "entrada %q", c.entrada)
	}
}

func TestFormatarCNPJIdempotente(t *testing.T) {
	mascarado := FormatarCNPJ("12345678000190")
	assert.Equal(t, mascarado, FormatarCNPJ(mascarado))
}

func TestLimparCNPJ(t *testing.T) {
	assert.Equal(t, "12345678000190", LimparCNPJ("12.345.678/0001-90"))
	assert.Equal(t, "12345678000190", LimparCNPJ("123456780001903333"))
}

func TestInterpretarMoeda(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"15000.00", "15000"},
		{"15000", "15000"},
		{"R$ 15.000,00", "15000"},
		{"15.000,50", "15000.5"},
		{"0", "0"},
	}
	for _, c := range casos {
		d, err := InterpretarMoeda(c.entrada)
		require.NoError(t, err, "entrada %q", c.entrada)
		assert.Equal(t, c.esperado, d.String(), "entrada %q", c.entrada)
	}

	for _, invalida := range []string{"", "abc", "R$"} {
		_, err := InterpretarMoeda(invalida)
		assert.Error(t, err, "entrada %q", invalida)
	}
}

func TestFormatarMoeda(t *testing.T) {
	assert.Equal(t, "R$15.000,00", FormatarMoeda(15000))
	assert.Equal(t, "R$0,50", FormatarMoeda(0.5))
}

func TestMascararData(t *testing.T) {
	assert.Equal(t, "31", MascararData("31"))
	assert.Equal(t, "31/12", MascararData("3112"))
	assert.Equal(t, "31/12/2026", MascararData("31122026"))
	assert.Equal(t, "31/12/2026", MascararData("311220269999"))
}

func TestConverterDataISO(t *testing.T) {
	iso, err := ConverterDataISO("31/12/2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31T00:00:00Z", iso)

	// input de data HTML
	iso, err = ConverterDataISO("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31T00:00:00Z", iso)
}

func TestConverterDataISORejeitaDataInexistente(t *testing.T) {
	for _, invalida := range []string{"31/02/2024", "99/99/9999", "2024-02-31", "ontem", ""} {
		_, err := ConverterDataISO(invalida)
		assert.ErrorIs(t, err, ErrDataInvalida, "entrada %q", invalida)
	}
}

func TestDataIdaEVolta(t *testing.T) {
	iso, err := ConverterDataISO("05/07/2026")
	require.NoError(t, err)
	assert.Equal(t, "05/07/2026", FormatarData(iso))
}

func TestFormatarDataPassaAdianteOIrreconhecivel(t *testing.T) {
	assert.Equal(t, "Jan/25", FormatarData("Jan/25"))
	assert.Equal(t, "", FormatarData(""))
}

func TestMesesProximos(t *testing.T) {
	// dia 31 não pode deslizar os meses seguintes
	agora := time.Date(2025, time.January, 31, 10, 0, 0, 0, time.UTC)
	meses := MesesProximos(agora)

	require.Len(t, meses, 15)
	assert.Equal(t, "Nov/24", meses[0])
	assert.Equal(t, "Jan/25", meses[2])
	assert.Equal(t, "Fev/25", meses[3])
	assert.Equal(t, "Jan/26", meses[14])
	assert.Equal(t, MesReferencia(agora), meses[2])
}

func TestAnoDoMes(t *testing.T) {
	assert.Equal(t, "25", AnoDoMes("Jan/25"))
	assert.Equal(t, "", AnoDoMes("Jan"))
}

func TestFeedback(t *testing.T) {
	casos := []struct {
		nota   int
		classe string
		rotulo string
	}{
		{95, "success", "Excelente"},
		{90, "success", "Excelente"},
		{85, "warning", "Bom"},
		{80, "warning", "Bom"},
		{79, "danger", "Precisa melhorar"},
		{0, "danger", "Precisa melhorar"},
	}
	for _, c := range casos {
		assert.Equal(t, c.classe, ClasseFeedback(c.nota), "nota %d", c.nota)
		assert.Equal(t, c.rotulo, RotuloFeedback(c.nota), "nota %d", c.nota)
	}
}

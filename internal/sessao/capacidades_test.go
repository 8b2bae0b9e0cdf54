package sessao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverEntradasInvalidas(t *testing.T) {
	casos := map[string][]byte{
		"vazio":              nil,
		"json malformado":    []byte(`{"role": `),
		"papel desconhecido": []byte(`{"id":"1","username":"x","role":"super_admin"}`),
		"sem papel":          []byte(`{"id":"1","username":"x"}`),
	}
	for nome, bruto := range casos {
		t.Run(nome, func(t *testing.T) {
			caps := Resolver(bruto)
			assert.Equal(t, Capacidades{}, caps)
			assert.False(t, caps.Autenticado)
		})
	}
}

func TestResolverMatrizDePapeis(t *testing.T) {
	casos := []struct {
		papel     string
		parceiros bool
		clientes  bool
		usuarios  bool
		visao     bool
	}{
		{PapelAdminGlobal, true, true, true, false},
		{PapelAdminParceiro, false, false, true, false},
		{PapelUsuarioParceiro, false, false, false, true},
	}
	for _, c := range casos {
		t.Run(c.papel, func(t *testing.T) {
			caps := Resolver([]byte(`{"id":"7","username":"ana","role":"` + c.papel + `","partner_id":"p-1"}`))
			require.True(t, caps.Autenticado)
			assert.Equal(t, c.papel, caps.Papel)
			assert.Equal(t, "p-1", caps.ParceiroID)
			assert.Equal(t, c.parceiros, caps.PodeGerirParceiros)
			assert.Equal(t, c.clientes, caps.PodeGerirClientes)
			assert.Equal(t, c.usuarios, caps.PodeGerirUsuarios)
			assert.Equal(t, c.visao, caps.VisaoCliente)
		})
	}
}

func TestResolverSemParceiro(t *testing.T) {
	caps := Resolver([]byte(`{"id":"7","username":"ana","role":"admin_global","partner_id":null}`))
	require.True(t, caps.Autenticado)
	assert.Empty(t, caps.ParceiroID)
	assert.True(t, caps.AdminGlobal())
}

func TestTokenExpirado(t *testing.T) {
	// token opaco (não JWT) nunca expira localmente
	assert.False(t, TokenExpirado("token-opaco-qualquer"))

	// JWT sem assinatura válida mas com exp no passado: só a claim importa
	expirado := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJleHAiOjk0NjY4NDgwMH0." + // exp = 2000-01-01
		"assinatura-ignorada"
	assert.True(t, TokenExpirado(expirado))
}

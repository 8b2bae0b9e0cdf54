package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func novoClienteTeste(t *testing.T, handler http.HandlerFunc) *Cliente {
	t.Helper()
	servidor := httptest.NewServer(handler)
	t.Cleanup(servidor.Close)
	return Novo(servidor.URL, 5*time.Second, zap.NewNop())
}

func TestGetEnviaBearerToken(t *testing.T) {
	var autorizacao string
	c := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		autorizacao = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"1"}`))
	})

	var saida struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Get(context.Background(), "tok-123", "/contracts/1", &saida))
	assert.Equal(t, "Bearer tok-123", autorizacao)
	assert.Equal(t, "1", saida.ID)
}

func TestGetSemTokenNaoEnviaAutorizacao(t *testing.T) {
	var autorizacao string
	c := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		autorizacao = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	require.NoError(t, c.Get(context.Background(), "", "/auth/login", nil))
	assert.Empty(t, autorizacao)
}

func TestErroComEnvelope(t *testing.T) {
	c := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"parceiro possui clientes vinculados"}`))
	})

	err := c.Delete(context.Background(), "tok", "/partners/1")
	require.Error(t, err)
	assert.True(t, EhConflito(err))
	assert.Equal(t, "parceiro possui clientes vinculados", Mensagem(err))
}

func TestErroComTextoCru(t *testing.T) {
	c := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`dados inválidos`))
	})

	err := c.Get(context.Background(), "tok", "/contracts", nil)
	require.Error(t, err)
	assert.True(t, EhValidacao(err))
	assert.Equal(t, "dados inválidos", Mensagem(err))
}

func TestErroSemCorpo(t *testing.T) {
	c := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.Get(context.Background(), "tok", "/dashboard", nil)
	require.Error(t, err)
	assert.Contains(t, Mensagem(err), "500")
}

func TestErroDeRedeTemMensagemGenerica(t *testing.T) {
	c := Novo("http://127.0.0.1:1", time.Second, zap.NewNop())
	err := c.Get(context.Background(), "tok", "/dashboard", nil)
	require.Error(t, err)
	assert.False(t, EhNaoAutorizado(err))
	assert.Equal(t, "não foi possível comunicar com o servidor", Mensagem(err))
}

func TestListaComEnvelope(t *testing.T) {
	c := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/partners", r.URL.Path)
		w.Write([]byte(`{"partners":[{"id":"1","name":"Acme"}]}`))
	})

	lista, err := Lista[registro](context.Background(), c, "tok", "/partners", "partners")
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Acme", lista[0].Nome)
}

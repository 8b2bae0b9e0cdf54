package cliente

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/parceiro"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/web"
)

func novoHandlerTeste(t *testing.T, upstream http.HandlerFunc) (*Handler, *sessao.Armazenamento) {
	t.Helper()
	servidor := httptest.NewServer(upstream)
	t.Cleanup(servidor.Close)

	log := zap.NewNop()
	clienteAPI := api.Novo(servidor.URL, 5*time.Second, log)
	paginas, err := web.NovoRenderizador(log)
	require.NoError(t, err)

	sessoes := &sessao.Armazenamento{}
	h := NovoHandler(NovoRecurso(clienteAPI), parceiro.NovoRecurso(clienteAPI), sessoes, paginas, log)
	return h, sessoes
}

func requisicaoComo(t *testing.T, sessoes *sessao.Armazenamento, usuario sessao.Usuario, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	gravador := httptest.NewRecorder()
	sessoes.Gravar(gravador, "tok-teste", usuario)
	for _, c := range gravador.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCriarAdminGlobalSemParceiroEhBarradoLocalmente(t *testing.T) {
	posts := 0
	h, sessoes := novoHandlerTeste(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
		}
		w.Write([]byte(`[]`))
	})

	admin := sessao.Usuario{ID: "u1", Username: "ana", Papel: sessao.PapelAdminGlobal, Ativo: true}
	form := url.Values{"name": {"Acme"}} // sem partner_id
	resp := httptest.NewRecorder()
	sessoes.Exigir(http.HandlerFunc(h.Criar)).ServeHTTP(resp, requisicaoComo(t, sessoes, admin, form))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Zero(t, posts, "a rejeição local não pode gerar chamada de escrita")
	assert.Contains(t, resp.Body.String(), "Parceiro é obrigatório")
}

func TestCriarAdminGlobalEnviaParceiroEscolhido(t *testing.T) {
	var capturado map[string]any
	h, sessoes := novoHandlerTeste(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/clients" {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&capturado))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"cl-1"}`))
			return
		}
		w.Write([]byte(`[]`))
	})

	admin := sessao.Usuario{ID: "u1", Username: "ana", Papel: sessao.PapelAdminGlobal, Ativo: true}
	form := url.Values{
		"name":       {"Acme"},
		"cnpj":       {"12.345.678/0001-90"},
		"partner_id": {"p-9"},
	}
	resp := httptest.NewRecorder()
	sessoes.Exigir(http.HandlerFunc(h.Criar)).ServeHTTP(resp, requisicaoComo(t, sessoes, admin, form))

	require.Equal(t, http.StatusSeeOther, resp.Code, resp.Body.String())
	require.NotNil(t, capturado)
	assert.Equal(t, "p-9", capturado["partner_id"])
	assert.Equal(t, "12345678000190", capturado["cnpj"], "CNPJ vai sem máscara")
}

func TestCriarAdminDeParceiroUsaOVinculoDaSessao(t *testing.T) {
	var capturado map[string]any
	h, sessoes := novoHandlerTeste(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/clients" {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&capturado))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"cl-1"}`))
			return
		}
		w.Write([]byte(`[]`))
	})

	pid := "p-1"
	admin := sessao.Usuario{ID: "u2", Username: "bia", Papel: sessao.PapelAdminParceiro, ParceiroID: &pid, Ativo: true}
	form := url.Values{"name": {"Acme"}}
	resp := httptest.NewRecorder()
	sessoes.Exigir(http.HandlerFunc(h.Criar)).ServeHTTP(resp, requisicaoComo(t, sessoes, admin, form))

	require.Equal(t, http.StatusSeeOther, resp.Code, resp.Body.String())
	require.NotNil(t, capturado)
	assert.Equal(t, "p-1", capturado["partner_id"], "o vínculo vem da sessão, não do formulário")
}

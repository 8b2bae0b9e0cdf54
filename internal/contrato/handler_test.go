package contrato

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
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/cliente"
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
	h := NovoHandler(NovoRecurso(clienteAPI), cliente.NovoRecurso(clienteAPI), sessoes, paginas, log)
	return h, sessoes
}

func requisicaoAutenticada(t *testing.T, sessoes *sessao.Armazenamento, metodo, alvo string, form url.Values) *http.Request {
	t.Helper()
	var corpo *strings.Reader
	if form != nil {
		corpo = strings.NewReader(form.Encode())
	} else {
		corpo = strings.NewReader("")
	}
	req := httptest.NewRequest(metodo, alvo, corpo)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	gravador := httptest.NewRecorder()
	sessoes.Gravar(gravador, "tok-teste", sessao.Usuario{ID: "u1", Username: "ana", Papel: sessao.PapelAdminGlobal, Ativo: true})
	for _, c := range gravador.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCriarEnviaNumeroEDataISO(t *testing.T) {
	var capturado map[string]any
	h, sessoes := novoHandlerTeste(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/contracts" {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&capturado))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"c-1"}`))
			return
		}
		w.Write([]byte(`[]`))
	})

	form := url.Values{
		"name":        {"Projeto X"},
		"client_id":   {"cl-1"},
		"total_value": {"15000.00"},
		"status":      {StatusAtivo},
		"end_date":    {"31/12/2026"},
	}
	req := requisicaoAutenticada(t, sessoes, http.MethodPost, "/contratos", form)
	resp := httptest.NewRecorder()
	sessoes.Exigir(http.HandlerFunc(h.Criar)).ServeHTTP(resp, req)

	require.Equal(t, http.StatusSeeOther, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Header().Get("Location"), "/contratos?ok=")

	require.NotNil(t, capturado)
	assert.Equal(t, "Projeto X", capturado["name"])
	assert.Equal(t, "cl-1", capturado["client_id"])
	assert.Equal(t, float64(15000), capturado["total_value"], "valor vai como número JSON, não string")
	assert.Equal(t, "2026-12-31T00:00:00Z", capturado["end_date"])
	assert.Equal(t, StatusAtivo, capturado["status"])
}

func TestCriarReprovadoNaoChegaAoServidor(t *testing.T) {
	posts := 0
	h, sessoes := novoHandlerTeste(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
		}
		w.Write([]byte(`[]`))
	})

	// sem nome e com data impossível
	form := url.Values{
		"client_id":   {"cl-1"},
		"total_value": {"100"},
		"status":      {StatusAtivo},
		"end_date":    {"31/02/2026"},
	}
	req := requisicaoAutenticada(t, sessoes, http.MethodPost, "/contratos", form)
	resp := httptest.NewRecorder()
	sessoes.Exigir(http.HandlerFunc(h.Criar)).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Zero(t, posts)
	assert.Contains(t, resp.Body.String(), "obrigatório")
}

func TestListarSemSessaoRedireciona(t *testing.T) {
	h, sessoes := novoHandlerTeste(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/contratos", nil)
	resp := httptest.NewRecorder()
	sessoes.Exigir(http.HandlerFunc(h.Listar)).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/login", resp.Header().Get("Location"))
}

func TestSessaoExpiradaDerrubaParaOLogin(t *testing.T) {
	h, sessoes := novoHandlerTeste(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expirado"}`))
	})

	req := requisicaoAutenticada(t, sessoes, http.MethodGet, "/contratos", nil)
	resp := httptest.NewRecorder()
	sessoes.Exigir(http.HandlerFunc(h.Listar)).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/login", resp.Header().Get("Location"))
}

func TestExportarCSV(t *testing.T) {
	h, sessoes := novoHandlerTeste(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ativo", r.URL.Query().Get("status"))
		w.Write([]byte(`[{"id":"c-1","name":"Projeto X","total_value":"15000.00","billed_value":"5000.00","balance":"10000.00","status":"ativo","end_date":"2026-12-31T00:00:00Z","billed_percentage":33.3,"client":{"id":"cl-1","name":"Acme"}}]`))
	})

	req := requisicaoAutenticada(t, sessoes, http.MethodGet, "/contratos/exportar?status=ativo", nil)
	resp := httptest.NewRecorder()
	sessoes.Exigir(http.HandlerFunc(h.ExportarCSV)).ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "contratos.csv")

	linhas := strings.Split(strings.TrimSpace(resp.Body.String()), "\n")
	require.Len(t, linhas, 2)
	assert.Contains(t, linhas[0], "Contrato")
	assert.Contains(t, linhas[1], "Projeto X")
	assert.Contains(t, linhas[1], "Acme")
	assert.Contains(t, linhas[1], "31/12/2026")
}

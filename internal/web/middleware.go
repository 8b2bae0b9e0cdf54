package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
)

// Registrar loga cada requisição com um ID próprio, método, caminho, status
// e latência.
func Registrar(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			id := uuid.NewString()
			w.Header().Set("X-Request-ID", id)

			gravador := &gravaStatus{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(gravador, r)

			log.Info("requisição",
				zap.String("id", id),
				zap.String("metodo", r.Method),
				zap.String("caminho", r.URL.Path),
				zap.Int("status", gravador.status),
				zap.Duration("duracao", time.Since(inicio)))
		})
	}
}

type gravaStatus struct {
	http.ResponseWriter
	status int
}

func (g *gravaStatus) WriteHeader(status int) {
	g.status = status
	g.ResponseWriter.WriteHeader(status)
}

// TratarErro concentra o destino das falhas da API: 401 derruba a sessão e
// manda ao login, 403 vira tela cheia de acesso negado, o resto volta false
// para a página exibir a mensagem no banner. Devolve true quando a resposta
// já foi escrita.
func TratarErro(w http.ResponseWriter, r *http.Request, rz *Renderizador, sessoes *sessao.Armazenamento, err error) bool {
	if err == nil {
		return false
	}
	if api.EhNaoAutorizado(err) {
		sessoes.Limpar(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return true
	}
	if api.EhProibido(err) {
		rz.PaginaErro(w, http.StatusForbidden, "Acesso negado. Sua conta não tem permissão para esta área.", sessao.Das(r))
		return true
	}
	return false
}

package sessao

import (
	"context"
	"net/http"
)

type ctxKey string

const (
	ctxCapacidades ctxKey = "capacidades"
	ctxToken       ctxKey = "token"
)

// Exigir garante sessão autenticada e token ainda válido; caso contrário
// limpa os cookies e redireciona para o login. As capacidades e o token
// resolvidos ficam disponíveis no contexto da requisição.
func (a *Armazenamento) Exigir(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, caps := a.Ler(r)
		if !caps.Autenticado || token == "" || TokenExpirado(token) {
			a.Limpar(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), ctxCapacidades, caps)
		ctx = context.WithValue(ctx, ctxToken, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Das devolve as capacidades resolvidas para a requisição.
func Das(r *http.Request) Capacidades {
	caps, _ := r.Context().Value(ctxCapacidades).(Capacidades)
	return caps
}

// Token devolve o bearer token da sessão corrente.
func Token(r *http.Request) string {
	token, _ := r.Context().Value(ctxToken).(string)
	return token
}

// ExigirCapacidade bloqueia a rota quando o teste de capacidade reprova,
// respondendo 403 sem oferecer caminho de repetição.
func ExigirCapacidade(teste func(Capacidades) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !teste(Das(r)) {
				http.Error(w, "acesso negado", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

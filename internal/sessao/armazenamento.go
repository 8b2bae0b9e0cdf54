package sessao

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Nomes dos cookies que espelham o par token/usuário que a versão em browser
// guardava no armazenamento local. Ambos são limpos no logout.
const (
	cookieToken   = "ccm_token"
	cookieUsuario = "ccm_user"
)

// Armazenamento grava e lê a sessão em cookies HTTP.
type Armazenamento struct {
	Seguro bool
}

// Gravar persiste o token e o registro do usuário devolvidos pelo login.
func (a *Armazenamento) Gravar(w http.ResponseWriter, token string, u Usuario) {
	dados, err := json.Marshal(u)
	if err != nil {
		dados = nil
	}
	a.gravarCookie(w, cookieToken, token)
	a.gravarCookie(w, cookieUsuario, base64.RawURLEncoding.EncodeToString(dados))
}

// Limpar encerra a sessão removendo os dois cookies.
func (a *Armazenamento) Limpar(w http.ResponseWriter) {
	for _, nome := range []string{cookieToken, cookieUsuario} {
		http.SetCookie(w, &http.Cookie{
			Name:     nome,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   a.Seguro,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// Ler recupera o token e resolve as capacidades da requisição. Cookies
// ausentes ou corrompidos produzem uma sessão não autenticada.
func (a *Armazenamento) Ler(r *http.Request) (string, Capacidades) {
	token := valorCookie(r, cookieToken)

	bruto := valorCookie(r, cookieUsuario)
	if bruto == "" {
		return token, Capacidades{}
	}
	dados, err := base64.RawURLEncoding.DecodeString(bruto)
	if err != nil {
		return token, Capacidades{}
	}
	return token, Resolver(dados)
}

func (a *Armazenamento) gravarCookie(w http.ResponseWriter, nome, valor string) {
	http.SetCookie(w, &http.Cookie{
		Name:     nome,
		Value:    valor,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.Seguro,
		SameSite: http.SameSiteLaxMode,
	})
}

func valorCookie(r *http.Request, nome string) string {
	c, err := r.Cookie(nome)
	if err != nil {
		return ""
	}
	return c.Value
}

// TokenExpirado lê a claim exp do token sem validar a assinatura; a chave
// pública pertence à API, não ao portal. Serve apenas para mandar o usuário
// de volta ao login antes de uma sequência de 401. Tokens opacos ou sem exp
// nunca expiram localmente.
func TokenExpirado(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}

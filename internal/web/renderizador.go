package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/formato"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
)

//go:embed templates/*.html
var arquivos embed.FS

// Base carrega o que todas as páginas precisam: título, capacidades da
// sessão (para a navegação condicionada por papel), mensagem de sucesso e
// erro a exibir no banner.
type Base struct {
	Titulo string
	Caps   sessao.Capacidades
	Flash  string
	Erro   string
}

// Renderizador executa os templates embutidos do portal.
type Renderizador struct {
	modelos *template.Template
	log     *zap.Logger
}

// NovoRenderizador faz o parse do conjunto de templates com as funções de
// formatação compartilhadas.
func NovoRenderizador(log *zap.Logger) (*Renderizador, error) {
	funcs := template.FuncMap{
		"moeda":          formato.FormatarMoeda,
		"moedaTexto":     moedaTexto,
		"data":           formato.FormatarData,
		"cnpj":           formato.FormatarCNPJ,
		"percentual":     func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"classeFeedback": formato.ClasseFeedback,
		"rotuloFeedback": formato.RotuloFeedback,
	}
	modelos, err := template.New("portal").Funcs(funcs).ParseFS(arquivos, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("carregar templates: %w", err)
	}
	return &Renderizador{modelos: modelos, log: log}, nil
}

// moedaTexto formata valores monetários que a API devolve como string.
func moedaTexto(valor string) string {
	d, err := formato.InterpretarMoeda(valor)
	if err != nil {
		return valor
	}
	return formato.FormatarMoeda(d.InexactFloat64())
}

// Pagina renderiza um template nomeado com os dados da página.
func (rz *Renderizador) Pagina(w http.ResponseWriter, nome string, dados any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rz.modelos.ExecuteTemplate(w, nome, dados); err != nil {
		rz.log.Error("falha ao renderizar página", zap.String("template", nome), zap.Error(err))
		http.Error(w, "erro interno ao montar a página", http.StatusInternalServerError)
	}
}

// PaginaErro renderiza a tela cheia de erro (403 e afins), sem caminho de
// repetição.
func (rz *Renderizador) PaginaErro(w http.ResponseWriter, status int, mensagem string, caps sessao.Capacidades) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	dados := struct {
		Base
		Status int
	}{Base: Base{Titulo: "Erro", Caps: caps, Erro: mensagem}, Status: status}
	if err := rz.modelos.ExecuteTemplate(w, "erro", dados); err != nil {
		rz.log.Error("falha ao renderizar erro", zap.Error(err))
		http.Error(w, mensagem, status)
	}
}

package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/api"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/cliente"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/config"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/consultor"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/contrato"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/painel"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/parceiro"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/parcela"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/sessao"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/usuario"
	"github.com/wsbdeveloper/portal-coddfy-frontend/internal/web"
)

func main() {
	cfg, err := config.Carregar()
	if err != nil {
		panic(err)
	}

	var log *zap.Logger
	if cfg.Producao() {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	paginas, err := web.NovoRenderizador(log)
	if err != nil {
		log.Fatal("falha ao carregar templates", zap.Error(err))
	}

	clienteAPI := api.Novo(cfg.APIBaseURL, cfg.APITimeout, log)
	sessoes := &sessao.Armazenamento{Seguro: cfg.CookieSeguro}

	/* ===== recursos da API ===== */
	usuarios := usuario.NovoRecurso(clienteAPI)
	parceiros := parceiro.NovoRecurso(clienteAPI)
	clientes := cliente.NovoRecurso(clienteAPI)
	contratos := contrato.NovoRecurso(clienteAPI)
	parcelas := parcela.NovoRecurso(clienteAPI)
	consultores := consultor.NovoRecurso(clienteAPI)
	dashboard := painel.NovoRecurso(clienteAPI)

	/* ===== handlers ===== */
	hUsuario := usuario.NovoHandler(usuarios, parceiros, clientes, sessoes, paginas, log)
	hParceiro := parceiro.NovoHandler(parceiros, sessoes, paginas, log)
	hCliente := cliente.NovoHandler(clientes, parceiros, sessoes, paginas, log)
	hContrato := contrato.NovoHandler(contratos, clientes, sessoes, paginas, log)
	hParcela := parcela.NovoHandler(parcelas, contratos, sessoes, paginas, log)
	hConsultor := consultor.NovoHandler(consultores, contratos, parceiros, sessoes, paginas, log)
	hPainel := painel.NovoHandler(dashboard, sessoes, paginas, log)

	r := mux.NewRouter()
	r.Use(web.Registrar(log))

	/* ===== rotas públicas ===== */
	r.HandleFunc("/login", hUsuario.Entrar).Methods(http.MethodGet)
	r.HandleFunc("/login", hUsuario.Autenticar).Methods(http.MethodPost)
	r.HandleFunc("/logout", hUsuario.Sair).Methods(http.MethodPost)

	/* ===== rotas autenticadas ===== */
	s := r.NewRoute().Subrouter()
	s.Use(sessoes.Exigir)

	s.HandleFunc("/", hPainel.Exibir).Methods(http.MethodGet)

	s.HandleFunc("/contratos", hContrato.Listar).Methods(http.MethodGet)
	s.HandleFunc("/contratos", hContrato.Criar).Methods(http.MethodPost)
	s.HandleFunc("/contratos/exportar", hContrato.ExportarCSV).Methods(http.MethodGet)
	s.HandleFunc("/contratos/{id}/excluir", hContrato.Remover).Methods(http.MethodPost)

	s.HandleFunc("/faturamento", hParcela.Listar).Methods(http.MethodGet)
	s.HandleFunc("/faturamento", hParcela.Criar).Methods(http.MethodPost)
	s.HandleFunc("/faturamento/exportar", hParcela.ExportarCSV).Methods(http.MethodGet)
	s.HandleFunc("/parcelas/{id}/faturar", hParcela.MarcarFaturada).Methods(http.MethodPost)
	s.HandleFunc("/parcelas/{id}/excluir", hParcela.Remover).Methods(http.MethodPost)

	s.HandleFunc("/consultores", hConsultor.Listar).Methods(http.MethodGet)
	s.HandleFunc("/consultores", hConsultor.Criar).Methods(http.MethodPost)
	s.HandleFunc("/consultores/{id}/feedbacks", hConsultor.Feedbacks).Methods(http.MethodGet)

	sc := s.NewRoute().Subrouter()
	sc.Use(sessao.ExigirCapacidade(func(c sessao.Capacidades) bool { return c.PodeGerirClientes }))
	sc.HandleFunc("/clientes", hCliente.Listar).Methods(http.MethodGet)
	sc.HandleFunc("/clientes", hCliente.Criar).Methods(http.MethodPost)
	sc.HandleFunc("/clientes/{id}", hCliente.Atualizar).Methods(http.MethodPost)
	sc.HandleFunc("/clientes/{id}/excluir", hCliente.Remover).Methods(http.MethodPost)

	sp := s.NewRoute().Subrouter()
	sp.Use(sessao.ExigirCapacidade(func(c sessao.Capacidades) bool { return c.PodeGerirParceiros }))
	sp.HandleFunc("/parceiros", hParceiro.Listar).Methods(http.MethodGet)
	sp.HandleFunc("/parceiros", hParceiro.Criar).Methods(http.MethodPost)
	sp.HandleFunc("/parceiros/{id}/ativo", hParceiro.AlternarAtivo).Methods(http.MethodPost)
	sp.HandleFunc("/parceiros/{id}/excluir", hParceiro.Remover).Methods(http.MethodPost)

	sg := s.NewRoute().Subrouter()
	sg.Use(sessao.ExigirCapacidade(func(c sessao.Capacidades) bool { return c.PodeGerirUsuarios }))
	sg.HandleFunc("/gestao", hUsuario.Gestao).Methods(http.MethodGet)
	sg.HandleFunc("/gestao/usuarios", hUsuario.Criar).Methods(http.MethodPost)
	sg.HandleFunc("/gestao/usuarios/{id}", hUsuario.Atualizar).Methods(http.MethodPost)
	sg.HandleFunc("/gestao/usuarios/{id}/excluir", hUsuario.Remover).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.OrigensCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	})

	log.Info("portal no ar", zap.String("endereco", cfg.Endereco), zap.String("api", cfg.APIBaseURL))
	if err := http.ListenAndServe(cfg.Endereco, c.Handler(r)); err != nil {
		log.Fatal("servidor encerrado", zap.Error(err))
	}
}

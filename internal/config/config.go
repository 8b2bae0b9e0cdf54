package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config reúne toda a configuração do portal, lida do ambiente.
type Config struct {
	Endereco     string        `env:"PORTAL_ADDR" envDefault:":3000"`
	APIBaseURL   string        `env:"PORTAL_API_BASE_URL" envDefault:"http://localhost:8080/api/v1"`
	APITimeout   time.Duration `env:"PORTAL_API_TIMEOUT" envDefault:"30s"`
	CookieSeguro bool          `env:"PORTAL_COOKIE_SECURE" envDefault:"false"`
	OrigensCORS  []string      `env:"PORTAL_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	Ambiente     string        `env:"PORTAL_ENV" envDefault:"development"`
}

// Carregar lê o .env (quando existir) e faz o parse das variáveis PORTAL_*.
func Carregar() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Producao indica se o portal está rodando em ambiente de produção.
func (c *Config) Producao() bool { return c.Ambiente == "production" }

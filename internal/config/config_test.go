package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server: Server{Host: "localhost", Port: "8000"},
		Apotek: Apotek{
			BaseURL:        "https://api.example.com/api",
			OrdersPath:     "/pesanan",
			OrderLinesPath: "/detail-pesanan/pesanan/{id}",
			ProductsPath:   "/obat",
		},
		Auth: Auth{
			Secret:            "0123456789abcdef0123",
			TokenTTL:          time.Hour,
			AdminEmail:        "admin@apotek.com",
			AdminPasswordHash: "$2a$10$hash",
		},
		Report: Report{MaxConcurrentFetches: 4},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		hasError bool
	}{
		{name: "Configuração válida", mutate: func(c *Config) {}},
		{name: "URL base inválida", mutate: func(c *Config) { c.Apotek.BaseURL = "not a url" }, hasError: true},
		{name: "Caminho de itens sem {id}", mutate: func(c *Config) { c.Apotek.OrderLinesPath = "/detail-pesanan" }, hasError: true},
		{name: "Porta não numérica", mutate: func(c *Config) { c.Server.Port = "http" }, hasError: true},
		{name: "Segredo curto", mutate: func(c *Config) { c.Auth.Secret = "abc" }, hasError: true},
		{name: "Sem hash de senha do admin", mutate: func(c *Config) { c.Auth.AdminPasswordHash = "" }, hasError: true},
		{name: "Concorrência zero", mutate: func(c *Config) { c.Report.MaxConcurrentFetches = 0 }, hasError: true},
		{name: "Banco habilitado sem URL", mutate: func(c *Config) { c.Database.Enabled = true }, hasError: true},
		{
			name: "Banco habilitado com URL",
			mutate: func(c *Config) {
				c.Database.Enabled = true
				c.Database.URL = "localhost:5432/apotek"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

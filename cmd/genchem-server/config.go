package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/daniacca/genchem/internal/genchem"
	"github.com/daniacca/genchem/internal/genchem/notifiers"
	"github.com/go-playground/validator/v10"
)

// ServerConfig holds the server configuration. Values come from the
// environment first; command-line flags override them.
type ServerConfig struct {
	Addr          string  `env:"GENCHEM_ADDR" envDefault:":8080" validate:"required"`
	LogLevel      string  `env:"GENCHEM_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	MaxSpecies    int     `env:"GENCHEM_MAX_SPECIES" envDefault:"12" validate:"gte=1"`
	MaxOrder      int     `env:"GENCHEM_MAX_ORDER" envDefault:"3" validate:"gte=1"`
	RateLimit     float64 `env:"GENCHEM_RATE_LIMIT" envDefault:"5" validate:"gte=0"`
	RateBurst     int     `env:"GENCHEM_RATE_BURST" envDefault:"10" validate:"gte=1"`
	WebhookURL    string  `env:"GENCHEM_WEBHOOK_URL" validate:"omitempty,url"`
	WebhookEvents string  `env:"GENCHEM_WEBHOOK_EVENTS"`
	SystemFile    string  `env:"GENCHEM_SYSTEM_FILE"`
}

// loadServerConfig resolves the configuration with flag > env > default
// precedence. args excludes the program name.
func loadServerConfig(args []string, stderr io.Writer) (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("genchem-server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address (e.g. :8080, 0.0.0.0:8080)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.IntVar(&cfg.MaxSpecies, "max-species", cfg.MaxSpecies, "largest species count accepted by generation endpoints")
	fs.IntVar(&cfg.MaxOrder, "max-order", cfg.MaxOrder, "largest reaction order accepted by generation endpoints")
	fs.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "generation requests per second; 0 disables throttling")
	fs.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "burst size for generation requests")
	fs.StringVar(&cfg.WebhookURL, "webhook-url", cfg.WebhookURL, "optional URL that receives chemistry events")
	fs.StringVar(&cfg.WebhookEvents, "webhook-events", cfg.WebhookEvents, "comma separated event types sent to the webhook (default all)")
	fs.StringVar(&cfg.SystemFile, "system-file", cfg.SystemFile, "optional system file (JSON or YAML) to load at startup")
	if err := fs.Parse(args); err != nil {
		return ServerConfig{}, err
	}

	if err := validateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func validateServerConfig(cfg ServerConfig) error {
	verr := &genchem.ValidationError{}
	if _, err := notifiers.ParseEventTypes(cfg.WebhookEvents); err != nil {
		verr.Add("WebhookEvents: " + err.Error())
	}

	err := validator.New().Struct(cfg)
	if err == nil {
		if verr.HasIssues() {
			return verr
		}
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			verr.Add(fmt.Sprintf("%s failed %s validation (value %v)", fe.Field(), fe.Tag(), fe.Value()))
		}
	} else {
		verr.Add(err.Error())
	}
	return verr
}

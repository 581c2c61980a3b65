package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SessionSecret string
	AdminUser     string
	AdminPass     string
	Mail          MailConfig
}

// MailConfig holds the SMTP notifier settings. An empty Host disables the
// notifier entirely; submissions still succeed.
type MailConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
	To   string
}

// Enabled reports whether an SMTP host is configured
func (m MailConfig) Enabled() bool {
	return m.Host != ""
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("contactdesk", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie signing secret (prefer env)")
	fs.StringVar(&cfg.AdminUser, "admin-user", "", "Bootstrap admin username (prefer env)")
	fs.StringVar(&cfg.AdminPass, "admin-pass", "", "Bootstrap admin password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "./database.sqlite"
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.AdminUser == "" {
		cfg.AdminUser = os.Getenv("ADMIN_USER")
	}
	if cfg.AdminUser == "" {
		return Config{}, errors.New("ADMIN_USER required")
	}

	if cfg.AdminPass == "" {
		cfg.AdminPass = os.Getenv("ADMIN_PASS")
	}
	if cfg.AdminPass == "" {
		return Config{}, errors.New("ADMIN_PASS required")
	}

	// Mail settings are env-only and optional as a group
	cfg.Mail = MailConfig{
		Host: os.Getenv("EMAIL_HOST"),
		Port: 587,
		User: os.Getenv("EMAIL_USER"),
		Pass: os.Getenv("EMAIL_PASS"),
		From: os.Getenv("EMAIL_FROM"),
		To:   os.Getenv("EMAIL_TO"),
	}
	if portStr := os.Getenv("EMAIL_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, errors.New("invalid EMAIL_PORT env variable")
		}
		cfg.Mail.Port = port
	}
	if cfg.Mail.Enabled() && (cfg.Mail.From == "" || cfg.Mail.To == "") {
		return Config{}, errors.New("EMAIL_FROM and EMAIL_TO required when EMAIL_HOST is set")
	}

	return cfg, nil
}

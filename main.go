package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/contactdesk/cliparse"
	"github.com/danielhkuo/contactdesk/db"
	"github.com/danielhkuo/contactdesk/mailer"
	"github.com/danielhkuo/contactdesk/router"
	"github.com/danielhkuo/contactdesk/session"
	"github.com/danielhkuo/contactdesk/store"
	"github.com/danielhkuo/contactdesk/views"
)

func main() {
	var err error

	// Load .env for local development; absence is fine
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (sqlite by default, postgres by config)
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	submissions := store.NewSubmissionStore(dbConn)
	accounts := store.NewAccountStore(dbConn)

	// Bootstrap the admin account before accepting traffic. The service
	// must not run without a verifiable admin identity.
	if err := accounts.EnsureAdmin(cfg.AdminUser, cfg.AdminPass); err != nil {
		slog.Error("admin bootstrap failed", "error", err)
		os.Exit(1)
	}

	// Outbound mail is optional; without a host submissions still succeed
	var notifier mailer.Notifier = mailer.Discard{}
	if cfg.Mail.Enabled() {
		notifier, err = mailer.NewSMTPMailer(cfg.Mail)
		if err != nil {
			slog.Error("mailer setup failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Mail notifications enabled", "host", cfg.Mail.Host)
	} else {
		slog.Info("Mail notifications disabled (no EMAIL_HOST)")
	}

	sessions := session.NewManager(cfg.SessionSecret)
	go func() {
		for range time.Tick(10 * time.Minute) {
			sessions.Sweep()
		}
	}()

	renderer, err := views.New()
	if err != nil {
		slog.Error("template setup failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(router.Deps{
		Submissions: submissions,
		Accounts:    accounts,
		Sessions:    sessions,
		Notifier:    notifier,
		Renderer:    renderer,
		StaticDir:   "public",
	})

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

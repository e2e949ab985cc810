package registration

// Config is a configuration for the registration application
type Config struct {
	HTTPAddr string
	// RepoBackend selects "pg" or "mem"; mem is only honoured with AllowMemBackend.
	RepoBackend     string
	AllowMemBackend bool
	DSN             string
	// LedgerURL is the spreadsheet webhook; empty disables ledger rows.
	LedgerURL string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:    "localhost:5001",
		RepoBackend: "pg",
	}
}

// ConfigFromEnv overlays environment variables on DefaultConfig.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.RepoBackend = getenv("REPO_BACKEND", cfg.RepoBackend)
	cfg.AllowMemBackend = getenv("ALLOW_MEM_BACKEND_FOR_TESTS", "false") == "true"
	cfg.DSN = getenv("DB_DSN", "")
	cfg.LedgerURL = getenv("LEDGER_URL", "")
	return cfg
}

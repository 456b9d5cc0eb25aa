package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8000"
	defaultModelName       = "gpt-5-mini"
	defaultAnthropicModel  = "claude-sonnet-4-20250514"
	defaultModelAPIVersion = "2024-10-21"
	defaultModelTimeout    = 60 * time.Second
	defaultDABURL          = "http://localhost:5000"
	defaultDABTimeout      = 10 * time.Second
	defaultFrontendDir     = "../frontend"
	defaultEnvFile         = "../.env"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:8000",
}

// loads configuration from .env files, an optional YAML overlay and the environment
func LoadEnvironmentVariables() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = defaultEnvFile
	}

	// neither file has to exist; real environment variables always win
	_ = godotenv.Load(envFile) //nolint:errcheck
	_ = godotenv.Load()        //nolint:errcheck

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		if err := fc.apply(cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnvironment(cfg); err != nil {
		return nil, err
	}

	if cfg.ModelName == "" {
		cfg.ModelName = defaultModelName
		if cfg.ModelProvider == ProviderAnthropic {
			cfg.ModelName = defaultAnthropicModel
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Environment:        "development",
		Port:               defaultPort,
		Dialect:            DialectSQLServer,
		ModelProvider:      ProviderAzure,
		ModelAPIVersion:    defaultModelAPIVersion,
		ModelTimeout:       defaultModelTimeout,
		DABURL:             defaultDABURL,
		DABTimeout:         defaultDABTimeout,
		FrontendDir:        defaultFrontendDir,
		CORSAllowedOrigins: append([]string(nil), defaultCORSOrigins...),
	}
}

func applyEnvironment(cfg *Config) error {
	setString(&cfg.Environment, os.Getenv("ENVIRONMENT"))
	setString(&cfg.Port, os.Getenv("PORT"))
	setString(&cfg.ConnectionString, os.Getenv("SERVER_CONNECTION_STRING"))
	setString(&cfg.Dialect, strings.ToLower(os.Getenv("DATABASE_DIALECT")))
	setString(&cfg.SearchProcedure, os.Getenv("SEARCH_PROCEDURE"))
	setString(&cfg.ModelProvider, strings.ToLower(os.Getenv("MODEL_PROVIDER")))

	// MODEL_ENDPOINT_URL takes precedence over the Azure-specific name
	setString(&cfg.ModelEndpoint, os.Getenv("AZURE_OPENAI_ENDPOINT"))
	setString(&cfg.ModelEndpoint, os.Getenv("MODEL_ENDPOINT_URL"))

	setString(&cfg.ModelAPIKey, os.Getenv("MODEL_API_KEY"))
	setString(&cfg.ModelName, os.Getenv("MODEL_NAME"))
	setString(&cfg.ModelAPIVersion, os.Getenv("AZURE_OPENAI_API_VERSION"))
	setString(&cfg.DABURL, os.Getenv("DAB_URL"))
	setString(&cfg.FrontendDir, os.Getenv("FRONTEND_DIR"))

	if v := os.Getenv("MODEL_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MODEL_MAX_TOKENS must be an integer: %w", err)
		}

		cfg.ModelMaxTokens = n
	}

	if err := setDuration(&cfg.ModelTimeout, os.Getenv("MODEL_TIMEOUT")); err != nil {
		return fmt.Errorf("MODEL_TIMEOUT must be a duration: %w", err)
	}

	if err := setDuration(&cfg.DABTimeout, os.Getenv("DAB_TIMEOUT")); err != nil {
		return fmt.Errorf("DAB_TIMEOUT must be a duration: %w", err)
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}

		cfg.CORSAllowedOrigins = origins
	}

	return nil
}

// checks required settings and enumerations
func (c *Config) Validate() error {
	if c.ConnectionString == "" {
		return fmt.Errorf("SERVER_CONNECTION_STRING environment variable is required")
	}

	switch c.Dialect {
	case DialectSQLServer, DialectPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DIALECT: %s", c.Dialect)
	}

	switch c.ModelProvider {
	case ProviderAzure, ProviderOpenAI:
		if c.ModelEndpoint == "" {
			return fmt.Errorf("MODEL_ENDPOINT_URL or AZURE_OPENAI_ENDPOINT environment variable is required")
		}
	case ProviderAnthropic:
	default:
		return fmt.Errorf("unsupported MODEL_PROVIDER: %s", c.ModelProvider)
	}

	if c.ModelAPIKey == "" {
		return fmt.Errorf("MODEL_API_KEY environment variable is required")
	}

	// the CORS middleware rejects anything else at startup
	for _, origin := range c.CORSAllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS_ALLOWED_ORIGINS entry: %s", origin)
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

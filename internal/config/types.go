package config

import "time"

// database dialects understood by the retriever
const (
	DialectSQLServer = "sqlserver"
	DialectPostgres  = "postgres"
)

// chat completion providers
const (
	ProviderAzure     = "azure"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Environment string
	Port        string

	// relational store holding the similarity procedure
	ConnectionString string
	Dialect          string
	SearchProcedure  string

	// hosted chat model
	ModelProvider   string
	ModelEndpoint   string
	ModelAPIKey     string
	ModelName       string
	ModelAPIVersion string
	ModelMaxTokens  int
	ModelTimeout    time.Duration

	// upstream Data API Builder listing
	DABURL     string
	DABTimeout time.Duration

	FrontendDir        string
	CORSAllowedOrigins []string
}

// optional YAML overlay; every field may be omitted
type FileConfig struct {
	Environment string `yaml:"environment"`
	Port        string `yaml:"port"`

	Database struct {
		Dialect   string `yaml:"dialect"`
		Procedure string `yaml:"procedure"`
	} `yaml:"database"`

	Model struct {
		Provider   string `yaml:"provider"`
		Endpoint   string `yaml:"endpoint"`
		Name       string `yaml:"name"`
		APIVersion string `yaml:"api_version"`
		MaxTokens  int    `yaml:"max_tokens"`
		Timeout    string `yaml:"timeout"`
	} `yaml:"model"`

	DAB struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"dab"`

	Frontend struct {
		Dir string `yaml:"dir"`
	} `yaml:"frontend"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

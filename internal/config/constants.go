package config

// Config file lookup
const (
	// ConfigFileEnv names the environment variable holding the config file path
	ConfigFileEnv = "WORDACY_CONFIG_FILE"
	// DefaultConfigFile is read when ConfigFileEnv is unset
	DefaultConfigFile = "config.yaml"
)

// Service identity
const (
	ServiceName = "wordacy"
)

// Dataset defaults
const (
	DefaultVocabularySet  = "core"
	DefaultCatalogVersion = "v1"
	DefaultOutputPath     = "verbs_sft.jsonl"
)

// Token counting defaults
const (
	DefaultTokensField = "question"
	DefaultTokenizer   = "tiktoken"
	DefaultTokensModel = "gpt-4o-mini"
)

// Logging defaults
const (
	DefaultLogLevel = "info"
)

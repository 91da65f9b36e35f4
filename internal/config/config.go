// Package config handles application configuration loading from YAML and environment variables.
package config

import (
	"errors"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	contextutils "wordacy/internal/utils"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the tooling
type Config struct {
	// Dataset synthesis configuration
	Dataset DatasetConfig `json:"dataset" yaml:"dataset"`

	// Token counting configuration
	Tokens TokensConfig `json:"tokens" yaml:"tokens"`

	// Logging configuration
	Log LogConfig `json:"log" yaml:"log"`

	// OpenTelemetry Configuration
	OpenTelemetry OpenTelemetryConfig `json:"open_telemetry" yaml:"open_telemetry"`
}

// DatasetConfig selects the vocabulary, template catalog and output sink
type DatasetConfig struct {
	// VocabularyFile points at a vocabulary YAML document. Empty selects the embedded one.
	VocabularyFile string `json:"vocabulary_file" yaml:"vocabulary_file"`
	VocabularySet  string `json:"vocabulary_set" yaml:"vocabulary_set" validate:"required"`
	CatalogVersion string `json:"catalog_version" yaml:"catalog_version" validate:"required"`
	OutputPath     string `json:"output_path" yaml:"output_path" validate:"required"`
}

// TokensConfig configures the JSONL token counter
type TokensConfig struct {
	Field         string `json:"field" yaml:"field" validate:"required"`
	Tokenizer     string `json:"tokenizer" yaml:"tokenizer" validate:"oneof=tiktoken gpt2"`
	Model         string `json:"model" yaml:"model"`
	Encoding      string `json:"encoding" yaml:"encoding"`
	SkipNonString bool   `json:"skip_nonstring" yaml:"skip_nonstring"`
}

// LogConfig configures the structured logger
type LogConfig struct {
	Level string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
}

// OpenTelemetryConfig holds all OpenTelemetry-related configuration
type OpenTelemetryConfig struct {
	Endpoint       string            `json:"endpoint" yaml:"endpoint"`               // Empty disables OTLP export, e.g. "localhost:4317"
	Protocol       string            `json:"protocol" yaml:"protocol"`               // "grpc" or "http", default: "grpc"
	Insecure       bool              `json:"insecure" yaml:"insecure"`               // Default: true (for localhost)
	Headers        map[string]string `json:"headers" yaml:"headers"`                 // For authenticated endpoints
	ServiceName    string            `json:"service_name" yaml:"service_name"`       // Default: "wordacy"
	ServiceVersion string            `json:"service_version" yaml:"service_version"` // From version package
	UseAutoSDK     bool              `json:"use_auto_sdk" yaml:"use_auto_sdk"`
	EnableTracing  bool              `json:"enable_tracing" yaml:"enable_tracing"`
	EnableMetrics  bool              `json:"enable_metrics" yaml:"enable_metrics"`
	EnableLogging  bool              `json:"enable_logging" yaml:"enable_logging"`
	SamplingRate   float64           `json:"sampling_rate" yaml:"sampling_rate"` // Default: 1.0 (100%)
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			VocabularySet:  DefaultVocabularySet,
			CatalogVersion: DefaultCatalogVersion,
			OutputPath:     DefaultOutputPath,
		},
		Tokens: TokensConfig{
			Field:     DefaultTokensField,
			Tokenizer: DefaultTokenizer,
			Model:     DefaultTokensModel,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		OpenTelemetry: OpenTelemetryConfig{
			Protocol:      "grpc",
			Insecure:      true,
			ServiceName:   ServiceName,
			SamplingRate:  1.0,
			EnableLogging: true,
		},
	}
}

// NewConfig loads configuration from the YAML file named by WORDACY_CONFIG_FILE
// (or config.yaml), then overrides with environment variables
func NewConfig() (result0 *Config, err error) {
	config, err := loadConfigWithOverrides()
	if err != nil {
		return nil, contextutils.WrapErrorf(err, "failed to load config")
	}

	return finish(config)
}

// NewConfigFromFile loads configuration from an explicit path, then overrides with environment variables
func NewConfigFromFile(path string) (result0 *Config, err error) {
	config, err := loadConfigFromFile(path)
	if err != nil {
		return nil, contextutils.WrapErrorf(err, "failed to load config from %s", path)
	}

	return finish(config)
}

func finish(config *Config) (*Config, error) {
	config.overrideFromEnv()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration with struct-tag rules
func (c *Config) Validate() error {
	if err := contextutils.ValidateStruct(c, "invalid configuration"); err != nil {
		return err
	}
	switch c.OpenTelemetry.Protocol {
	case "grpc", "http":
	default:
		if c.OpenTelemetry.EnableTracing || c.OpenTelemetry.EnableMetrics {
			return contextutils.WrapErrorf(contextutils.ErrValidationFailed, "unsupported otel protocol: %q", c.OpenTelemetry.Protocol)
		}
	}
	return nil
}

// overrideFromEnv overrides config values with environment variables using reflection
func (c *Config) overrideFromEnv() {
	overrideStructFromEnv(c)
}

// overrideStructFromEnv recursively overrides struct fields with environment variables
func overrideStructFromEnv(v interface{}) {
	overrideStructFromEnvWithPrefix(v, "")
}

// overrideStructFromEnvWithPrefix recursively overrides struct fields with environment variables.
// The variable name is the upper-cased yaml path, e.g. dataset.output_path -> DATASET_OUTPUT_PATH.
func overrideStructFromEnvWithPrefix(v interface{}, prefix string) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		yamlTag := strings.Split(fieldType.Tag.Get("yaml"), ",")[0]
		if yamlTag == "" || yamlTag == "-" {
			continue
		}

		envKey := strings.ToUpper(strings.ReplaceAll(yamlTag, "-", "_"))
		if prefix != "" {
			envKey = prefix + "_" + envKey
		}

		envVal := os.Getenv(envKey)

		switch field.Kind() {
		case reflect.String:
			if envVal != "" {
				field.SetString(envVal)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if envVal != "" {
				if intVal, err := strconv.ParseInt(envVal, 10, 64); err == nil {
					field.SetInt(intVal)
				}
			}
		case reflect.Float32, reflect.Float64:
			if envVal != "" {
				if floatVal, err := strconv.ParseFloat(envVal, 64); err == nil {
					field.SetFloat(floatVal)
				}
			}
		case reflect.Bool:
			if envVal != "" {
				if boolVal, err := strconv.ParseBool(envVal); err == nil {
					field.SetBool(boolVal)
				}
			}
		case reflect.Struct:
			if field.CanAddr() {
				overrideStructFromEnvWithPrefix(field.Addr().Interface(), envKey)
			}
		}
	}
}

// loadConfigWithOverrides loads the config file named by the environment, falling back to config.yaml
func loadConfigWithOverrides() (result0 *Config, err error) {
	if envPath := os.Getenv(ConfigFileEnv); envPath != "" {
		config, err := loadConfigFromFile(envPath)
		if err != nil {
			return nil, contextutils.WrapErrorf(err, "failed to load config from %s", envPath)
		}
		return config, nil
	}

	config, err := loadConfigFromFile(DefaultConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return config, err
}

// loadConfigFromFile loads configuration from a specific file on top of the defaults
func loadConfigFromFile(path string) (result0 *Config, err error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return nil, contextutils.WrapErrorf(contextutils.ErrInvalidFormat, "failed to parse %s: %v", path, err)
	}

	return config, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service    ServiceConfig    `mapstructure:"service"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Conversion ConversionConfig `mapstructure:"conversion"`
	Server     ServerConfig     `mapstructure:"server"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
}

type ServiceConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,httpurl"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	UseG2pk        bool   `mapstructure:"use_g2pk"`
	ConvertNumbers bool   `mapstructure:"convert_numbers"`
}

type DictionaryConfig struct {
	// BaseURL falls back to the service base URL when empty.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,httpurl"`
}

type ConversionConfig struct {
	Mode                  string `mapstructure:"mode" validate:"oneof=concurrent batch"`
	Concurrency           int    `mapstructure:"concurrency" validate:"min=1,max=64"`
	BatchSize             int    `mapstructure:"batch_size" validate:"min=1,max=100"`
	RetryAttempts         int    `mapstructure:"retry_attempts" validate:"min=0,max=10"`
	RetryDelayMillisecond int    `mapstructure:"retry_delay_milliseconds" validate:"gte=0"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type TemplatesConfig struct {
	ReportTemplate string `mapstructure:"report_template" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	envFile    string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kanafy")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		envFile:    ".env",
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// A missing .env is fine; variables may come from the environment itself.
	if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", loader.envFile, err)
	}

	v.SetDefault("service.base_url", "http://localhost:8000")
	v.SetDefault("service.timeout_seconds", 30)
	v.SetDefault("service.use_g2pk", true)
	v.SetDefault("service.convert_numbers", false)
	v.SetDefault("dictionary.base_url", "")
	v.SetDefault("conversion.mode", "concurrent")
	v.SetDefault("conversion.concurrency", 8)
	v.SetDefault("conversion.batch_size", 100)
	v.SetDefault("conversion.retry_attempts", 2)
	v.SetDefault("conversion.retry_delay_milliseconds", 500)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	// Template is optional - if not specified, the embedded report template is used
	v.SetDefault("templates.report_template", "")

	if err := v.BindEnv("service.base_url", "KANAFY_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind KANAFY_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("dictionary.base_url", "KANAFY_DICTIONARY_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind KANAFY_DICTIONARY_BASE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if cfg.Dictionary.BaseURL == "" {
		cfg.Dictionary.BaseURL = cfg.Service.BaseURL
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

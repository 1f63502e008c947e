// Package config reads the yaml configuration of the currates command and
// exposes it through per-concern getters.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const apiKeyEnv = "CURRENCYAPI_KEY"

type config struct {
	Currencyapi CurrencyapiConfig `yaml:"currencyapi"`
	App         AppConfig         `yaml:"app"`
	Tracing     TracingConfig     `yaml:"tracing"`
}

type Service struct {
	config config
}

// NewFromFile reads the yaml file at path. The CURRENCYAPI_KEY variable
// overrides the api key from the file, so keys can stay out of configs.
func NewFromFile(path string) (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if key := os.Getenv(apiKeyEnv); key != "" {
		s.config.Currencyapi.Key = key
	}

	return s, nil
}

func (s *Service) Currencyapi() *CurrencyapiConfig {
	return &s.config.Currencyapi
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

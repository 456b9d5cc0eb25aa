package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// reads a YAML config overlay from path
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &fc, nil
}

// copies every non-zero field of the overlay onto cfg
func (fc *FileConfig) apply(cfg *Config) error {
	setString(&cfg.Environment, fc.Environment)
	setString(&cfg.Port, fc.Port)
	setString(&cfg.Dialect, fc.Database.Dialect)
	setString(&cfg.SearchProcedure, fc.Database.Procedure)
	setString(&cfg.ModelProvider, fc.Model.Provider)
	setString(&cfg.ModelEndpoint, fc.Model.Endpoint)
	setString(&cfg.ModelName, fc.Model.Name)
	setString(&cfg.ModelAPIVersion, fc.Model.APIVersion)
	setString(&cfg.DABURL, fc.DAB.URL)
	setString(&cfg.FrontendDir, fc.Frontend.Dir)

	if fc.Model.MaxTokens > 0 {
		cfg.ModelMaxTokens = fc.Model.MaxTokens
	}

	if len(fc.CORS.AllowedOrigins) > 0 {
		cfg.CORSAllowedOrigins = fc.CORS.AllowedOrigins
	}

	if err := setDuration(&cfg.ModelTimeout, fc.Model.Timeout); err != nil {
		return fmt.Errorf("invalid model.timeout: %w", err)
	}

	if err := setDuration(&cfg.DABTimeout, fc.DAB.Timeout); err != nil {
		return fmt.Errorf("invalid dab.timeout: %w", err)
	}

	return nil
}

func setString(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

func setDuration(dst *time.Duration, val string) error {
	if val == "" {
		return nil
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return err
	}

	*dst = d
	return nil
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps any decode failure from LoadJSON/LoadYAML.
var ErrInvalidConfig = errors.New("config: invalid world configuration")

// LoadJSON decodes a WorldConfig from r, starting from DefaultWorldConfig so
// an input document only needs to set the fields it wants to override.
func LoadJSON(r io.Reader) (WorldConfig, error) {
	cfg := DefaultWorldConfig()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return WorldConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadYAML decodes a WorldConfig from r, starting from DefaultWorldConfig.
func LoadYAML(r io.Reader) (WorldConfig, error) {
	cfg := DefaultWorldConfig()
	data, err := io.ReadAll(r)
	if err != nil {
		return WorldConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorldConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

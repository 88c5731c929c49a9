package config

import (
	"encoding/json"
	"fmt"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode renders the configuration in the given format: json, yaml or toml.
func (c *Config) Encode(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(c)
	case "toml":
		return gotoml.Marshal(c)
	default:
		return nil, fmt.Errorf("unsupported output format %q (valid: json, yaml, toml)", format)
	}
}

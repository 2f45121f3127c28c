package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Checks every section and property declared by the schema is present in the config
// and required values are set.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root := resolve(&schema, &schema)
	if root == nil || root.Properties == nil {
		return fmt.Errorf("schema has no config definition")
	}
	if err := checkProperties(&schema, root, configMap, ""); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// checkProperties walks schema properties and makes sure each one exists in the config map
func checkProperties(doc, s *jsonschema.Schema, values map[string]any, path string) error {
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name := strings.TrimPrefix(path+"."+pair.Key, ".")
		v, ok := values[pair.Key]
		if !ok {
			return fmt.Errorf("%s is missing", name)
		}
		sub := resolve(doc, pair.Value)
		if sub == nil || sub.Properties == nil {
			continue
		}
		nested, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s is not an object", name)
		}
		if err := checkProperties(doc, sub, nested, name); err != nil {
			return err
		}
	}
	return nil
}

// resolve follows a local "#/$defs/Name" reference
func resolve(doc, s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil || s.Ref == "" {
		return s
	}
	name := strings.TrimPrefix(s.Ref, "#/$defs/")
	if def, ok := doc.Definitions[name]; ok {
		return def
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Football.BaseURL == "" {
		return fmt.Errorf("football.base_url is required")
	}
	if cfg.Football.TeamID == 0 {
		return fmt.Errorf("football.team_id is required")
	}
	if cfg.Football.CompetitionID == 0 {
		return fmt.Errorf("football.competition_id is required")
	}
	if len(cfg.News.URLs) == 0 {
		return fmt.Errorf("news.urls is required")
	}
	if cfg.Schedule.RefreshInterval == 0 {
		return fmt.Errorf("schedule.refresh_interval is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}

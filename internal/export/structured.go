package export

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/dictforge/dictforge/internal/dict"
)

// JSONRenderer renders the dictionary as an indented JSON document
type JSONRenderer struct{}

// Format returns the format name
func (r *JSONRenderer) Format() string { return "json" }

// Render produces the JSON artifact
func (r *JSONRenderer) Render(d *dict.Dictionary) ([]byte, error) {
	data, err := json.MarshalIndent(Snapshot(d), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLRenderer renders the dictionary as a YAML document
type YAMLRenderer struct{}

// Format returns the format name
func (r *YAMLRenderer) Format() string { return "yaml" }

// Render produces the YAML artifact
func (r *YAMLRenderer) Render(d *dict.Dictionary) ([]byte, error) {
	return yaml.Marshal(Snapshot(d))
}

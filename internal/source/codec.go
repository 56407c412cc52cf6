package source

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/dulcinea/internal/event"
)

func decodeTOML(data []byte) ([]event.Event, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	return f.Events, nil
}

func decodeJSON(data []byte) ([]event.Event, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return f.Events, nil
}

// decodeYAML reads the same document shape as TOML and JSON.
func decodeYAML(data []byte) ([]event.Event, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return f.Events, nil
}

// EncodeTOML renders events in the TOML layout Load reads back.
func EncodeTOML(events []event.Event) ([]byte, error) {
	data, err := toml.Marshal(file{Events: events})
	if err != nil {
		return nil, fmt.Errorf("marshaling events: %w", err)
	}
	return data, nil
}

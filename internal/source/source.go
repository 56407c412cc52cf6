// Package source loads calendar events from TOML, JSON, YAML and iCalendar files.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/javiermolinar/dulcinea/internal/event"
)

// Loading errors.
var (
	ErrEmptyPath         = errors.New("events path must be set")
	ErrUnsupportedFormat = errors.New("unsupported events file format")
)

// Format identifies an events file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

// Options controls how events are decoded.
type Options struct {
	// Location is the zone iCalendar timestamps are converted into before
	// they are split into date and HH:MM fields. Nil means time.Local.
	Location *time.Location

	// RequireFile makes a missing file an error instead of an empty calendar.
	RequireFile bool
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".ics", ".ical", ".ifb":
		return FormatICS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads all events from path. A missing file yields no events, so a
// fresh install starts with an empty calendar, unless opts.RequireFile is set.
func Load(path string, opts Options) ([]event.Event, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !opts.RequireFile {
			log.Debug().Str("path", path).Msg("events file not found, starting empty")
			return []event.Event{}, nil
		}
		return nil, fmt.Errorf("reading events file: %w", err)
	}

	events, err := Decode(data, format, opts)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	log.Debug().Str("path", path).Str("format", string(format)).Int("count", len(events)).Msg("events loaded")
	return events, nil
}

// Decode parses events from data in the given format. Events that decode
// but fail event.Validate are kept and logged; the overlap helpers already
// treat malformed dates and times as matching nothing.
func Decode(data []byte, format Format, opts Options) ([]event.Event, error) {
	var (
		events []event.Event
		err    error
	)
	switch format {
	case FormatTOML:
		events, err = decodeTOML(data)
	case FormatJSON:
		events, err = decodeJSON(data)
	case FormatYAML:
		events, err = decodeYAML(data)
	case FormatICS:
		events, err = decodeICS(bytes.NewReader(data), opts.location())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		if verr := event.Validate(e); verr != nil {
			log.Warn().Err(verr).Str("id", e.ID).Str("title", e.Title).Msg("invalid event")
		}
	}
	if events == nil {
		events = []event.Event{}
	}
	return events, nil
}

// file is the document shape shared by the TOML and JSON encodings.
type file struct {
	Events []event.Event `toml:"events" json:"events" yaml:"events"`
}

// Package preset stores named slider settings.
//
// A [Preset] wraps [config.Settings] with an id and a creation time. Two
// [Store] backends are provided:
//   - [FileStore]: one JSON file per preset, for the CLI
//   - [MongoStore]: a MongoDB collection, for the HTTP server
//
// Names are validated with [errors.ValidatePresetName] before they reach a
// backend, so they are always safe as file names and URL path segments.
package preset

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/slidertrack/pkg/config"
	"github.com/matzehuels/slidertrack/pkg/errors"
)

// Preset is a named set of slider settings.
type Preset struct {
	ID        uuid.UUID       `json:"id" bson:"id"`
	Name      string          `json:"name" bson:"name"`
	Settings  config.Settings `json:"settings" bson:"settings"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}

// New returns a preset with a fresh id. It validates the name and settings.
func New(name string, s config.Settings) (*Preset, error) {
	p := &Preset{ID: uuid.New(), Name: name, Settings: s, CreatedAt: time.Now().UTC()}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the name and settings.
func (p *Preset) Validate() error {
	if err := errors.ValidatePresetName(p.Name); err != nil {
		return err
	}
	return p.Settings.Validate()
}

// Store persists presets by name.
type Store interface {
	// Get returns the named preset or an error with code PRESET_NOT_FOUND.
	Get(ctx context.Context, name string) (*Preset, error)

	// Put inserts or replaces the preset with p.Name. A replaced preset keeps
	// its original id and creation time.
	Put(ctx context.Context, p *Preset) error

	// List returns all presets sorted by name.
	List(ctx context.Context) ([]*Preset, error)

	// Delete removes the named preset. Deleting a missing preset returns an
	// error with code PRESET_NOT_FOUND.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

func notFound(name string) error {
	return errors.New(errors.ErrCodePresetNotFound, "preset %q not found", name)
}

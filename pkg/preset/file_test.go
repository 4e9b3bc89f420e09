package preset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/slidertrack/pkg/config"
	"github.com/matzehuels/slidertrack/pkg/errors"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	return s
}

func mustPreset(t *testing.T, name string, handle float32) *Preset {
	t.Helper()
	s := config.Default()
	s.HandleValue = handle
	p, err := New(name, s)
	if err != nil {
		t.Fatalf("New(%q) error: %v", name, err)
	}
	return p
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		preset   string
		settings func(*config.Settings)
		wantCode errors.Code
	}{
		{name: "valid", preset: "volume"},
		{name: "empty name", preset: "", wantCode: errors.ErrCodeInvalidPreset},
		{name: "path traversal", preset: "../etc", wantCode: errors.ErrCodeInvalidPreset},
		{name: "bad fill", preset: "x", settings: func(s *config.Settings) { s.Fill = "sideways" }, wantCode: errors.ErrCodeInvalidFillRule},
		{name: "value out of range", preset: "x", settings: func(s *config.Settings) { s.HandleValue = 2 }, wantCode: errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.Default()
			if tt.settings != nil {
				tt.settings(&s)
			}
			p, err := New(tt.preset, s)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("New() error: %v", err)
				}
				if p.CreatedAt.IsZero() {
					t.Error("CreatedAt is zero")
				}
				return
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("New() code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	p := mustPreset(t, "volume", 0.25)

	if err := s.Put(ctx, p); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Path(), "volume.json")); err != nil {
		t.Errorf("preset file not written: %v", err)
	}

	got, err := s.Get(ctx, "volume")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("Get().ID = %v, want %v", got.ID, p.ID)
	}
	if got.Settings != p.Settings {
		t.Errorf("Get().Settings = %+v, want %+v", got.Settings, p.Settings)
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("Get().CreatedAt = %v, want %v", got.CreatedAt, p.CreatedAt)
	}
}

func TestFileStorePutKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	first := mustPreset(t, "volume", 0.25)
	if err := s.Put(ctx, first); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	second := mustPreset(t, "volume", 0.75)
	if err := s.Put(ctx, second); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("replaced preset ID = %v, want %v", second.ID, first.ID)
	}

	got, err := s.Get(ctx, "volume")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Settings.HandleValue != 0.75 {
		t.Errorf("HandleValue = %v, want 0.75", got.Settings.HandleValue)
	}
}

func TestFileStoreList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, name := range []string{"zoom", "alpha", "mid"} {
		if err := s.Put(ctx, mustPreset(t, name, 0.5)); err != nil {
			t.Fatalf("Put(%q) error: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(s.Path(), "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.Path(), "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	var names []string
	for _, p := range list {
		names = append(names, p.Name)
	}
	want := []string{"alpha", "mid", "zoom"}
	if len(names) != len(want) {
		t.Fatalf("List() names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFileStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Get() error = %v, want PRESET_NOT_FOUND", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Delete() error = %v, want PRESET_NOT_FOUND", err)
	}
	if _, err := s.Get(ctx, "../secret"); !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("Get() error = %v, want INVALID_PRESET", err)
	}
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if err := s.Put(ctx, mustPreset(t, "volume", 0.5)); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := s.Delete(ctx, "volume"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(ctx, "volume"); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Get() after Delete error = %v, want PRESET_NOT_FOUND", err)
	}
}

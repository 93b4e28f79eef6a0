package source

import (
	"context"
	"strings"
	"testing"

	"github.com/Vodeneev/livescores/internal/pkg/config"
	"github.com/Vodeneev/livescores/internal/pkg/models"
)

type fakeSource struct{ name string }

func (f *fakeSource) GetName() string { return f.name }

func (f *fakeSource) GetLiveMatches(_ context.Context) ([]models.RawMatch, error) {
	return nil, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("Fake-One", func(cfg *config.Config) Source {
		return &fakeSource{name: "fake-one"}
	})

	// Lookup is case-insensitive and trims whitespace.
	src, err := Create(" FAKE-ONE ", &config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.GetName() != "fake-one" {
		t.Errorf("name = %q", src.GetName())
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nonexistent", &config.Config{})
	if err == nil {
		t.Fatal("expected error for unknown source")
	}
	if !strings.Contains(err.Error(), "unknown source") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup", func(cfg *config.Config) Source { return &fakeSource{name: "dup"} })
	Register("dup", func(cfg *config.Config) Source { return &fakeSource{name: "dup"} })
}

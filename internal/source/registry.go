package source

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Vodeneev/livescores/internal/pkg/config"
)

type Factory func(cfg *config.Config) Source

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

func Register(name string, f Factory) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		panic("source: empty name in Register")
	}
	if f == nil {
		panic("source: nil factory in Register for " + n)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[n]; exists {
		panic("source: duplicate registration for " + n)
	}
	registry[n] = f
}

func FactoryByName(name string) (Factory, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[n]
	return f, ok
}

func AvailableNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Create builds the source selected by name from the registry.
func Create(name string, cfg *config.Config) (Source, error) {
	f, ok := FactoryByName(name)
	if !ok {
		return nil, fmt.Errorf("source: unknown source %q (available: %v)", name, AvailableNames())
	}
	return f(cfg), nil
}

package llm

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"lexaid/backend/internal/config"
)

// Constructor builds a provider from configuration.
type Constructor func(cfg *config.Config) (Provider, error)

var providerRegistry = map[string]Constructor{
	"ollama": newOllamaFromConfig,
	"openai": newOpenAIFromConfig,
	"groq":   newGroqFromConfig,
}

// RegisterProvider adds a custom backend to the registry. Must be called
// before the factory first resolves.
func RegisterProvider(name string, ctor Constructor) {
	providerRegistry[name] = ctor
}

// Factory resolves the configured provider lazily on first use and caches it
// for the process lifetime. Configuration changes require a restart; there
// is no hot swap.
type Factory struct {
	cfg *config.Config

	once     sync.Once
	provider Provider
	err      error
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{cfg: cfg}
}

// Provider returns the cached provider handle, resolving it on first call.
func (f *Factory) Provider() (Provider, error) {
	f.once.Do(func() {
		ctor, ok := providerRegistry[f.cfg.ChatProvider]
		if !ok {
			f.err = fmt.Errorf("unknown chat provider %q, supported: %v",
				f.cfg.ChatProvider, registeredNames())
			return
		}
		f.provider, f.err = ctor(f.cfg)
		if f.err == nil {
			slog.Info("Initialized chat provider",
				"provider", f.cfg.ChatProvider, "model", f.provider.Descriptor().Model)
		}
	})
	return f.provider, f.err
}

func registeredNames() []string {
	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

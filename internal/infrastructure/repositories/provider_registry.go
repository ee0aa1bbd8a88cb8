package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	domainRepos "github.com/rios0rios0/repofiles/internal/domain/repositories"
)

// ProviderFactory builds a FileRepository bound to the repository named in settings.
type ProviderFactory func(settings *entities.Settings) (domainRepos.FileRepository, error)

// ProviderRegistry manages all registered Git hosting provider implementations.
type ProviderRegistry struct {
	providers map[string]ProviderFactory
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ProviderFactory),
	}
}

// Register adds a provider factory under the given name (e.g. "github").
func (r *ProviderRegistry) Register(name string, factory ProviderFactory) {
	r.providers[name] = factory
}

// Get returns a file repository for settings.Provider bound to the configured repository.
func (r *ProviderRegistry) Get(settings *entities.Settings) (domainRepos.FileRepository, error) {
	factory, ok := r.providers[settings.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q", settings.Provider)
	}
	return factory(settings)
}

// Names returns the sorted list of registered provider names.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

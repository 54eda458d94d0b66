package source

import (
	"novelarr/internal/domain"
	"novelarr/internal/sharedhttp"

	"github.com/pkg/errors"
)

// Registry resolves a provider id to its singleton implementation.
type Registry struct {
	providers map[domain.ProviderID]domain.Provider
}

// NewRegistry builds every known provider against their live sites.
func NewRegistry(fetcher sharedhttp.Fetcher) *Registry {
	return NewRegistryWith(
		NewFreeWebNovel(fetcher, ""),
		NewScribbleHub(fetcher, ""),
		NewMTLNovel(fetcher, ""),
		NewLibRead(fetcher, ""),
	)
}

func NewRegistryWith(providers ...domain.Provider) *Registry {
	r := &Registry{providers: make(map[domain.ProviderID]domain.Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Details().ID] = p
	}

	return r
}

func (r *Registry) Get(id domain.ProviderID) (domain.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, errors.Errorf("no provider registered for %q", id)
	}

	return p, nil
}

// All returns the registered providers in the canonical provider order.
func (r *Registry) All() []domain.Provider {
	out := make([]domain.Provider, 0, len(r.providers))
	for _, id := range domain.ProviderIDs {
		if p, ok := r.providers[id]; ok {
			out = append(out, p)
		}
	}

	return out
}

package source

import (
	"fmt"
	"testing"

	"novelarr/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry(newTestFetcher())

	all := r.All()
	require.Len(t, all, len(domain.ProviderIDs))
	for i, id := range domain.ProviderIDs {
		assert.Equal(t, id, all[i].Details().ID)
	}

	p, err := r.Get(domain.ScribbleHub)
	require.NoError(t, err)
	assert.Equal(t, "https://www.scribblehub.com", p.Details().Site)

	_, err = r.Get(domain.ProviderID("unknown"))
	require.Error(t, err)
	assert.Contains(t, fmt.Sprintf("%+v", err), "registry.go", "errors carry a stack trace")

	_, err = domain.ParseProviderID("royalRoad")
	require.Error(t, err)
	assert.Contains(t, fmt.Sprintf("%+v", err), "provider.go")
}

package seed

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhq/web/internal/repository"
	"github.com/advisorhq/web/internal/tenant"
)

func TestApply(t *testing.T) {
	store := tenant.NewStore(repository.NewMemory(), logr.Discard())
	require.NoError(t, store.Load(context.Background()))

	require.NoError(t, Apply(context.Background(), store))

	assert.Equal(t, 2, store.Count())

	opulence, ok := store.GetByDomain("opulence.com")
	require.True(t, ok)
	require.Len(t, opulence.CustomPages, 1)
	assert.Equal(t, "careers", opulence.CustomPages[0].Slug)
	assert.True(t, opulence.CustomPages[0].IsPublished)
	assert.Len(t, opulence.CustomPages[0].Sections, 3)

	wealthgrow, ok := store.GetByDomain("wealthgrow.com")
	require.True(t, ok)
	assert.Empty(t, wealthgrow.CustomPages)
	assert.False(t, wealthgrow.Modules.Insurance)

	// refuses to reseed
	assert.Error(t, Apply(context.Background(), store))
}

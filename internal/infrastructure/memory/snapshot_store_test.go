package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmastock/internal/domain/entity"
	"github.com/jhoicas/farmastock/internal/infrastructure/memory"
)

func TestSnapshotStore_VacioYLuegoIdaYVuelta(t *testing.T) {
	s := memory.NewSnapshotStore()

	_, found, err := s.Load()
	require.NoError(t, err)
	assert.False(t, found)

	state := map[string][]entity.Product{
		"Store A": {{ID: "1", Store: "Store A", Name: "Hepatitis B", Category: "Viral",
			Quantity: 40, Batch: "B9", ExpiryDate: "2025-12-01"}},
	}
	require.NoError(t, s.Save(state))

	out, found, err := s.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, state, out, "pasa por el códec JSON real")
}

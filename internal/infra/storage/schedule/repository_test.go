package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

func TestRepository_Fixtures(t *testing.T) {
	repo := NewRepository()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	slots := repo.ListSlots(date)
	require.Len(t, slots, 16)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slots are ascending: %s < %s", slots[i-1], slots[i])
	}

	for _, s := range []types.TimeString{"09:00", "10:30", "15:00", "16:30"} {
		assert.True(t, repo.IsOccupied(date, s), s)
		assert.True(t, repo.HasSlot(date, s), s)
	}
	assert.False(t, repo.IsOccupied(date, "09:30"))
	assert.False(t, repo.HasSlot(date, "12:00"))
}

func TestRepository_DateIndependent(t *testing.T) {
	repo := NewRepository()
	a := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, repo.ListSlots(a), repo.ListSlots(b))
	assert.Equal(t, repo.IsOccupied(a, "15:00"), repo.IsOccupied(b, "15:00"))
}

func TestRepository_ListSlotsReturnsCopy(t *testing.T) {
	repo := NewRepositoryWithSlots([]types.TimeString{"08:00", "08:30"}, nil)

	slots := repo.ListSlots(time.Time{})
	slots[0] = "23:00"

	assert.Equal(t, types.TimeString("08:00"), repo.ListSlots(time.Time{})[0])
}

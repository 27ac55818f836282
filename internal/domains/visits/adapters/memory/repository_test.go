package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
)

func TestRepository_FindByPetIDsKeepsInsertionOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	date := time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, petID := range []int64{7, 8, 8, 9} {
		_, err := repo.Save(ctx, &domain.Visit{PetID: petID, Date: date, Description: "checkup"})
		require.NoError(t, err)
	}

	visits, err := repo.FindByPetIDs(ctx, []int64{8, 7})
	require.NoError(t, err)
	require.Len(t, visits, 3)
	assert.Equal(t, int64(1), visits[0].ID)
	assert.Equal(t, int64(2), visits[1].ID)
	assert.Equal(t, int64(3), visits[2].ID)
}

func TestRepository_FindByPetIDReturnsCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	_, err := repo.Save(ctx, &domain.Visit{PetID: 7, Description: "rabies shot"})
	require.NoError(t, err)

	visits, err := repo.FindByPetID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	visits[0].Description = "changed"

	again, err := repo.FindByPetID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "rabies shot", again[0].Description)
}

func TestRepository_UnknownPetHasNoVisits(t *testing.T) {
	visits, err := NewRepository().FindByPetID(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, visits)
	assert.Empty(t, visits)
}

func TestRepository_UpdateKeepsOwningPet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	created, err := repo.Save(ctx, &domain.Visit{PetID: 7, Description: "rabies shot"})
	require.NoError(t, err)

	updated, err := repo.Save(ctx, &domain.Visit{ID: created.ID, PetID: 8, Description: "booster"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.PetID)
	assert.Equal(t, "booster", updated.Description)

	moved, err := repo.FindByPetID(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, moved)
	kept, err := repo.FindByPetID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "booster", kept[0].Description)
}

package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
)

func visitIDs(visits []*domain.Visit) []int64 {
	ids := make([]int64, 0, len(visits))
	for _, v := range visits {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestVisitsForPets_GroupsInStorageOrder(t *testing.T) {
	repo := &fakeVisitRepo{visits: []*domain.Visit{
		{ID: 1, PetID: 111},
		{ID: 2, PetID: 222},
		{ID: 3, PetID: 222},
	}}
	agg := NewAggregator(repo)

	result, err := agg.VisitsForPets(context.Background(), []int64{111, 222})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.batchFinds)
	assert.Equal(t, []int64{1, 2, 3}, visitIDs(result.Items()))
	assert.Equal(t, []int64{1}, visitIDs(result.ForPet(111)))
	assert.Equal(t, []int64{2, 3}, visitIDs(result.ForPet(222)))
	assert.Equal(t, []int64{111, 222}, result.PetIDs())
}

func TestVisitsForPets_EmptySetSkipsStorage(t *testing.T) {
	repo := &fakeVisitRepo{}
	agg := NewAggregator(repo)

	result, err := agg.VisitsForPets(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, repo.batchFinds)
	assert.Equal(t, 0, result.Len())
	assert.NotNil(t, result.Items())
}

func TestVisitsForPets_DeduplicatesIDs(t *testing.T) {
	repo := &fakeVisitRepo{visits: []*domain.Visit{{ID: 1, PetID: 5}}}
	agg := NewAggregator(repo)

	_, err := agg.VisitsForPets(context.Background(), []int64{5, 9, 5, 9, 5})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 9}, repo.lastBatchIDs)
}

func TestVisitsForPets_PetsWithoutVisitsAreOmitted(t *testing.T) {
	repo := &fakeVisitRepo{visits: []*domain.Visit{{ID: 4, PetID: 8}}}
	agg := NewAggregator(repo)

	result, err := agg.VisitsForPets(context.Background(), []int64{7, 8})
	require.NoError(t, err)
	assert.Nil(t, result.ForPet(7))
	assert.Equal(t, []int64{8}, result.PetIDs())
}

func TestVisitsForPets_RejectsNonPositiveIDs(t *testing.T) {
	repo := &fakeVisitRepo{}
	agg := NewAggregator(repo)

	_, err := agg.VisitsForPets(context.Background(), []int64{3, -1})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.batchFinds)
}

//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	"github.com/Apurer/go-gin-petclinic/internal/platform/migrations"
)

func setupVisitsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("petclinic_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func TestRepository_FindByPetIDsGroupsSourceRows(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupVisitsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	date := time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, petID := range []int64{111, 222, 222, 333} {
		_, err := repo.Save(ctx, &domain.Visit{PetID: petID, Date: date, Description: "checkup"})
		require.NoError(t, err)
	}

	visits, err := repo.FindByPetIDs(ctx, []int64{111, 222})
	require.NoError(t, err)
	require.Len(t, visits, 3)
	assert.Equal(t, int64(111), visits[0].PetID)
	assert.Equal(t, int64(222), visits[1].PetID)
	assert.Equal(t, int64(222), visits[2].PetID)
	assert.Less(t, visits[1].ID, visits[2].ID)
	assert.True(t, date.Equal(visits[0].Date))

	grouped := domain.GroupByPet(visits)
	assert.Len(t, grouped.ForPet(222), 2)
}

func TestRepository_FindByPetIDUnknownPet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupVisitsPostgresContainer(t)
	defer cleanup()

	visits, err := NewRepository(db).FindByPetID(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, visits)
}

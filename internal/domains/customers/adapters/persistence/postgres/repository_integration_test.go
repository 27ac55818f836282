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

	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
	"github.com/Apurer/go-gin-petclinic/internal/platform/migrations"
)

func setupCustomersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func TestRepository_SaveAssignsIDAndUpdatePreservesIt(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Save(ctx, &domain.Owner{
		FirstName: "George",
		LastName:  "Franklin",
		Address:   "110 W. Liberty St.",
		City:      "Madison",
		Telephone: "6085551023",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.NotNil(t, created.Pets)

	created.City = "Monona"
	updated, err := repo.Save(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Monona", updated.City)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_PetsAndTypes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	types, err := repo.FindPetTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, len(domain.DefaultPetTypes()))
	assert.Equal(t, "bird", types[0].Name)

	owner, err := repo.Save(ctx, &domain.Owner{FirstName: "Jean", LastName: "Coleman", Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654"})
	require.NoError(t, err)

	dog, err := repo.FindPetTypeByID(ctx, 2)
	require.NoError(t, err)
	pet, err := repo.SavePet(ctx, &domain.Pet{
		Name:      "Samantha",
		BirthDate: time.Date(2012, 9, 4, 0, 0, 0, 0, time.UTC),
		Type:      *dog,
		OwnerID:   owner.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "dog", pet.Type.Name)

	fetched, err := repo.FindByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Pets, 1)
	assert.Equal(t, "Samantha", fetched.Pets[0].Name)

	_, err = repo.FindByID(ctx, owner.ID+100)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	_, err = repo.FindPetTypeByID(ctx, 999)
	assert.ErrorIs(t, err, ports.ErrPetTypeNotFound)
}

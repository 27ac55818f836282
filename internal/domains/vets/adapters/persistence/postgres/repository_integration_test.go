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

	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
	"github.com/Apurer/go-gin-petclinic/internal/platform/migrations"
)

func setupVetsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func TestRepository_FindAllSeededRoster(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupVetsPostgresContainer(t)
	defer cleanup()

	vets, err := NewRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, vets, 6)
	assert.Equal(t, "Douglas", vets[2].LastName)
	specialties := vets[2].Specialties()
	require.Len(t, specialties, 2)
	assert.Equal(t, "surgery", specialties[0].Name)
	assert.Equal(t, "dentistry", specialties[1].Name)
}

func TestRepository_SaveKeepsSpecialtyOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupVetsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	vet := domain.NewVet(0, "Maria", "Escobito",
		domain.Specialty{ID: 3, Name: "dentistry"},
		domain.Specialty{ID: 1, Name: "radiology"},
	)
	saved, err := repo.Save(ctx, vet)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	vets, err := repo.FindAll(ctx)
	require.NoError(t, err)
	last := vets[len(vets)-1]
	assert.Equal(t, saved.ID, last.ID)
	names := []string{}
	for _, sp := range last.Specialties() {
		names = append(names, sp.Name)
	}
	assert.Equal(t, []string{"dentistry", "radiology"}, names)
}

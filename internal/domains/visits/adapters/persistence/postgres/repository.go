package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/visits/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists visits in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type visitRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	PetID       int64     `gorm:"column:pet_id;index"`
	VisitDate   time.Time `gorm:"column:visit_date;type:date"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (visitRecord) TableName() string { return "visits" }

// Save inserts a visit, or rewrites date and description of an existing one.
// pet_id is never updated.
func (r *Repository) Save(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, errors.New("visit is nil")
	}
	record := visitRecord{
		ID:          visit.ID,
		PetID:       visit.PetID,
		VisitDate:   visit.Date,
		Description: visit.Description,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"visit_date":  record.VisitDate,
				"description": record.Description,
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) FindByPetID(ctx context.Context, petID int64) ([]*domain.Visit, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []visitRecord
	if err := r.db.WithContext(ctx).Where("pet_id = ?", petID).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainVisits(records), nil
}

// FindByPetIDs loads the visits of every pet in one round trip.
func (r *Repository) FindByPetIDs(ctx context.Context, petIDs []int64) ([]*domain.Visit, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if len(petIDs) == 0 {
		return []*domain.Visit{}, nil
	}
	var records []visitRecord
	if err := r.db.WithContext(ctx).
		Where("pet_id = ANY(?)", pq.Int64Array(petIDs)).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainVisits(records), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres visit repository not configured")
	}
	return nil
}

func toDomainVisits(records []visitRecord) []*domain.Visit {
	out := make([]*domain.Visit, 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out
}

func (r visitRecord) toDomain() *domain.Visit {
	return &domain.Visit{
		ID:          r.ID,
		PetID:       r.PetID,
		Date:        r.VisitDate.UTC(),
		Description: r.Description,
	}
}

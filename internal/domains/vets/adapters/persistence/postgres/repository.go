package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists vets in PostgreSQL using GORM. Specialty order is kept
// in vet_specialties.position.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type vetRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (vetRecord) TableName() string { return "vets" }

type specialtyRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name"`
}

func (specialtyRecord) TableName() string { return "specialties" }

type vetSpecialtyRecord struct {
	VetID       int64 `gorm:"primaryKey;column:vet_id"`
	SpecialtyID int64 `gorm:"primaryKey;column:specialty_id"`
	Position    int   `gorm:"column:position"`
}

func (vetSpecialtyRecord) TableName() string { return "vet_specialties" }

type vetSpecialtyRow struct {
	VetID         int64
	SpecialtyID   int64
	SpecialtyName string
}

// FindAll loads vets ordered by id and attaches specialties in position order.
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Vet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	db := r.db.WithContext(ctx)
	var records []vetRecord
	if err := db.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	var rows []vetSpecialtyRow
	if err := db.Table("vet_specialties AS vs").
		Select("vs.vet_id AS vet_id, s.id AS specialty_id, s.name AS specialty_name").
		Joins("JOIN specialties s ON s.id = vs.specialty_id").
		Order("vs.vet_id, vs.position").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	byVet := make(map[int64][]domain.Specialty, len(records))
	for _, row := range rows {
		byVet[row.VetID] = append(byVet[row.VetID], domain.Specialty{ID: row.SpecialtyID, Name: row.SpecialtyName})
	}
	vets := make([]*domain.Vet, 0, len(records))
	for _, rec := range records {
		vets = append(vets, domain.NewVet(rec.ID, rec.FirstName, rec.LastName, byVet[rec.ID]...))
	}
	return vets, nil
}

// Save upserts the vet, its specialties and their positions in one transaction.
func (r *Repository) Save(ctx context.Context, vet *domain.Vet) (*domain.Vet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if vet == nil {
		return nil, errors.New("vet is nil")
	}
	record := vetRecord{ID: vet.ID, FirstName: vet.FirstName, LastName: vet.LastName}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"first_name": record.FirstName,
				"last_name":  record.LastName,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
			return err
		}
		if err := tx.Where("vet_id = ?", record.ID).Delete(&vetSpecialtyRecord{}).Error; err != nil {
			return err
		}
		for i, sp := range vet.Specialties() {
			spRecord := specialtyRecord{ID: sp.ID, Name: sp.Name}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name"}),
			}).Create(&spRecord).Error; err != nil {
				return err
			}
			link := vetSpecialtyRecord{VetID: record.ID, SpecialtyID: spRecord.ID, Position: i}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	saved := vet.Clone()
	saved.ID = record.ID
	return saved, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres vet repository not configured")
	}
	return nil
}

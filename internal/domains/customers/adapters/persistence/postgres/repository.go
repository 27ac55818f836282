package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
)

var (
	_ ports.OwnerRepository = (*Repository)(nil)
	_ ports.PetRepository   = (*Repository)(nil)
)

// Repository persists owners, pets and pet types in PostgreSQL using GORM.
// The schema is owned by platform/migrations.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type ownerRecord struct {
	ID        int64       `gorm:"primaryKey;column:id"`
	FirstName string      `gorm:"column:first_name"`
	LastName  string      `gorm:"column:last_name;index"`
	Address   string      `gorm:"column:address"`
	City      string      `gorm:"column:city"`
	Telephone string      `gorm:"column:telephone"`
	Pets      []petRecord `gorm:"foreignKey:OwnerID"`
	CreatedAt time.Time   `gorm:"column:created_at"`
	UpdatedAt time.Time   `gorm:"column:updated_at"`
}

func (ownerRecord) TableName() string { return "owners" }

type petRecord struct {
	ID        int64         `gorm:"primaryKey;column:id"`
	Name      string        `gorm:"column:name;index"`
	BirthDate *time.Time    `gorm:"column:birth_date;type:date"`
	TypeID    int64         `gorm:"column:type_id"`
	Type      petTypeRecord `gorm:"foreignKey:TypeID"`
	OwnerID   int64         `gorm:"column:owner_id;index"`
	CreatedAt time.Time     `gorm:"column:created_at"`
	UpdatedAt time.Time     `gorm:"column:updated_at"`
}

func (petRecord) TableName() string { return "pets" }

type petTypeRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name"`
}

func (petTypeRecord) TableName() string { return "types" }

// Save inserts a new owner or replaces the descriptive fields of an existing one.
func (r *Repository) Save(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errors.New("owner is nil")
	}
	record := toOwnerRecord(owner)
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"first_name": record.FirstName,
				"last_name":  record.LastName,
				"address":    record.Address,
				"city":       record.City,
				"telephone":  record.Telephone,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, record.ID)
}

// FindByID loads an owner with pets and their types.
func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Owner, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record ownerRecord
	err := r.db.WithContext(ctx).
		Preload("Pets", func(db *gorm.DB) *gorm.DB { return db.Order("pets.id") }).
		Preload("Pets.Type").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// FindAll returns every owner ordered by id.
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Owner, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []ownerRecord
	if err := r.db.WithContext(ctx).
		Preload("Pets", func(db *gorm.DB) *gorm.DB { return db.Order("pets.id") }).
		Preload("Pets.Type").
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	owners := make([]*domain.Owner, 0, len(records))
	for i := range records {
		owners = append(owners, records[i].toDomain())
	}
	return owners, nil
}

func (r *Repository) SavePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	record := toPetRecord(pet)
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"birth_date": record.BirthDate,
				"type_id":    record.TypeID,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.FindPetByID(ctx, record.ID)
}

func (r *Repository) FindPetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record petRecord
	if err := r.db.WithContext(ctx).Preload("Type").First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	pet := record.toDomain()
	return &pet, nil
}

func (r *Repository) FindPetTypes(ctx context.Context) ([]domain.PetType, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []petTypeRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]domain.PetType, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.PetType{ID: rec.ID, Name: rec.Name})
	}
	return out, nil
}

func (r *Repository) FindPetTypeByID(ctx context.Context, id int64) (*domain.PetType, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record petTypeRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrPetTypeNotFound
		}
		return nil, err
	}
	return &domain.PetType{ID: record.ID, Name: record.Name}, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres customer repository not configured")
	}
	return nil
}

func toOwnerRecord(owner *domain.Owner) ownerRecord {
	return ownerRecord{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Address:   owner.Address,
		City:      owner.City,
		Telephone: owner.Telephone,
	}
}

func toPetRecord(pet *domain.Pet) petRecord {
	rec := petRecord{
		ID:      pet.ID,
		Name:    pet.Name,
		TypeID:  pet.Type.ID,
		OwnerID: pet.OwnerID,
	}
	if !pet.BirthDate.IsZero() {
		birth := pet.BirthDate
		rec.BirthDate = &birth
	}
	return rec
}

func (r ownerRecord) toDomain() *domain.Owner {
	owner := &domain.Owner{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		City:      r.City,
		Telephone: r.Telephone,
		Pets:      make([]domain.Pet, 0, len(r.Pets)),
	}
	for _, pet := range r.Pets {
		owner.Pets = append(owner.Pets, pet.toDomain())
	}
	return owner
}

func (r petRecord) toDomain() domain.Pet {
	pet := domain.Pet{
		ID:      r.ID,
		Name:    r.Name,
		Type:    domain.PetType{ID: r.Type.ID, Name: r.Type.Name},
		OwnerID: r.OwnerID,
	}
	if r.BirthDate != nil {
		pet.BirthDate = *r.BirthDate
	}
	return pet
}

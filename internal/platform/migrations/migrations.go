package migrations

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	customersdomain "github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
	vetsdomain "github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
)

// Run applies the schema for every bounded context and loads reference data.
// Adapters never migrate on their own.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := db.AutoMigrate(
		&ownerRecord{},
		&petTypeRecord{},
		&petRecord{},
		&specialtyRecord{},
		&vetRecord{},
		&vetSpecialtyRecord{},
		&visitRecord{},
	); err != nil {
		return err
	}
	return Seed(db)
}

// Owner schema mirrors the customers Postgres adapter.
type ownerRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	FirstName string    `gorm:"column:first_name;size:30"`
	LastName  string    `gorm:"column:last_name;size:30;index"`
	Address   string    `gorm:"column:address;size:255"`
	City      string    `gorm:"column:city;size:80"`
	Telephone string    `gorm:"column:telephone;size:20"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ownerRecord) TableName() string { return "owners" }

type petTypeRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;size:80;index"`
}

func (petTypeRecord) TableName() string { return "types" }

type petRecord struct {
	ID        int64      `gorm:"primaryKey;column:id"`
	Name      string     `gorm:"column:name;size:30;index"`
	BirthDate *time.Time `gorm:"column:birth_date;type:date"`
	TypeID    int64      `gorm:"column:type_id;not null"`
	OwnerID   int64      `gorm:"column:owner_id;index"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (petRecord) TableName() string { return "pets" }

// Vet schema mirrors the vets Postgres adapter.
type vetRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	FirstName string    `gorm:"column:first_name;size:30"`
	LastName  string    `gorm:"column:last_name;size:30;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (vetRecord) TableName() string { return "vets" }

type specialtyRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;size:80;index"`
}

func (specialtyRecord) TableName() string { return "specialties" }

type vetSpecialtyRecord struct {
	VetID       int64 `gorm:"primaryKey;column:vet_id;autoIncrement:false"`
	SpecialtyID int64 `gorm:"primaryKey;column:specialty_id;autoIncrement:false"`
	Position    int   `gorm:"column:position"`
}

func (vetSpecialtyRecord) TableName() string { return "vet_specialties" }

// Visit schema mirrors the visits Postgres adapter.
type visitRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	PetID       int64     `gorm:"column:pet_id;index"`
	VisitDate   time.Time `gorm:"column:visit_date;type:date"`
	Description string    `gorm:"column:description;size:8192"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (visitRecord) TableName() string { return "visits" }

// Seed inserts the reference pet types, specialties and vets. Rows that
// already exist are left alone, so Seed is safe to run on every start.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		keep := tx.Clauses(clause.OnConflict{DoNothing: true})

		petTypes := make([]petTypeRecord, 0)
		for _, pt := range customersdomain.DefaultPetTypes() {
			petTypes = append(petTypes, petTypeRecord{ID: pt.ID, Name: pt.Name})
		}
		if err := keep.Create(&petTypes).Error; err != nil {
			return fmt.Errorf("seed pet types: %w", err)
		}

		specialties := make([]specialtyRecord, 0)
		for _, sp := range vetsdomain.DefaultSpecialties() {
			specialties = append(specialties, specialtyRecord{ID: sp.ID, Name: sp.Name})
		}
		if err := keep.Create(&specialties).Error; err != nil {
			return fmt.Errorf("seed specialties: %w", err)
		}

		vets := make([]vetRecord, 0)
		links := make([]vetSpecialtyRecord, 0)
		for _, vet := range vetsdomain.DefaultVets() {
			vets = append(vets, vetRecord{ID: vet.ID, FirstName: vet.FirstName, LastName: vet.LastName})
			for i, sp := range vet.Specialties() {
				links = append(links, vetSpecialtyRecord{VetID: vet.ID, SpecialtyID: sp.ID, Position: i})
			}
		}
		if err := keep.Create(&vets).Error; err != nil {
			return fmt.Errorf("seed vets: %w", err)
		}
		if err := keep.Create(&links).Error; err != nil {
			return fmt.Errorf("seed vet specialties: %w", err)
		}

		// Explicit ids do not advance the serial sequences.
		for _, table := range []string{"types", "specialties", "vets"} {
			stmt := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))", table)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("reset %s sequence: %w", table, err)
			}
		}
		return nil
	})
}

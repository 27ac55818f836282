package domain

// Specialty is a veterinary discipline such as surgery or dentistry.
type Specialty struct {
	ID   int64
	Name string
}

// Vet holds an ordered set of specialties. Adding a specialty whose id is
// already present is a no-op, and Specialties returns them in add order.
type Vet struct {
	ID          int64
	FirstName   string
	LastName    string
	specialties []Specialty
}

// NewVet builds a vet and adds specialties in the given order.
func NewVet(id int64, firstName, lastName string, specialties ...Specialty) *Vet {
	vet := &Vet{ID: id, FirstName: firstName, LastName: lastName}
	for _, sp := range specialties {
		vet.AddSpecialty(sp)
	}
	return vet
}

// AddSpecialty appends sp unless a specialty with the same id is already held.
// It reports whether the set changed.
func (v *Vet) AddSpecialty(sp Specialty) bool {
	for _, existing := range v.specialties {
		if existing.ID == sp.ID {
			return false
		}
	}
	v.specialties = append(v.specialties, sp)
	return true
}

// Specialties returns a copy in insertion order.
func (v *Vet) Specialties() []Specialty {
	out := make([]Specialty, len(v.specialties))
	copy(out, v.specialties)
	return out
}

func (v *Vet) NrOfSpecialties() int {
	return len(v.specialties)
}

func (v *Vet) Clone() *Vet {
	if v == nil {
		return nil
	}
	clone := *v
	clone.specialties = v.Specialties()
	return &clone
}

// DefaultSpecialties and DefaultVets seed fresh stores.
func DefaultSpecialties() []Specialty {
	return []Specialty{
		{ID: 1, Name: "radiology"},
		{ID: 2, Name: "surgery"},
		{ID: 3, Name: "dentistry"},
	}
}

func DefaultVets() []*Vet {
	sp := DefaultSpecialties()
	radiology, surgery, dentistry := sp[0], sp[1], sp[2]
	return []*Vet{
		NewVet(1, "James", "Carter"),
		NewVet(2, "Helen", "Leary", radiology),
		NewVet(3, "Linda", "Douglas", surgery, dentistry),
		NewVet(4, "Rafael", "Ortega", surgery),
		NewVet(5, "Henry", "Stevens", radiology),
		NewVet(6, "Sharon", "Jenkins"),
	}
}

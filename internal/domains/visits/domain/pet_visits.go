package domain

// PetVisits is the result of a batch lookup: the flat list in storage order
// plus the same visits bucketed by pet id. Pets without visits have no bucket.
type PetVisits struct {
	items  []*Visit
	byPet  map[int64][]*Visit
	petIDs []int64
}

// GroupByPet buckets visits in a single pass, keeping storage order inside
// each bucket.
func GroupByPet(visits []*Visit) *PetVisits {
	pv := &PetVisits{
		items: make([]*Visit, 0, len(visits)),
		byPet: make(map[int64][]*Visit),
	}
	for _, visit := range visits {
		if visit == nil {
			continue
		}
		if _, seen := pv.byPet[visit.PetID]; !seen {
			pv.petIDs = append(pv.petIDs, visit.PetID)
		}
		pv.items = append(pv.items, visit)
		pv.byPet[visit.PetID] = append(pv.byPet[visit.PetID], visit)
	}
	return pv
}

// Items returns every visit in storage order. Never nil.
func (p *PetVisits) Items() []*Visit {
	if p == nil {
		return []*Visit{}
	}
	out := make([]*Visit, len(p.items))
	copy(out, p.items)
	return out
}

// ForPet returns the visits of one pet, or nil if it has none.
func (p *PetVisits) ForPet(petID int64) []*Visit {
	if p == nil {
		return nil
	}
	bucket := p.byPet[petID]
	if bucket == nil {
		return nil
	}
	out := make([]*Visit, len(bucket))
	copy(out, bucket)
	return out
}

// PetIDs lists pets that have at least one visit, in first-seen order.
func (p *PetVisits) PetIDs() []int64 {
	if p == nil {
		return nil
	}
	out := make([]int64, len(p.petIDs))
	copy(out, p.petIDs)
	return out
}

func (p *PetVisits) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

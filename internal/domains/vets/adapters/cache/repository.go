package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/vets/ports"
	platformredis "github.com/Apurer/go-gin-petclinic/internal/platform/redis"
)

// VetsKey holds the serialized vet directory.
const VetsKey = "petclinic:vets:all"

var _ ports.Repository = (*Repository)(nil)

// Repository is a read-through cache in front of another vets repository.
// Cache failures fall back to the wrapped repository.
type Repository struct {
	inner  ports.Repository
	client platformredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRepository(inner ports.Repository, client platformredis.Client, ttl time.Duration, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{inner: inner, client: client, ttl: ttl, logger: logger}
}

type cachedSpecialty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type cachedVet struct {
	ID          int64             `json:"id"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Specialties []cachedSpecialty `json:"specialties"`
}

func (r *Repository) FindAll(ctx context.Context) ([]*domain.Vet, error) {
	raw, err := r.client.GetFromCache(ctx, VetsKey)
	switch {
	case err == nil:
		vets, decodeErr := decode(raw)
		if decodeErr == nil {
			return vets, nil
		}
		r.logger.WarnContext(ctx, "discarding unreadable vets cache entry", slog.String("error", decodeErr.Error()))
	case errors.Is(err, platformredis.ErrCacheMiss):
	default:
		r.logger.WarnContext(ctx, "vets cache read failed", slog.String("error", err.Error()))
	}

	vets, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if payload, encodeErr := encode(vets); encodeErr == nil {
		if setErr := r.client.SetToCache(ctx, VetsKey, payload, r.ttl); setErr != nil {
			r.logger.WarnContext(ctx, "vets cache write failed", slog.String("error", setErr.Error()))
		}
	}
	return vets, nil
}

// Save writes through and drops the cached directory.
func (r *Repository) Save(ctx context.Context, vet *domain.Vet) (*domain.Vet, error) {
	saved, err := r.inner.Save(ctx, vet)
	if err != nil {
		return nil, err
	}
	if delErr := r.client.DeleteFromCache(ctx, VetsKey); delErr != nil {
		r.logger.WarnContext(ctx, "vets cache invalidation failed", slog.String("error", delErr.Error()))
	}
	return saved, nil
}

func encode(vets []*domain.Vet) (string, error) {
	out := make([]cachedVet, 0, len(vets))
	for _, vet := range vets {
		cv := cachedVet{ID: vet.ID, FirstName: vet.FirstName, LastName: vet.LastName, Specialties: []cachedSpecialty{}}
		for _, sp := range vet.Specialties() {
			cv.Specialties = append(cv.Specialties, cachedSpecialty{ID: sp.ID, Name: sp.Name})
		}
		out = append(out, cv)
	}
	raw, err := json.Marshal(out)
	return string(raw), err
}

func decode(raw string) ([]*domain.Vet, error) {
	var cached []cachedVet
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, err
	}
	vets := make([]*domain.Vet, 0, len(cached))
	for _, cv := range cached {
		vet := domain.NewVet(cv.ID, cv.FirstName, cv.LastName)
		for _, sp := range cv.Specialties {
			vet.AddSpecialty(domain.Specialty{ID: sp.ID, Name: sp.Name})
		}
		vets = append(vets, vet)
	}
	return vets, nil
}

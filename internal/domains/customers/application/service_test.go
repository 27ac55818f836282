package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customertypes "github.com/Apurer/go-gin-petclinic/internal/domains/customers/application/types"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-petclinic/internal/domains/customers/ports"
	"github.com/Apurer/go-gin-petclinic/internal/shared/events"
	"github.com/Apurer/go-gin-petclinic/internal/shared/validation"
)

type fakeCustomerRepo struct {
	owners   map[int64]*domain.Owner
	pets     map[int64]*domain.Pet
	nextID   int64
	finds    int
	saves    int
	petSaves int
	saveErr  error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{owners: map[int64]*domain.Owner{}, pets: map[int64]*domain.Pet{}}
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*domain.Owner, error) {
	f.finds++
	if o, ok := f.owners[id]; ok {
		return o.Clone(), nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeCustomerRepo) FindAll(_ context.Context) ([]*domain.Owner, error) {
	var list []*domain.Owner
	for _, o := range f.owners {
		list = append(list, o.Clone())
	}
	return list, nil
}

func (f *fakeCustomerRepo) Save(_ context.Context, owner *domain.Owner) (*domain.Owner, error) {
	f.saves++
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	clone := owner.Clone()
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	f.owners[clone.ID] = clone
	return clone.Clone(), nil
}

func (f *fakeCustomerRepo) FindPetByID(_ context.Context, id int64) (*domain.Pet, error) {
	if p, ok := f.pets[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeCustomerRepo) SavePet(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	f.petSaves++
	copy := *pet
	if copy.ID == 0 {
		f.nextID++
		copy.ID = f.nextID
	}
	f.pets[copy.ID] = &copy
	return &copy, nil
}

func (f *fakeCustomerRepo) FindPetTypes(_ context.Context) ([]domain.PetType, error) {
	return domain.DefaultPetTypes(), nil
}

func (f *fakeCustomerRepo) FindPetTypeByID(_ context.Context, id int64) (*domain.PetType, error) {
	for _, pt := range domain.DefaultPetTypes() {
		if pt.ID == id {
			copy := pt
			return &copy, nil
		}
	}
	return nil, ports.ErrPetTypeNotFound
}

func georgeRequest() customertypes.OwnerRequest {
	return customertypes.OwnerRequest{
		FirstName: "George",
		LastName:  "Franklin",
		Address:   "110 W. Liberty St.",
		City:      "Madison",
		Telephone: "6085551023",
	}
}

func TestCreateOwner_PersistsAndPublishes(t *testing.T) {
	repo := newFakeCustomerRepo()
	recorder := &events.Recorder{}
	svc := NewService(repo, repo, WithEventPublisher(recorder))

	owner, err := svc.CreateOwner(context.Background(), georgeRequest())
	require.NoError(t, err)
	assert.NotZero(t, owner.ID)
	assert.Equal(t, "George", owner.FirstName)
	assert.Equal(t, "Franklin", owner.LastName)
	assert.Equal(t, "110 W. Liberty St.", owner.Address)
	assert.Equal(t, "Madison", owner.City)
	assert.Equal(t, "6085551023", owner.Telephone)

	published := recorder.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.OwnerCreated, published[0].Type)
}

func TestCreateOwner_ReportsEveryBlankField(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, repo)

	_, err := svc.CreateOwner(context.Background(), customertypes.OwnerRequest{FirstName: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)

	violations, ok := validation.As(err)
	require.True(t, ok)
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"firstName", "lastName", "address", "city", "telephone"}, fields)
	assert.Zero(t, repo.saves)
}

func TestUpdateOwner_KeepsIdentity(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, repo)
	created, err := svc.CreateOwner(context.Background(), georgeRequest())
	require.NoError(t, err)

	req := georgeRequest()
	req.City = "Monona"
	req.Telephone = "6085550000"
	require.NoError(t, svc.UpdateOwner(context.Background(), created.ID, req))

	updated, err := svc.GetOwner(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Monona", updated.City)
	assert.Equal(t, "6085550000", updated.Telephone)
}

func TestUpdateOwner_MissingOwnerWinsOverInvalidPayload(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, repo)

	err := svc.UpdateOwner(context.Background(), 99, customertypes.OwnerRequest{})
	require.ErrorIs(t, err, ports.ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.saves)
}

func TestUpdateOwner_InvalidPayloadForExistingOwner(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, repo)
	created, err := svc.CreateOwner(context.Background(), georgeRequest())
	require.NoError(t, err)

	err = svc.UpdateOwner(context.Background(), created.ID, customertypes.OwnerRequest{FirstName: "George"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, repo.saves)
}

func TestListOwners_EmptyIsNotNil(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, repo)

	owners, err := svc.ListOwners(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, owners)
	assert.Empty(t, owners)
}

func TestCreateOwner_StorageFailurePropagates(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.saveErr = errors.New("connection refused")
	svc := NewService(repo, repo)

	_, err := svc.CreateOwner(context.Background(), georgeRequest())
	require.EqualError(t, err, "connection refused")
}

func TestCreateOwner_PublishFailureDoesNotFailRequest(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, repo, WithEventPublisher(&events.Recorder{Err: errors.New("broker down")}))

	owner, err := svc.CreateOwner(context.Background(), georgeRequest())
	require.NoError(t, err)
	assert.NotZero(t, owner.ID)
}

// stalledBroker blocks every Publish until release is closed.
type stalledBroker struct {
	release   chan struct{}
	delivered chan events.Event
}

func (b *stalledBroker) Publish(_ context.Context, event events.Event) error {
	<-b.release
	b.delivered <- event
	return nil
}

func TestCreateOwner_StalledBrokerDoesNotDelayResponse(t *testing.T) {
	repo := newFakeCustomerRepo()
	broker := &stalledBroker{release: make(chan struct{}), delivered: make(chan events.Event, 1)}
	async := events.NewAsync(broker, nil, 8, time.Minute)
	svc := NewService(repo, repo, WithEventPublisher(async))

	done := make(chan error, 1)
	go func() {
		_, err := svc.CreateOwner(context.Background(), georgeRequest())
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("CreateOwner waited on the broker")
	}
	assert.Equal(t, 1, repo.saves)

	close(broker.release)
	require.NoError(t, async.Close())
	assert.Equal(t, events.OwnerCreated, (<-broker.delivered).Type)
}

func TestCreatePet_ChecksOwnerThenType(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, repo)

	_, err := svc.CreatePet(context.Background(), 42, customertypes.PetRequest{Name: "Leo", TypeID: 1})
	require.ErrorIs(t, err, ports.ErrNotFound)

	owner, err := svc.CreateOwner(context.Background(), georgeRequest())
	require.NoError(t, err)

	_, err = svc.CreatePet(context.Background(), owner.ID, customertypes.PetRequest{Name: "Leo", TypeID: 99})
	require.ErrorIs(t, err, ErrInvalidInput)
	violations, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, "typeId", violations[0].Field)

	pet, err := svc.CreatePet(context.Background(), owner.ID, customertypes.PetRequest{Name: "Leo", BirthDate: "2020-09-07", TypeID: 1})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, pet.OwnerID)
	assert.Equal(t, "cat", pet.Type.Name)
	assert.Equal(t, 2020, pet.BirthDate.Year())
}

func TestGetPet_IncludesOwnerName(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, repo)
	owner, err := svc.CreateOwner(context.Background(), georgeRequest())
	require.NoError(t, err)
	pet, err := svc.CreatePet(context.Background(), owner.ID, customertypes.PetRequest{Name: "Leo", TypeID: 2})
	require.NoError(t, err)

	details, err := svc.GetPet(context.Background(), pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "George Franklin", details.Owner)
	assert.Equal(t, "dog", details.Type.Name)
}

func TestUpdatePet_MissingPetBeforeValidation(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, repo)

	err := svc.UpdatePet(context.Background(), 7, customertypes.PetRequest{})
	require.ErrorIs(t, err, ports.ErrNotFound)
	assert.Zero(t, repo.petSaves)
}

package petservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
	"petshop/internal/pkg/logger"
	"petshop/internal/repository/memrepo"
	"petshop/internal/service/petservice"
)

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, pet domain.Pet) (domain.Pet, error) {
	args := m.Called(ctx, pet)
	return args.Get(0).(domain.Pet), args.Error(1)
}

func (m *MockPetRepository) FindByID(ctx context.Context, id string) (domain.Pet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pet), args.Error(1)
}

func (m *MockPetRepository) FindByName(ctx context.Context, name string) (domain.Pet, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Pet), args.Error(1)
}

func (m *MockPetRepository) List(ctx context.Context, page domain.Page) ([]domain.Pet, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *MockPetRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *MockPetRepository) Search(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *MockPetRepository) Update(ctx context.Context, pet domain.Pet) (domain.Pet, error) {
	args := m.Called(ctx, pet)
	return args.Get(0).(domain.Pet), args.Error(1)
}

func (m *MockPetRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockClientFinder struct {
	mock.Mock
}

func (m *MockClientFinder) FindByID(ctx context.Context, id string) (domain.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Client), args.Error(1)
}

type MockScheduleRemover struct {
	mock.Mock
}

func (m *MockScheduleRemover) DeleteByPet(ctx context.Context, petID string) (int64, error) {
	args := m.Called(ctx, petID)
	return args.Get(0).(int64), args.Error(1)
}

func newMockedService() (*petservice.Service, *MockPetRepository, *MockClientFinder, *MockScheduleRemover) {
	pets, clients, schedules := new(MockPetRepository), new(MockClientFinder), new(MockScheduleRemover)
	return petservice.NewService(pets, clients, schedules, logger.Nop()), pets, clients, schedules
}

// TestCreatePet_MissingClient não grava nada quando o dono não existe.
func TestCreatePet_MissingClient(t *testing.T) {
	svc, pets, clients, _ := newMockedService()
	clientID := identifier.New()
	clients.On("FindByID", mock.Anything, clientID).Return(domain.Client{}, apperror.NewNotFoundError("cliente"))

	_, err := svc.CreatePet(context.Background(), clientID, domain.Pet{Name: "Rex"})

	assert.True(t, apperror.IsNotFound(err))
	pets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestCreatePet_DuplicateName rejeita nome repetido entre clientes diferentes.
func TestCreatePet_DuplicateName(t *testing.T) {
	svc, pets, clients, _ := newMockedService()
	clientID := identifier.New()
	clients.On("FindByID", mock.Anything, clientID).Return(domain.Client{ID: clientID}, nil)
	pets.On("FindByName", mock.Anything, "Rex").Return(domain.Pet{ID: identifier.New(), ClientID: identifier.New(), Name: "Rex"}, nil)

	_, err := svc.CreatePet(context.Background(), clientID, domain.Pet{Name: "Rex"})

	assert.IsType(t, &apperror.ConflictError{}, err)
	pets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestCreatePet_SetsOwner usa o client_id da rota, não o do corpo.
func TestCreatePet_SetsOwner(t *testing.T) {
	svc, pets, clients, _ := newMockedService()
	clientID := identifier.New()
	expected := domain.Pet{ClientID: clientID, Name: "Rex", Breed: "SRD", Age: 3}

	clients.On("FindByID", mock.Anything, clientID).Return(domain.Client{ID: clientID}, nil)
	pets.On("FindByName", mock.Anything, "Rex").Return(domain.Pet{}, apperror.NewNotFoundError("pet"))
	pets.On("Create", mock.Anything, expected).Return(expected, nil)

	_, err := svc.CreatePet(context.Background(), clientID, domain.Pet{ClientID: "outro", Name: "Rex", Breed: "SRD", Age: 3})

	require.NoError(t, err)
	pets.AssertExpectations(t)
}

// TestCreatePet_InvalidClientID falha antes de qualquer busca.
func TestCreatePet_InvalidClientID(t *testing.T) {
	svc, _, clients, _ := newMockedService()

	_, err := svc.CreatePet(context.Background(), "nao-e-id", domain.Pet{Name: "Rex"})

	assert.IsType(t, &apperror.InvalidIdentifierError{}, err)
	clients.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// TestUpdatePet_OtherOwnerIsNotFound esconde pets de outros clientes.
func TestUpdatePet_OtherOwnerIsNotFound(t *testing.T) {
	svc, pets, _, _ := newMockedService()
	petID := identifier.New()
	pets.On("FindByID", mock.Anything, petID).Return(domain.Pet{ID: petID, ClientID: identifier.New(), Name: "Rex"}, nil)
	name := "Max"

	_, err := svc.UpdatePet(context.Background(), identifier.New(), petID, domain.PetPatch{Name: &name})

	assert.True(t, apperror.IsNotFound(err))
	pets.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// TestDeletePet_StageFailure informa a etapa em que a exclusão parou.
func TestDeletePet_StageFailure(t *testing.T) {
	svc, pets, _, schedules := newMockedService()
	clientID, petID := identifier.New(), identifier.New()
	cause := errors.New("write conflict")

	pets.On("FindByID", mock.Anything, petID).Return(domain.Pet{ID: petID, ClientID: clientID}, nil)
	schedules.On("DeleteByPet", mock.Anything, petID).Return(int64(2), nil)
	pets.On("Delete", mock.Anything, petID).Return(cause)

	err := svc.DeletePet(context.Background(), clientID, petID)

	var partial *apperror.PartialCascadeError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, petservice.StagePet, partial.Stage)
}

// TestSearchPets_EmptyTerm exige um termo de busca.
func TestSearchPets_EmptyTerm(t *testing.T) {
	svc, pets, _, _ := newMockedService()

	_, err := svc.SearchPets(context.Background(), domain.PetFilter{Name: "  ", Page: domain.DefaultPage()})

	assert.IsType(t, &apperror.ValidationError{}, err)
	pets.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func newMemService(t *testing.T) (*petservice.Service, domain.Store, domain.Client) {
	t.Helper()
	store := memrepo.NewStore()
	owner, err := store.Clients.Create(context.Background(), domain.Client{Name: "Ana", CPF: "1"})
	require.NoError(t, err)
	return petservice.NewService(store.Pets, store.Clients, store.Schedules, logger.Nop()), store, owner
}

// TestDeletePet_Twice remove o pet e seus agendamentos; a segunda vez é NotFound.
func TestDeletePet_Twice(t *testing.T) {
	ctx := context.Background()
	svc, store, owner := newMemService(t)

	rex, err := svc.CreatePet(ctx, owner.ID, domain.Pet{Name: "Rex"})
	require.NoError(t, err)
	_, err = store.Schedules.Create(ctx, domain.Schedule{
		ClientID: owner.ID, PetID: rex.ID, ServiceIDs: []string{identifier.New()},
		DateSchedule: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePet(ctx, owner.ID, rex.ID))

	total, _ := store.Schedules.Count(ctx)
	assert.Zero(t, total)
	assert.True(t, apperror.IsNotFound(svc.DeletePet(ctx, owner.ID, rex.ID)))
}

// TestSearchPets_CaseInsensitive casa trechos do nome sem diferenciar maiúsculas.
func TestSearchPets_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _, owner := newMemService(t)

	for _, name := range []string{"Rex", "Rexona", "Bolt"} {
		_, err := svc.CreatePet(ctx, owner.ID, domain.Pet{Name: name})
		require.NoError(t, err)
	}

	found, err := svc.SearchPets(ctx, domain.PetFilter{Name: "rEx", Page: domain.DefaultPage()})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.SearchPets(ctx, domain.PetFilter{Name: "rex", ClientID: owner.ID, Page: domain.Page{Skip: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = svc.SearchPets(ctx, domain.PetFilter{Name: "rex", ClientID: identifier.New(), Page: domain.DefaultPage()})
	assert.True(t, apperror.IsNotFound(err))
}

// TestUpdatePet_PartialPatch mantém os campos não enviados.
func TestUpdatePet_PartialPatch(t *testing.T) {
	ctx := context.Background()
	svc, _, owner := newMemService(t)

	rex, err := svc.CreatePet(ctx, owner.ID, domain.Pet{Name: "Rex", Breed: "SRD", Age: 2, SizeInCentimeters: 40})
	require.NoError(t, err)

	age := 3
	updated, err := svc.UpdatePet(ctx, owner.ID, rex.ID, domain.PetPatch{Age: &age})
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Age)
	assert.Equal(t, "Rex", updated.Name)
	assert.Equal(t, "SRD", updated.Breed)
	assert.Equal(t, 40, updated.SizeInCentimeters)
	assert.Equal(t, owner.ID, updated.ClientID)
}

// TestListPetsByClient exige cliente existente.
func TestListPetsByClient(t *testing.T) {
	ctx := context.Background()
	svc, _, owner := newMemService(t)

	_, err := svc.CreatePet(ctx, owner.ID, domain.Pet{Name: "Rex"})
	require.NoError(t, err)

	pets, err := svc.ListPetsByClient(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, pets, 1)

	_, err = svc.ListPetsByClient(ctx, identifier.New())
	assert.True(t, apperror.IsNotFound(err))
}

package catalogservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
	"petshop/internal/pkg/logger"
	"petshop/internal/repository/memrepo"
	"petshop/internal/service/catalogservice"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, service domain.Service) (domain.Service, error) {
	args := m.Called(ctx, service)
	return args.Get(0).(domain.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id string) (domain.Service, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByType(ctx context.Context, typeService string) (domain.Service, error) {
	args := m.Called(ctx, typeService)
	return args.Get(0).(domain.Service), args.Error(1)
}

func (m *MockServiceRepository) List(ctx context.Context, page domain.Page) ([]domain.Service, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, service domain.Service) (domain.Service, error) {
	args := m.Called(ctx, service)
	return args.Get(0).(domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockServiceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateService_Validation(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := catalogservice.NewService(repo, logger.Nop())

	cases := map[string]domain.Service{
		"tipo vazio":     {TypeService: "", Price: 10, DurationInMinutes: 30},
		"preço negativo": {TypeService: "Banho", Price: -1, DurationInMinutes: 30},
		"duração zero":   {TypeService: "Banho", Price: 10, DurationInMinutes: 0},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateService(context.Background(), input)
			assert.IsType(t, &apperror.ValidationError{}, err)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateService_DuplicateType(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := catalogservice.NewService(repo, logger.Nop())
	repo.On("FindByType", mock.Anything, "Banho").Return(domain.Service{ID: identifier.New(), TypeService: "Banho"}, nil)

	_, err := svc.CreateService(context.Background(), domain.Service{TypeService: "Banho", Price: 40, DurationInMinutes: 30})

	assert.IsType(t, &apperror.ConflictError{}, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateService_OnlyPrice(t *testing.T) {
	ctx := context.Background()
	store := memrepo.NewStore()
	svc := catalogservice.NewService(store.Services, logger.Nop())

	banho, err := svc.CreateService(ctx, domain.Service{TypeService: "Banho", Price: 40, DurationInMinutes: 30})
	require.NoError(t, err)

	price := 45.0
	updated, err := svc.UpdateService(ctx, banho.ID, domain.ServicePatch{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, domain.Service{ID: banho.ID, TypeService: "Banho", Price: 45, DurationInMinutes: 30}, updated)

	stored, err := svc.GetServiceByID(ctx, banho.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateService_EmptyPatchIsNoop(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := catalogservice.NewService(repo, logger.Nop())
	id := identifier.New()
	current := domain.Service{ID: id, TypeService: "Tosa", Price: 60, DurationInMinutes: 45}
	repo.On("FindByID", mock.Anything, id).Return(current, nil)

	got, err := svc.UpdateService(context.Background(), id, domain.ServicePatch{})

	require.NoError(t, err)
	assert.Equal(t, current, got)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteService(t *testing.T) {
	ctx := context.Background()
	store := memrepo.NewStore()
	svc := catalogservice.NewService(store.Services, logger.Nop())

	tosa, err := svc.CreateService(ctx, domain.Service{TypeService: "Tosa", Price: 60, DurationInMinutes: 45})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteService(ctx, tosa.ID))
	assert.True(t, apperror.IsNotFound(svc.DeleteService(ctx, tosa.ID)))
	assert.IsType(t, &apperror.InvalidIdentifierError{}, svc.DeleteService(ctx, "xyz"))
}

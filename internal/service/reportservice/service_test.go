package reportservice_test

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
	"petshop/internal/service/reportservice"
)

func newService(store domain.Store) *reportservice.Service {
	return reportservice.NewService(store.Clients, store.Pets, store.Services, store.Schedules, logger.Nop())
}

func seedServices(t *testing.T, store domain.Store, prices ...float64) map[float64]string {
	t.Helper()
	ids := make(map[float64]string, len(prices))
	for i, price := range prices {
		svc, err := store.Services.Create(context.Background(), domain.Service{
			TypeService:       "servico-" + string(rune('a'+i)),
			Price:             price,
			DurationInMinutes: 30,
		})
		require.NoError(t, err)
		ids[price] = svc.ID
	}
	return ids
}

func TestServicesByPriceBand_Boundaries(t *testing.T) {
	store := memrepo.NewStore()
	ids := seedServices(t, store, 0, 50, 50.01, 100, 100.01, 500, 500.01)
	svc := newService(store)

	cases := map[string][]float64{
		"cheap services":     {0, 50},
		"medium":             {50.01, 100},
		"Expensive Services": {100.01, 500},
	}
	for category, prices := range cases {
		t.Run(category, func(t *testing.T) {
			found, err := svc.ServicesByPriceBand(context.Background(), category)
			require.NoError(t, err)

			got := make([]string, 0, len(found))
			for _, s := range found {
				got = append(got, s.ID)
			}
			want := make([]string, 0, len(prices))
			for _, p := range prices {
				want = append(want, ids[p])
			}
			assert.ElementsMatch(t, want, got)
			assert.NotContains(t, got, ids[500.01])
		})
	}
}

func TestServicesByPriceBand_UnknownCategory(t *testing.T) {
	svc := newService(memrepo.NewStore())

	_, err := svc.ServicesByPriceBand(context.Background(), "luxury services")

	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestSchedulesByMonth_DecemberRollover(t *testing.T) {
	ctx := context.Background()
	store := memrepo.NewStore()
	svc := newService(store)

	dates := []time.Time{
		time.Date(2024, 11, 30, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		_, err := store.Schedules.Create(ctx, domain.Schedule{
			ClientID: identifier.New(), PetID: identifier.New(), ServiceIDs: []string{identifier.New()}, DateSchedule: d,
		})
		require.NoError(t, err)
	}

	found, err := svc.SchedulesByMonth(ctx, 12, 2024)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, dates[1], found[0].DateSchedule)
	assert.Equal(t, dates[2], found[1].DateSchedule)

	_, err = svc.SchedulesByMonth(ctx, 13, 2024)
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestScheduleDetail_SkipsDeletedService(t *testing.T) {
	ctx := context.Background()
	store := memrepo.NewStore()
	svc := newService(store)

	ana, _ := store.Clients.Create(ctx, domain.Client{Name: "Ana", CPF: "1"})
	rex, _ := store.Pets.Create(ctx, domain.Pet{ClientID: ana.ID, Name: "Rex"})
	ids := seedServices(t, store, 40, 60)
	schedule, err := store.Schedules.Create(ctx, domain.Schedule{
		ClientID:     ana.ID,
		PetID:        rex.ID,
		ServiceIDs:   []string{ids[60], ids[40]},
		DateSchedule: time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	detail, err := svc.ScheduleDetail(ctx, schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-05T10:00:00Z", detail.DateSchedule)
	assert.Equal(t, ana, detail.Client)
	assert.Equal(t, rex, detail.Pet)
	require.Len(t, detail.Services, 2)
	assert.Equal(t, ids[60], detail.Services[0].ID)

	require.NoError(t, store.Services.Delete(ctx, ids[60]))

	detail, err = svc.ScheduleDetail(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, detail.Services, 1)
	assert.Equal(t, ids[40], detail.Services[0].ID)
}

func TestClientSchedules_SkipsMissingPet(t *testing.T) {
	ctx := context.Background()
	store := memrepo.NewStore()
	svc := newService(store)

	ana, _ := store.Clients.Create(ctx, domain.Client{Name: "Ana", CPF: "1"})
	rex, _ := store.Pets.Create(ctx, domain.Pet{ClientID: ana.ID, Name: "Rex"})
	when := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	_, _ = store.Schedules.Create(ctx, domain.Schedule{ClientID: ana.ID, PetID: rex.ID, ServiceIDs: []string{identifier.New()}, DateSchedule: when})
	_, _ = store.Schedules.Create(ctx, domain.Schedule{ClientID: ana.ID, PetID: identifier.New(), ServiceIDs: []string{identifier.New()}, DateSchedule: when})

	details, err := svc.ClientSchedules(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, rex.ID, details[0].Pet.ID)
	assert.Empty(t, details[0].Services)

	_, err = svc.ClientSchedules(ctx, identifier.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestClientTotals_SortedDescending(t *testing.T) {
	ctx := context.Background()
	store := memrepo.NewStore()
	svc := newService(store)

	ana, _ := store.Clients.Create(ctx, domain.Client{Name: "Ana", CPF: "1"})
	bia, _ := store.Clients.Create(ctx, domain.Client{Name: "Bia", CPF: "2"})
	when := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, clientID := range []string{ana.ID, bia.ID, bia.ID, bia.ID, ana.ID} {
		_, err := store.Schedules.Create(ctx, domain.Schedule{ClientID: clientID, PetID: identifier.New(), ServiceIDs: []string{identifier.New()}, DateSchedule: when})
		require.NoError(t, err)
	}

	totals, err := svc.ClientTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ClientScheduleTotal{
		{ClientID: bia.ID, ClientName: "Bia", TotalSchedules: 3},
		{ClientID: ana.ID, ClientName: "Ana", TotalSchedules: 2},
	}, totals)

	count, err := svc.CountSchedules(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count.TotalSchedules)
}

type failingSchedules struct {
	mock.Mock
	reportservice.ScheduleReader
}

func (f *failingSchedules) CountByClient(ctx context.Context) ([]domain.ClientScheduleTotal, error) {
	args := f.Called(ctx)
	return nil, args.Error(0)
}

func TestClientTotals_PropagatesStoreError(t *testing.T) {
	store := memrepo.NewStore()
	schedules := new(failingSchedules)
	dbErr := apperror.NewDBError("aggregate", errors.New("cursor killed"))
	schedules.On("CountByClient", mock.Anything).Return(dbErr)
	svc := reportservice.NewService(store.Clients, store.Pets, store.Services, schedules, logger.Nop())

	_, err := svc.ClientTotals(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

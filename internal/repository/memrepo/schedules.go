package memrepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
)

var _ domain.ScheduleRepository = (*ScheduleRepository)(nil)

// ScheduleRepository guarda agendamentos em memória.
type ScheduleRepository struct {
	rows    *table[domain.Schedule]
	clients *ClientRepository
}

func NewScheduleRepository(clients *ClientRepository) *ScheduleRepository {
	return &ScheduleRepository{
		rows:    newTable(cloneSchedule),
		clients: clients,
	}
}

func cloneSchedule(s domain.Schedule) domain.Schedule {
	s.ServiceIDs = append([]string(nil), s.ServiceIDs...)
	return s
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	if schedule.ID == "" {
		schedule.ID = identifier.New()
	}
	if err := r.rows.insert(schedule.ID, schedule, nil); err != nil {
		return domain.Schedule{}, apperror.NewConflictError(fmt.Sprintf("Agendamento %s já existe", schedule.ID))
	}
	return cloneSchedule(schedule), nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (domain.Schedule, error) {
	s, ok := r.rows.get(id)
	if !ok {
		return domain.Schedule{}, apperror.NewNotFoundError(fmt.Sprintf("Agendamento com o id %s não encontrado", id))
	}
	return s, nil
}

func (r *ScheduleRepository) List(ctx context.Context, page domain.Page) ([]domain.Schedule, error) {
	return paginate(r.rows.find(nil), page), nil
}

func (r *ScheduleRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Schedule, error) {
	return r.rows.find(func(s domain.Schedule) bool { return s.ClientID == clientID }), nil
}

// ListByDateRange devolve os agendamentos em [start, end), ordenados pela data.
func (r *ScheduleRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Schedule, error) {
	found := r.rows.find(func(s domain.Schedule) bool {
		return !s.DateSchedule.Before(start) && s.DateSchedule.Before(end)
	})
	sort.SliceStable(found, func(i, j int) bool { return found[i].DateSchedule.Before(found[j].DateSchedule) })
	return found, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	if err := r.rows.replace(schedule.ID, schedule, nil); err != nil {
		return domain.Schedule{}, apperror.NewNotFoundError(fmt.Sprintf("Agendamento com o id %s não encontrado", schedule.ID))
	}
	return cloneSchedule(schedule), nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return apperror.NewNotFoundError(fmt.Sprintf("Agendamento com o id %s não encontrado", id))
	}
	return nil
}

func (r *ScheduleRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	return r.rows.removeWhere(func(s domain.Schedule) bool { return s.ClientID == clientID }), nil
}

func (r *ScheduleRepository) DeleteByPet(ctx context.Context, petID string) (int64, error) {
	return r.rows.removeWhere(func(s domain.Schedule) bool { return s.PetID == petID }), nil
}

func (r *ScheduleRepository) Count(ctx context.Context) (int64, error) {
	return r.rows.count(), nil
}

// CountByClient agrupa os agendamentos por cliente em ordem decrescente de total.
// Agendamentos de clientes inexistentes ficam de fora. Empates mantêm a ordem
// em que o cliente apareceu pela primeira vez.
func (r *ScheduleRepository) CountByClient(ctx context.Context) ([]domain.ClientScheduleTotal, error) {
	totals := make([]domain.ClientScheduleTotal, 0)
	index := make(map[string]int)

	for _, s := range r.rows.find(nil) {
		if i, seen := index[s.ClientID]; seen {
			totals[i].TotalSchedules++
			continue
		}
		name, ok := r.clients.name(s.ClientID)
		if !ok {
			continue
		}
		index[s.ClientID] = len(totals)
		totals = append(totals, domain.ClientScheduleTotal{ClientID: s.ClientID, ClientName: name, TotalSchedules: 1})
	}

	sort.SliceStable(totals, func(i, j int) bool { return totals[i].TotalSchedules > totals[j].TotalSchedules })
	return totals, nil
}

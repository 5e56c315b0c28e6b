package pgrepo

import (
	"context"
	"fmt"
	"time"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
)

var _ domain.ScheduleRepository = (*ScheduleRepository)(nil)

// ScheduleRepository persiste agendamentos na tabela schedules.
type ScheduleRepository struct {
	rows table[domain.Schedule]
}

func scheduleNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Agendamento com o id %s não encontrado", id))
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	if schedule.ID == "" {
		schedule.ID = identifier.New()
	}
	schedule.DateSchedule = schedule.DateSchedule.UTC()
	if err := r.rows.insert(ctx, schedule.ID, schedule, fmt.Sprintf("Agendamento %s já existe", schedule.ID)); err != nil {
		return domain.Schedule{}, err
	}
	return schedule, nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (domain.Schedule, error) {
	s, ok, err := r.rows.findOne(ctx, `id = $1`, id)
	if err != nil {
		return domain.Schedule{}, err
	}
	if !ok {
		return domain.Schedule{}, scheduleNotFound(id)
	}
	return s, nil
}

func (r *ScheduleRepository) List(ctx context.Context, page domain.Page) ([]domain.Schedule, error) {
	return r.rows.find(ctx, `TRUE`, pageClause(1), page.Skip, page.Limit)
}

func (r *ScheduleRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Schedule, error) {
	return r.rows.find(ctx, `doc->>'client_id' = $1`, insertionOrder, clientID)
}

func (r *ScheduleRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Schedule, error) {
	return r.rows.find(ctx,
		`(doc->>'date_schedule')::timestamptz >= $1 AND (doc->>'date_schedule')::timestamptz < $2`,
		`ORDER BY (doc->>'date_schedule')::timestamptz, id`,
		start.UTC(), end.UTC())
}

func (r *ScheduleRepository) Update(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	schedule.DateSchedule = schedule.DateSchedule.UTC()
	found, err := r.rows.replace(ctx, schedule.ID, schedule, "")
	if err != nil {
		return domain.Schedule{}, err
	}
	if !found {
		return domain.Schedule{}, scheduleNotFound(schedule.ID)
	}
	return schedule, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	n, err := r.rows.deleteWhere(ctx, `id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return scheduleNotFound(id)
	}
	return nil
}

func (r *ScheduleRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	return r.rows.deleteWhere(ctx, `doc->>'client_id' = $1`, clientID)
}

func (r *ScheduleRepository) DeleteByPet(ctx context.Context, petID string) (int64, error) {
	return r.rows.deleteWhere(ctx, `doc->>'pet_id' = $1`, petID)
}

func (r *ScheduleRepository) Count(ctx context.Context) (int64, error) {
	return r.rows.count(ctx)
}

// clientTotalsQuery agrupa por cliente; o JOIN descarta agendamentos de clientes removidos.
const clientTotalsQuery = `
	SELECT c.id, c.doc->>'name', COUNT(*) AS total_schedules
	FROM schedules s
	JOIN clients c ON c.id = s.doc->>'client_id'
	GROUP BY c.id, c.doc->>'name'
	ORDER BY total_schedules DESC`

func (r *ScheduleRepository) CountByClient(ctx context.Context) ([]domain.ClientScheduleTotal, error) {
	ctx, cancel := context.WithTimeout(ctx, r.rows.timeout)
	defer cancel()

	rows, err := r.rows.db.QueryContext(ctx, clientTotalsQuery)
	if err != nil {
		return nil, r.rows.dbErr(err, "agregar agendamentos por cliente")
	}
	defer rows.Close()

	out := make([]domain.ClientScheduleTotal, 0)
	for rows.Next() {
		var t domain.ClientScheduleTotal
		if err := rows.Scan(&t.ClientID, &t.ClientName, &t.TotalSchedules); err != nil {
			return nil, r.rows.dbErr(err, "ler totais por cliente")
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, r.rows.dbErr(err, "ler totais por cliente")
	}
	return out, nil
}

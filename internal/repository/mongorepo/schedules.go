package mongorepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
)

var _ domain.ScheduleRepository = (*ScheduleRepository)(nil)

// ScheduleRepository persiste agendamentos na coleção "schedule".
type ScheduleRepository struct {
	collection
}

func scheduleNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Agendamento com o id %s não encontrado", id))
}

func schedulesToDomain(docs []scheduleDoc) []domain.Schedule {
	out := make([]domain.Schedule, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	doc, err := toScheduleDoc(schedule)
	if err != nil {
		return domain.Schedule{}, err
	}

	insCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.coll.InsertOne(insCtx, doc); err != nil {
		return domain.Schedule{}, r.writeErr(err, fmt.Sprintf("Agendamento %s já existe", doc.ID.Hex()), "inserir agendamento")
	}
	return doc.toDomain(), nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (domain.Schedule, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.Schedule{}, scheduleNotFound(id)
	}
	doc, ok, err := findOne[scheduleDoc](ctx, r.collection, bson.M{"_id": oid})
	if err != nil {
		return domain.Schedule{}, err
	}
	if !ok {
		return domain.Schedule{}, scheduleNotFound(id)
	}
	return doc.toDomain(), nil
}

func (r *ScheduleRepository) List(ctx context.Context, page domain.Page) ([]domain.Schedule, error) {
	docs, err := findMany[scheduleDoc](ctx, r.collection, bson.M{}, pageOptions(page))
	if err != nil {
		return nil, err
	}
	return schedulesToDomain(docs), nil
}

func (r *ScheduleRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Schedule, error) {
	owner, err := bson.ObjectIDFromHex(clientID)
	if err != nil {
		return []domain.Schedule{}, nil
	}
	docs, err := findMany[scheduleDoc](ctx, r.collection, bson.M{"client": owner}, nil)
	if err != nil {
		return nil, err
	}
	return schedulesToDomain(docs), nil
}

func (r *ScheduleRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Schedule, error) {
	filter := bson.M{"date_schedule": bson.M{"$gte": start.UTC(), "$lt": end.UTC()}}
	opts := options.Find().SetSort(bson.D{{Key: "date_schedule", Value: 1}})

	docs, err := findMany[scheduleDoc](ctx, r.collection, filter, opts)
	if err != nil {
		return nil, err
	}
	return schedulesToDomain(docs), nil
}

func (r *ScheduleRepository) Update(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	if schedule.ID == "" {
		return domain.Schedule{}, scheduleNotFound(schedule.ID)
	}
	doc, err := toScheduleDoc(schedule)
	if err != nil {
		return domain.Schedule{}, err
	}
	matched, err := r.replace(ctx, doc.ID, doc, "")
	if err != nil {
		return domain.Schedule{}, err
	}
	if !matched {
		return domain.Schedule{}, scheduleNotFound(schedule.ID)
	}
	return doc.toDomain(), nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.deleteOne(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return scheduleNotFound(id)
	}
	return nil
}

func (r *ScheduleRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	owner, err := bson.ObjectIDFromHex(clientID)
	if err != nil {
		return 0, nil
	}
	return r.deleteMany(ctx, bson.M{"client": owner})
}

func (r *ScheduleRepository) DeleteByPet(ctx context.Context, petID string) (int64, error) {
	pet, err := bson.ObjectIDFromHex(petID)
	if err != nil {
		return 0, nil
	}
	return r.deleteMany(ctx, bson.M{"pet": pet})
}

func (r *ScheduleRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

// CountByClient executa o pipeline de totais por cliente. Empates saem na ordem do $group.
func (r *ScheduleRepository) CountByClient(ctx context.Context) ([]domain.ClientScheduleTotal, error) {
	aggCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Aggregate(aggCtx, clientTotalsPipeline())
	if err != nil {
		return nil, r.readErr(err, "agregar agendamentos por cliente")
	}

	var docs []clientTotalDoc
	if err := cursor.All(aggCtx, &docs); err != nil {
		return nil, r.readErr(err, "decodificar totais por cliente")
	}

	out := make([]domain.ClientScheduleTotal, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.ClientScheduleTotal{ClientID: d.ClientID, ClientName: d.ClientName, TotalSchedules: d.TotalSchedules})
	}
	return out, nil
}

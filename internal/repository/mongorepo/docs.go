package mongorepo

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
)

// Os documentos mantêm os nomes de campo das coleções existentes:
// referências são ObjectIDs em "client", "pet" e "services".

type clientDoc struct {
	ID      bson.ObjectID `bson:"_id"`
	Name    string        `bson:"name"`
	CPF     string        `bson:"cpf"`
	Age     int           `bson:"age"`
	IsAdmin bool          `bson:"is_admin"`
}

type petDoc struct {
	ID                bson.ObjectID `bson:"_id"`
	Client            bson.ObjectID `bson:"client"`
	Name              string        `bson:"name"`
	Breed             string        `bson:"breed"`
	Age               int           `bson:"age"`
	SizeInCentimeters int           `bson:"size_in_centimeters"`
}

type serviceDoc struct {
	ID                bson.ObjectID `bson:"_id"`
	DurationInMinutes int           `bson:"duration_in_minutes"`
	TypeService       string        `bson:"type_service"`
	Price             float64       `bson:"price"`
}

type scheduleDoc struct {
	ID           bson.ObjectID   `bson:"_id"`
	Client       bson.ObjectID   `bson:"client"`
	Pet          bson.ObjectID   `bson:"pet"`
	Services     []bson.ObjectID `bson:"services"`
	DateSchedule time.Time       `bson:"date_schedule"`
}

type clientTotalDoc struct {
	ClientID       string `bson:"client_id"`
	ClientName     string `bson:"client_name"`
	TotalSchedules int64  `bson:"total_schedules"`
}

// objectID converte o ID textual; vazio gera um novo ObjectID.
func objectID(field, id string) (bson.ObjectID, error) {
	if id == "" {
		return bson.NewObjectID(), nil
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, apperror.NewInvalidIdentifierError(field, id)
	}
	return oid, nil
}

func objectIDs(field string, ids []string) ([]bson.ObjectID, error) {
	out := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperror.NewInvalidIdentifierError(field, id)
		}
		out = append(out, oid)
	}
	return out, nil
}

func toClientDoc(c domain.Client) (clientDoc, error) {
	oid, err := objectID("id", c.ID)
	if err != nil {
		return clientDoc{}, err
	}
	return clientDoc{ID: oid, Name: c.Name, CPF: c.CPF, Age: c.Age, IsAdmin: c.IsAdmin}, nil
}

func (d clientDoc) toDomain() domain.Client {
	return domain.Client{ID: d.ID.Hex(), Name: d.Name, CPF: d.CPF, Age: d.Age, IsAdmin: d.IsAdmin}
}

func toPetDoc(p domain.Pet) (petDoc, error) {
	oid, err := objectID("id", p.ID)
	if err != nil {
		return petDoc{}, err
	}
	owner, err := bson.ObjectIDFromHex(p.ClientID)
	if err != nil {
		return petDoc{}, apperror.NewInvalidIdentifierError("client_id", p.ClientID)
	}
	return petDoc{
		ID:                oid,
		Client:            owner,
		Name:              p.Name,
		Breed:             p.Breed,
		Age:               p.Age,
		SizeInCentimeters: p.SizeInCentimeters,
	}, nil
}

func (d petDoc) toDomain() domain.Pet {
	return domain.Pet{
		ID:                d.ID.Hex(),
		ClientID:          d.Client.Hex(),
		Name:              d.Name,
		Breed:             d.Breed,
		Age:               d.Age,
		SizeInCentimeters: d.SizeInCentimeters,
	}
}

func toServiceDoc(s domain.Service) (serviceDoc, error) {
	oid, err := objectID("id", s.ID)
	if err != nil {
		return serviceDoc{}, err
	}
	return serviceDoc{ID: oid, DurationInMinutes: s.DurationInMinutes, TypeService: s.TypeService, Price: s.Price}, nil
}

func (d serviceDoc) toDomain() domain.Service {
	return domain.Service{ID: d.ID.Hex(), DurationInMinutes: d.DurationInMinutes, TypeService: d.TypeService, Price: d.Price}
}

func toScheduleDoc(s domain.Schedule) (scheduleDoc, error) {
	oid, err := objectID("id", s.ID)
	if err != nil {
		return scheduleDoc{}, err
	}
	client, err := bson.ObjectIDFromHex(s.ClientID)
	if err != nil {
		return scheduleDoc{}, apperror.NewInvalidIdentifierError("client_id", s.ClientID)
	}
	pet, err := bson.ObjectIDFromHex(s.PetID)
	if err != nil {
		return scheduleDoc{}, apperror.NewInvalidIdentifierError("pet_id", s.PetID)
	}
	services, err := objectIDs("service_ids", s.ServiceIDs)
	if err != nil {
		return scheduleDoc{}, err
	}
	return scheduleDoc{ID: oid, Client: client, Pet: pet, Services: services, DateSchedule: s.DateSchedule.UTC()}, nil
}

func (d scheduleDoc) toDomain() domain.Schedule {
	ids := make([]string, 0, len(d.Services))
	for _, oid := range d.Services {
		ids = append(ids, oid.Hex())
	}
	return domain.Schedule{
		ID:           d.ID.Hex(),
		ClientID:     d.Client.Hex(),
		PetID:        d.Pet.Hex(),
		ServiceIDs:   ids,
		DateSchedule: d.DateSchedule.UTC(),
	}
}

// nameContains casa o trecho sem diferenciar maiúsculas; metacaracteres são escapados.
func nameContains(term string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// priceFilter traduz a faixa para ($gt min, $lte max].
func priceFilter(r domain.PriceRange) bson.M {
	cond := bson.M{"$lte": r.Max}
	if r.Min != nil {
		cond["$gt"] = *r.Min
	}
	return bson.M{"price": cond}
}

// clientTotalsPipeline agrupa agendamentos por cliente e junta o nome do cliente.
// Grupos de clientes removidos desaparecem no $unwind.
func clientTotalsPipeline() bson.A {
	return bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$client"},
			{Key: "total_schedules", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: clientCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "client_info"},
		}}},
		bson.D{{Key: "$unwind", Value: "$client_info"}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "client_id", Value: bson.D{{Key: "$toString", Value: "$_id"}}},
			{Key: "client_name", Value: "$client_info.name"},
			{Key: "total_schedules", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total_schedules", Value: -1}}}},
	}
}

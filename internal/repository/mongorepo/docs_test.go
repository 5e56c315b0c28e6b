package mongorepo

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
)

func TestClientDoc_RoundTrip(t *testing.T) {
	c := domain.Client{ID: bson.NewObjectID().Hex(), Name: "Ana", CPF: "123", Age: 31, IsAdmin: true}

	doc, err := toClientDoc(c)
	require.NoError(t, err)
	assert.Equal(t, c, doc.toDomain())
}

func TestToClientDoc_GeneratesID(t *testing.T) {
	doc, err := toClientDoc(domain.Client{Name: "Ana"})
	require.NoError(t, err)
	assert.False(t, doc.ID.IsZero())
}

func TestToPetDoc_RejectsMalformedOwner(t *testing.T) {
	_, err := toPetDoc(domain.Pet{ClientID: "abc", Name: "Rex"})
	assert.IsType(t, &apperror.InvalidIdentifierError{}, err)
}

func TestScheduleDoc_KeepsServiceOrderAndUTC(t *testing.T) {
	s1, s2 := bson.NewObjectID().Hex(), bson.NewObjectID().Hex()
	local := time.FixedZone("BRT", -3*3600)
	s := domain.Schedule{
		ClientID:     bson.NewObjectID().Hex(),
		PetID:        bson.NewObjectID().Hex(),
		ServiceIDs:   []string{s2, s1},
		DateSchedule: time.Date(2024, 12, 5, 10, 0, 0, 0, local),
	}

	doc, err := toScheduleDoc(s)
	require.NoError(t, err)
	back := doc.toDomain()

	assert.Equal(t, []string{s2, s1}, back.ServiceIDs)
	assert.Equal(t, time.UTC, back.DateSchedule.Location())
	assert.True(t, s.DateSchedule.Equal(back.DateSchedule))

	s.ServiceIDs = []string{"invalido"}
	_, err = toScheduleDoc(s)
	assert.IsType(t, &apperror.InvalidIdentifierError{}, err)
}

func TestNameContains_EscapesMetacharacters(t *testing.T) {
	re := nameContains("r.x(")
	assert.Equal(t, "i", re.Options)

	compiled := regexp.MustCompile("(?i)" + re.Pattern)
	assert.True(t, compiled.MatchString("R.X(zinho"))
	assert.False(t, compiled.MatchString("rex("))
}

func TestPriceFilter(t *testing.T) {
	cheap, _ := domain.PriceBandCheap.Range()
	assert.Equal(t, bson.M{"price": bson.M{"$lte": 50.0}}, priceFilter(cheap))

	medium, _ := domain.PriceBandMedium.Range()
	assert.Equal(t, bson.M{"price": bson.M{"$lte": 100.0, "$gt": 50.0}}, priceFilter(medium))
}

func TestClientTotalsPipeline_Stages(t *testing.T) {
	stages := clientTotalsPipeline()
	require.Len(t, stages, 5)

	names := make([]string, 0, len(stages))
	for _, st := range stages {
		names = append(names, st.(bson.D)[0].Key)
	}
	assert.Equal(t, []string{"$group", "$lookup", "$unwind", "$project", "$sort"}, names)
}

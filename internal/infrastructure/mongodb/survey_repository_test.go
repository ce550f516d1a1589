package mongodb

import (
	"testing"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestTimestampFilter(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, brt)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, brt)

	assert.Equal(t, bson.M{}, TimestampFilter(repositories.DateFilter{}))
	assert.Equal(t, bson.M{}, TimestampFilter(repositories.DateFilter{Start: &start}))

	filter := TimestampFilter(repositories.DateFilter{Start: &start, End: &end})
	assert.Equal(t, bson.M{"timestamp": bson.M{
		"$gte": start.UTC(),
		"$lte": end.UTC(),
	}}, filter)
}

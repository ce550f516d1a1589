package supabase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterValue(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)

	assert.Equal(t, "2024-03-11T02:59:59.999999999Z", FilterValue(time.Date(2024, 3, 10, 23, 59, 59, 999999999, brt)))
	assert.Equal(t, "2024-03-10T03:00:00Z", FilterValue(time.Date(2024, 3, 10, 0, 0, 0, 0, brt)))
}

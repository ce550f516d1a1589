package blacklist

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRedisStoreWithoutClientIsNoop(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	store := NewRedisStore(nil)
	ctx := context.Background()

	assert.NoError(t, store.Add(ctx, "token", time.Hour))
	assert.Contains(t, buf.String(), "logout não revoga o token")

	revoked, err := store.Contains(ctx, "token")
	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "blacklist:abc", key("abc"))
}

package metadata

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Contract(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v)

	buf := []byte("abc")
	require.NoError(t, r.Set(ctx, "token", buf))
	buf[0] = 'x'

	v, err = r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v, "stored value must not alias caller slice")

	require.NoError(t, r.SetMany(ctx, map[string][]byte{"user": []byte("{}"), "marker": []byte("{}")}))
	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 3)

	m, err = r.GetMany(ctx, "token", "user", "absent")
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"token": []byte("abc"), "user": []byte("{}")}, m)

	require.NoError(t, r.Delete(ctx, "user", "marker", "never-set"))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"token": []byte("abc")}, m)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.SetMany(ctx, map[string][]byte{"token": []byte("t"), "user": []byte("u")})
			_, _ = r.Get(ctx, "token")
			_ = r.Delete(ctx, "token", "user")
		}()
	}
	wg.Wait()
}

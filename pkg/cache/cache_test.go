package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/jexl/pkg/cache"
	"github.com/conneroisu/jexl/pkg/compiled"
	"github.com/conneroisu/jexl/pkg/grammar"
)

func compileFixture(t *testing.T, source string) *compiled.Expression {
	t.Helper()
	expr, err := compiled.Compile(source, grammar.NewDefaultGrammar())
	require.NoError(t, err)
	return expr
}

func TestCacheNew(t *testing.T) {
	c := cache.New(10)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 10, c.Capacity())
}

func TestCacheDefaultCapacity(t *testing.T) {
	c := cache.New(0)
	assert.Equal(t, 256, c.Capacity())
}

func TestCacheSetGet(t *testing.T) {
	c := cache.New(4)
	expr := compileFixture(t, "1 + 1")
	c.Set("1 + 1", expr)
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get("1 + 1")
	require.True(t, ok)
	assert.Same(t, expr, got)
}

func TestCacheMiss(t *testing.T) {
	c := cache.New(4)
	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.New(2)
	c.Set("a", compileFixture(t, `"a"`))
	c.Set("b", compileFixture(t, `"b"`))
	_, _ = c.Get("a") // promote a to MRU; b becomes LRU
	c.Set("c", compileFixture(t, `"c"`))

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestCacheGetOrCompile(t *testing.T) {
	c := cache.New(4)
	calls := 0
	compile := func() (*compiled.Expression, error) {
		calls++
		return compileFixture(t, "2 * 2"), nil
	}

	expr1, err := c.GetOrCompile("2 * 2", compile)
	require.NoError(t, err)
	expr2, err := c.GetOrCompile("2 * 2", compile)
	require.NoError(t, err)

	assert.Same(t, expr1, expr2)
	assert.Equal(t, 1, calls)
}

func TestCacheInvalidateAndClear(t *testing.T) {
	c := cache.New(4)
	c.Set("x", compileFixture(t, "1"))
	c.Invalidate("x")
	_, ok := c.Get("x")
	assert.False(t, ok)

	c.Set("y", compileFixture(t, "2"))
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

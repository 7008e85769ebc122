package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromNativeToNativeRoundTrip(t *testing.T) {
	in := map[string]any{
		"name": "ada",
		"age":  float64(36),
		"tags": []any{"a", "b"},
	}
	v := FromNative(in)
	out := ToNative(v)
	assert.Equal(t, in, out)
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("z", Number(1))
	o.Set("a", Number(2))
	o.Set("z", Number(3)) // overwrite keeps original position
	assert.Equal(t, []string{"z", "a"}, o.Keys())
	v, _ := o.Get("z")
	assert.Equal(t, Number(3), v)
}

func TestArrayGetOutOfRangeIsUndefined(t *testing.T) {
	a := NewArray(Number(1), Number(2))
	assert.Equal(t, Undefined{}, a.Get(5))
	assert.Equal(t, Undefined{}, a.Get(-1))
}

func TestContextGetSetDefaultsToUndefined(t *testing.T) {
	c := NewContext(nil)
	assert.Equal(t, Undefined{}, c.Get("missing"))
	c.Set("x", Number(1))
	assert.Equal(t, Number(1), c.Get("x"))
}

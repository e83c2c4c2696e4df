package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_ZeroIsUnset(t *testing.T) {
	var v Value[int]
	assert.False(t, v.IsSet())

	got, ok := v.Get()
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestValue_SetZeroValueIsStillSet(t *testing.T) {
	var v Value[string]
	v.Set("")

	assert.True(t, v.IsSet())
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, "", got)
}

func TestValue_SetOverwrites(t *testing.T) {
	var v Value[int]
	v.Set(1)
	v.Set(2)

	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestOf(t *testing.T) {
	v := Of("hello")
	assert.True(t, v.IsSet())
	assert.Equal(t, "hello", v.Or("fallback"))
}

func TestValue_Or(t *testing.T) {
	var v Value[int64]
	assert.EqualValues(t, 42, v.Or(42))

	v.Set(0)
	assert.EqualValues(t, 0, v.Or(42))
}

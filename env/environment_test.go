package env

import (
	"testing"

	"github.com/akashmaji946/minipylang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSetDelete(t *testing.T) {
	e := New()
	_, ok := e.Get("x")
	assert.False(t, ok)

	e.Set("x", &value.Integer{Val: 1})
	v, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*value.Integer).Val)

	assert.True(t, e.Delete("x"))
	assert.False(t, e.Delete("x"))
}

func TestAliasingThroughSharedList(t *testing.T) {
	e := New()
	a := value.NewList([]value.Value{&value.Integer{Val: 1}})
	e.Set("a", a)
	e.Set("b", a) // b = a, same backing list

	a.Elements = append(a.Elements, &value.Integer{Val: 2})

	b, _ := e.Get("b")
	assert.Equal(t, 2, len(b.(*value.List).Elements))
}

func TestSnapshotIsACopy(t *testing.T) {
	e := New()
	e.Set("x", &value.Integer{Val: 1})
	snap := e.Snapshot()
	e.Set("y", &value.Integer{Val: 2})
	assert.Len(t, snap, 1)
	assert.Equal(t, 2, e.Len())
}

func TestReset(t *testing.T) {
	e := New()
	e.Set("x", &value.Integer{Val: 1})
	e.Reset()
	assert.Equal(t, 0, e.Len())
}

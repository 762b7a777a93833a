package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineThenLookup(t *testing.T) {
	env := NewRoot()
	env.Define("x", NewNumber(42))

	v, err := env.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v.AsNumber())
}

func TestLookupMissingIsNameError(t *testing.T) {
	env := NewRoot()
	_, err := env.Lookup("nope")
	assert.Error(t, err)
}

func TestChildSeesParentBindings(t *testing.T) {
	parent := NewRoot()
	parent.Define("x", NewNumber(1))
	child := parent.Child()

	v, err := child.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.AsNumber())
}

func TestDefineInChildDoesNotLeakToParent(t *testing.T) {
	parent := NewRoot()
	child := parent.Child()
	child.Define("y", NewNumber(2))

	_, err := parent.Lookup("y")
	assert.Error(t, err)
}

func TestDefineOverwritesSameFrame(t *testing.T) {
	env := NewRoot()
	env.Define("x", NewNumber(1))
	env.Define("x", NewNumber(2))

	v, err := env.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.AsNumber())
}

func TestChildShadowsParentWithoutMutatingIt(t *testing.T) {
	parent := NewRoot()
	parent.Define("x", NewNumber(1))
	child := parent.Child()
	child.Define("x", NewNumber(99))

	v, err := parent.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.AsNumber())

	v, err = child.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 99.0, v.AsNumber())
}

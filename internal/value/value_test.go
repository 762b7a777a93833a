package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintAtoms(t *testing.T) {
	assert.Equal(t, "()", NewNil().String())
	assert.Equal(t, "#t", NewBoolean(true).String())
	assert.Equal(t, "#f", NewBoolean(false).String())
	assert.Equal(t, "3", NewNumber(3.0).String())
	assert.Equal(t, "3.5", NewNumber(3.5).String())
	assert.Equal(t, `"hi\n"`, NewString("hi\n").String())
	assert.Equal(t, "foo", NewSymbol("foo").String())
}

func TestPrintProperAndImproperLists(t *testing.T) {
	proper := SliceToList([]*Value{NewNumber(1), NewNumber(2), NewNumber(3)})
	assert.Equal(t, "(1 2 3)", proper.String())

	improper := Cons(NewNumber(1), Cons(NewNumber(2), NewNumber(3)))
	assert.Equal(t, "(1 2 . 3)", improper.String())
}

func TestIsListAndIsAtom(t *testing.T) {
	assert.True(t, NewNil().IsList())
	assert.True(t, SliceToList([]*Value{NewNumber(1)}).IsList())
	assert.False(t, Cons(NewNumber(1), NewNumber(2)).IsList())

	assert.True(t, NewNil().IsAtom())
	assert.True(t, NewNumber(1).IsAtom())
	assert.False(t, Cons(NewNumber(1), NewNil()).IsAtom())
}

func TestListRoundTrip(t *testing.T) {
	elems := []*Value{NewNumber(1), NewSymbol("a"), NewString("s")}
	list := SliceToList(elems)
	back, ok := ListToSlice(list)
	require.True(t, ok)
	require.Len(t, back, 3)
	assert.True(t, Equal(elems[0], back[0]))
	assert.True(t, Equal(elems[1], back[1]))
	assert.True(t, Equal(elems[2], back[2]))
}

func TestEqualDeepRecursion(t *testing.T) {
	a := Cons(NewNumber(1), Cons(NewNumber(2), NewNil()))
	b := Cons(NewNumber(1), Cons(NewNumber(2), NewNil()))
	assert.True(t, Equal(a, b))
	assert.False(t, Eq(a, b)) // distinct pairs are not eq?
}

func TestEqIdentitySymbolsAndNumbers(t *testing.T) {
	assert.True(t, Eq(NewSymbol("x"), NewSymbol("x")))
	assert.True(t, Eq(NewNumber(1), NewNumber(1)))

	p := Cons(NewNumber(1), NewNil())
	assert.True(t, Eq(p, p))
}

func TestConsReuseCar(t *testing.T) {
	p := Cons(NewNumber(1), NewNil())
	rebuilt := Cons(p.Car(), p.Cdr())
	assert.True(t, Equal(rebuilt, p))
}

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulti_KeepsOrder(t *testing.T) {
	t.Parallel()

	e1 := New("first")
	e2 := New("second")
	e3 := New("third")

	m := Multi(e1, e2, e3)
	require.Equal(t, KindMulti, m.Kind())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "first; second; third", m.Description())

	items := m.Errors()
	require.Len(t, items, 3)
	assert.True(t, items[0].Equal(e1))
	assert.True(t, items[1].Equal(e2))
	assert.True(t, items[2].Equal(e3))

	assert.True(t, m.Top().Equal(e1))
	assert.True(t, m.Inner().Equal(e2))
}

func TestMulti_SingleComponent(t *testing.T) {
	t.Parallel()

	m := Multi(Timeout())
	assert.Equal(t, 1, m.Len())
	assert.True(t, m.Top().Equal(Timeout()))
	assert.Equal(t, KindEmpty, m.Inner().Kind())
}

func TestMulti_EmptyCollapsesToEmptyError(t *testing.T) {
	t.Parallel()

	m := Multi(Error{}, Error{})
	require.Equal(t, 1, m.Len())
	assert.Equal(t, KindEmpty, m.Top().Kind())
}

func TestMulti_ErrorsIsACopy(t *testing.T) {
	t.Parallel()

	m := Multi(New("a"), New("b"))
	items := m.Errors()
	items[0] = New("mutated")

	assert.Equal(t, "a", m.Top().Description())

	data, ok := DataOf[[]Error](m)
	require.True(t, ok)
	data[1] = New("mutated")
	assert.Equal(t, "b", m.Inner().Description())
}

func TestMultiWith_PrependsToMulti(t *testing.T) {
	t.Parallel()

	inner := Multi(New("b"), New("c"))
	m := MultiWith(New("a"), inner)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "a; b; c", m.Description())

	pair := MultiWith(New("top"), Fail())
	assert.Equal(t, 2, pair.Len())
	assert.True(t, pair.Inner().Equal(Fail()))
}

func TestMulti_UnwrapForErrorsIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk")
	m := Multi(Fail(), Exception(cause))

	assert.ErrorIs(t, m, Fail())
	assert.ErrorIs(t, m, cause)
	assert.NotErrorIs(t, m, Null())
}

func TestNonMultiViews(t *testing.T) {
	t.Parallel()

	e := Null()
	assert.Equal(t, 1, e.Len())
	assert.True(t, e.Top().Equal(e))
	assert.Equal(t, KindEmpty, e.Inner().Kind())
	assert.Len(t, e.Errors(), 1)

	var zero Error
	assert.Equal(t, 0, zero.Len())
	assert.Nil(t, zero.Errors())
}

package iterators_test

import (
	"errors"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"github.com/flgo/flgo/iterators"
)

func TestNewSingleValue(t *testing.T) {
	t.Run(`yields its value exactly once`, func(t *testing.T) {
		expected := randomdata.SillyName()
		i := iterators.NewSingleValue(expected)

		require.True(t, i.Next())
		require.Equal(t, expected, i.Value())
		require.False(t, i.Next())
		require.Nil(t, i.Err())
	})

	t.Run(`yields nothing once closed`, func(t *testing.T) {
		i := iterators.NewSingleValue(42)
		require.Nil(t, i.Close())
		require.False(t, i.Next())
	})
}

func TestEmpty(t *testing.T) {
	i := iterators.Empty[string]()
	require.False(t, i.Next())
	require.Nil(t, i.Err())
	require.Nil(t, i.Close())
}

func TestNewError(t *testing.T) {
	boom := errors.New(`boom`)
	i := iterators.NewError[int](boom)
	require.False(t, i.Next())
	require.Equal(t, boom, i.Err())
	require.Nil(t, i.Close())
}

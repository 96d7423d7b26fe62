package boltseq_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"

	"github.com/flgo/flgo/boltseq"
	"github.com/flgo/flgo/it"
	"github.com/flgo/flgo/iterators"
)

func newStore(t *testing.T) *boltseq.Store {
	t.Helper()

	dbPath := filepath.Join(os.TempDir(), uuid.NewV4().String())
	store, err := boltseq.Open(dbPath)
	require.Nil(t, err)

	t.Cleanup(func() {
		require.Nil(t, store.Close())
		_ = os.Remove(dbPath)
	})
	return store
}

func TestStore(t *testing.T) {
	t.Run(`appended values come back in append order`, func(t *testing.T) {
		store := newStore(t)
		require.Nil(t, store.Append(`numbers`, 1, 2, 3))
		require.Nil(t, store.Append(`numbers`, 4))

		vs, err := iterators.Collect[interface{}](store.Values(`numbers`))
		require.Nil(t, err)
		require.Equal(t, []interface{}{1, 2, 3, 4}, vs)
	})

	t.Run(`logs are isolated by name`, func(t *testing.T) {
		store := newStore(t)
		name := randomdata.SillyName()
		require.Nil(t, store.Append(name, `kept`))
		require.Nil(t, store.Append(`other`, `elsewhere`))

		vs, err := iterators.Collect[interface{}](store.Values(name))
		require.Nil(t, err)
		require.Equal(t, []interface{}{`kept`}, vs)
	})

	t.Run(`a missing log yields no values`, func(t *testing.T) {
		store := newStore(t)
		vs, err := iterators.Collect[interface{}](store.Values(`nothing-here`))
		require.Nil(t, err)
		require.Len(t, vs, 0)
	})

	t.Run(`mixed value kinds survive the round trip`, func(t *testing.T) {
		store := newStore(t)
		require.Nil(t, store.Append(`mixed`, 1, 2.5, `three`, true))

		vs, err := iterators.Collect[interface{}](store.Values(`mixed`))
		require.Nil(t, err)
		require.Equal(t, []interface{}{1, 2.5, `three`, true}, vs)
	})
}

func TestStore_asPipelineSource(t *testing.T) {
	t.Run(`a stored log feeds a pipeline`, func(t *testing.T) {
		store := newStore(t)
		require.Nil(t, store.Append(`numbers`, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10))

		res, err := it.New(store.Values(`numbers`)).
			Map(`|v| v * v`).
			Filter(`|v| v % 3 == 0`).
			Skip(1).
			Collect()
		require.Nil(t, err)
		require.Equal(t, []interface{}{36, 81}, res.Unwrap())
	})

	t.Run(`take stops reading the log early`, func(t *testing.T) {
		store := newStore(t)
		require.Nil(t, store.Append(`numbers`, 1, 2, 3, 4, 5))

		res, err := it.New(store.Values(`numbers`)).Take(2).Collect()
		require.Nil(t, err)
		require.Equal(t, []interface{}{1, 2}, res.Unwrap())
	})
}

package store

import (
	"testing"

	"github.com/iov-one/treasury/treasurytest/assert"
)

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	db := MemStore()
	assert.Nil(t, db.Set([]byte("stage"), []byte{1}))

	cases := map[string]struct {
		write   bool
		wantVal []byte
		wantDel bool
	}{
		"written cache is visible in the parent": {
			write:   true,
			wantVal: []byte{2},
		},
		"discarded cache leaves the parent untouched": {
			write:   false,
			wantVal: []byte{1},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent := db.CacheWrap()
			cache := parent.CacheWrap()
			assert.Nil(t, cache.Set([]byte("stage"), []byte{2}))
			assert.Nil(t, cache.Set([]byte("claim"), []byte{3}))

			// Changes are visible inside of the cache only.
			got, err := cache.Get([]byte("stage"))
			assert.Nil(t, err)
			assert.Equal(t, []byte{2}, got)
			got, err = parent.Get([]byte("stage"))
			assert.Nil(t, err)
			assert.Equal(t, []byte{1}, got)

			if tc.write {
				assert.Nil(t, cache.Write())
			} else {
				cache.Discard()
			}

			got, err = parent.Get([]byte("stage"))
			assert.Nil(t, err)
			assert.Equal(t, tc.wantVal, got)

			has, err := parent.Has([]byte("claim"))
			assert.Nil(t, err)
			assert.Equal(t, tc.write, has)
		})
	}
}

func TestCacheWrapDelete(t *testing.T) {
	db := MemStore()
	assert.Nil(t, db.Set([]byte("a"), []byte("x")))

	cache := db.CacheWrap()
	assert.Nil(t, cache.Delete([]byte("a")))
	has, err := cache.Has([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
	val, err := db.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("x"), val)

	assert.Nil(t, cache.Write())
	val, err = db.Get([]byte("a"))
	assert.Nil(t, err)
	if val != nil {
		t.Fatalf("want deleted, got %q", val)
	}
}

func TestLogableStore(t *testing.T) {
	db, ops := LogableStore()
	assert.Nil(t, db.Set([]byte("a"), []byte("1")))
	assert.Nil(t, db.Delete([]byte("b")))

	got := ops.ShowOps()
	assert.Equal(t, 2, len(got))
	assert.Equal(t, []byte("a"), got[0].Key())
	assert.Equal(t, false, got[0].IsDelete())
	assert.Equal(t, true, got[1].IsDelete())
}

func TestNilKeyPanics(t *testing.T) {
	db := MemStore()
	assert.Panics(t, func() { _ = db.Set(nil, []byte("x")) })
}

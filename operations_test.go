package datastructs

import (
	"github.com/gostonefire/datastructs/crt"
	"github.com/gostonefire/datastructs/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

type TestCaseOperations struct {
	crtName string
	crt     int
	hFunc   hashfunc.HashAlgorithm
}

// keyedTests - Techniques that keep every key, i.e. all but crt.Collision
func keyedTests() []TestCaseOperations {
	return []TestCaseOperations{
		{crtName: "LinearProbing", crt: crt.LinearProbing},
		{crtName: "SeparateChaining", crt: crt.SeparateChaining},
		{crtName: "LinearProbingCustomHash", crt: crt.LinearProbing, hFunc: NewCrc32HashAlgorithm(5)},
		{crtName: "SeparateChainingCustomHash", crt: crt.SeparateChaining, hFunc: NewCrc32HashAlgorithm(5)},
	}
}

func allTests() []TestCaseOperations {
	return append([]TestCaseOperations{{crtName: "Collision", crt: crt.Collision}}, keyedTests()...)
}

func newTestHashMap(t *testing.T, test TestCaseOperations) *HashMap[IntKey, int] {
	hm, _, err := NewHashMap[IntKey, int](Conf{CollisionResolutionTechnique: test.crt, HashAlgorithm: test.hFunc})
	require.NoError(t, err, "create new hash map")
	return hm
}

// outOfRangeHashAlgorithm - Hashes every key to a bucket outside the table
type outOfRangeHashAlgorithm struct {
	tableSize int64
}

func (O *outOfRangeHashAlgorithm) SetTableSize(tableSize int64) { O.tableSize = tableSize }

func (O *outOfRangeHashAlgorithm) HashFunc1(key string) int64 { return O.tableSize }

func (O *outOfRangeHashAlgorithm) GetTableSize() int64 { return O.tableSize }

func (O *outOfRangeHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 { return hf1Value }

func TestHashMap_Put(t *testing.T) {
	for _, test := range allTests() {
		t.Run(test.crtName, func(t *testing.T) {
			t.Run("puts and replaces a value", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, test)

				// Execute
				_, found, err := hm.Put(1, 1)
				assert.NoError(t, err, "puts first value")
				assert.False(t, found, "no previous value")
				value, err := hm.Get(1)
				assert.NoError(t, err, "gets value")
				assert.Equal(t, 1, value, "first value")

				previous, found, err := hm.Put(1, 2)

				// Check
				assert.NoError(t, err, "puts second value")
				assert.True(t, found, "had previous value")
				assert.Equal(t, 1, previous, "previous value")
				value, err = hm.Get(1)
				assert.NoError(t, err, "gets value")
				assert.Equal(t, 2, value, "second value")
			})

			t.Run("returns lookup errors other than NoRecordFound", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, TestCaseOperations{crt: test.crt, hFunc: &outOfRangeHashAlgorithm{}})

				// Execute
				_, found, err := hm.Put(1, 1)

				// Check
				assert.Error(t, err, "put fails")
				assert.NotErrorIs(t, err, crt.NoRecordFound{}, "not a missing record")
				assert.Contains(t, err.Error(), "error while getting key 1", "failed on lookup")
				assert.False(t, found, "no previous value")
				assert.Equal(t, 0, hm.Len(), "nothing stored")
			})
		})
	}
}

func TestHashMap_Set(t *testing.T) {
	for _, test := range allTests() {
		t.Run(test.crtName, func(t *testing.T) {
			t.Run("grows from 5 to 10 to 20", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, TestCaseOperations{crt: test.crt})
				for i := 0; i < 3; i++ {
					_ = hm.Set(IntKey(i), i)
				}
				assert.Equal(t, int64(5), hm.Size(), "no growth below load factor")

				// Execute
				_ = hm.Set(3, 3)
				assert.Equal(t, int64(10), hm.Size(), "doubled once")
				for i := 3; i < 10; i++ {
					_ = hm.Set(IntKey(i), i)
				}

				// Check
				assert.Equal(t, int64(20), hm.Size(), "doubled twice")
				for i := 0; i < 10; i++ {
					value, err := hm.Get(IntKey(i))
					assert.NoErrorf(t, err, "gets key %d", i)
					assert.Equalf(t, i, value, "key %d has latest value", i)
				}
				assert.Equal(t, 10, hm.Len(), "ten entries")
			})
		})
	}

	for _, test := range keyedTests() {
		t.Run(test.crtName, func(t *testing.T) {
			t.Run("keeps latest value of random keys", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, test)
				want := make(map[IntKey]int)

				// Execute
				for i := 0; i < 2000; i++ {
					key := IntKey(rand.Intn(1000))
					want[key] = i
					err := hm.Set(key, i)
					require.NoErrorf(t, err, "sets record #%d", i)
				}

				// Check
				assert.Equal(t, len(want), hm.Len(), "number of entries")
				for key, value := range want {
					got, err := hm.Get(key)
					assert.NoErrorf(t, err, "gets key %d", key)
					assert.Equalf(t, value, got, "key %d has latest value", key)
				}
			})
		})
	}
}

func TestHashMap_Get(t *testing.T) {
	for _, test := range allTests() {
		t.Run(test.crtName, func(t *testing.T) {
			t.Run("throws correct error when key is not found", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, test)

				// Execute
				_, err := hm.Get(1)

				// Check
				assert.ErrorIs(t, err, crt.NoRecordFound{}, "get correct error")
				assert.False(t, hm.Contains(1), "does not contain key")
				assert.Equal(t, -1, hm.GetOrDefault(1, -1), "default value")
			})
		})
	}

	t.Run("collision shadows aliasing keys", func(t *testing.T) {
		// Prepare, "0" and "5" both hash to bucket 3 of 5
		hm := newTestHashMap(t, TestCaseOperations{crt: crt.Collision})
		_ = hm.Set(0, 0)

		// Execute
		_ = hm.Set(5, 5)

		// Check
		value, err := hm.Get(0)
		assert.NoError(t, err, "bucket is occupied")
		assert.Equal(t, 5, value, "value of aliasing key")
		assert.Equal(t, 1, hm.Len(), "one entry")
	})
}

func TestHashMap_Pop(t *testing.T) {
	for _, test := range allTests() {
		t.Run(test.crtName, func(t *testing.T) {
			t.Run("pops existing entry", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, test)
				_ = hm.Set(1, 10)
				_ = hm.Set(2, 20)

				// Execute
				entry, err := hm.Pop(1)

				// Check
				assert.NoError(t, err, "pops entry")
				assert.Equal(t, Entry[IntKey, int]{Key: 1, Value: 10}, entry, "popped entry")
				_, err = hm.Get(1)
				assert.ErrorIs(t, err, crt.NoRecordFound{}, "popped key is gone")
				value, err := hm.Get(2)
				assert.NoError(t, err, "other key still present")
				assert.Equal(t, 20, value, "other value")
			})

			t.Run("throws correct error when key is not found", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, test)

				// Execute
				_, err := hm.Pop(1)

				// Check
				assert.ErrorIs(t, err, crt.NoRecordFound{}, "get correct error")
			})

			t.Run("put and pop cycles do not grow table", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, TestCaseOperations{crt: test.crt})

				// Execute
				for i := 0; i < 100; i++ {
					_ = hm.Set(1, i)
					_, err := hm.Pop(1)
					assert.NoErrorf(t, err, "pops in cycle #%d", i)
				}

				// Check
				assert.Equal(t, int64(5), hm.Size(), "table size unchanged")
				assert.True(t, hm.IsEmpty(), "empty after cycles")
			})
		})
	}

	t.Run("separate chaining leaves other entries of the chain", func(t *testing.T) {
		// Prepare, "1", "6" and "21" all hash to bucket 4 of 5
		hm := newTestHashMap(t, TestCaseOperations{crt: crt.SeparateChaining})
		_ = hm.Set(1, 1)
		_ = hm.Set(6, 6)

		// Execute
		_, errAbsent := hm.Pop(21)
		entry, err := hm.Pop(1)

		// Check
		assert.ErrorIs(t, errAbsent, crt.NoRecordFound{}, "absent key in same chain not found")
		assert.NoError(t, err, "pops entry")
		assert.Equal(t, IntKey(1), entry.Key, "popped key")
		assert.Equal(t, "[[], [], [], [], [(6, 6)]]", hm.String(), "other entry left")
	})

	t.Run("collision clears bucket whatever key it holds", func(t *testing.T) {
		// Prepare
		hm := newTestHashMap(t, TestCaseOperations{crt: crt.Collision})
		_ = hm.Set(0, 0)

		// Execute
		entry, err := hm.Pop(5)

		// Check
		assert.NoError(t, err, "pops entry")
		assert.Equal(t, IntKey(0), entry.Key, "entry of aliasing key")
		assert.True(t, hm.IsEmpty(), "empty")
	})
}

func TestHashMap_Items(t *testing.T) {
	t.Run("lists entries in bucket order", func(t *testing.T) {
		// Prepare, buckets of 5 are "0" -> 3, "1" -> 4, "2" -> 0
		hm := newTestHashMap(t, TestCaseOperations{crt: crt.LinearProbing})
		_ = hm.Set(0, 10)
		_ = hm.Set(1, 11)
		_ = hm.Set(2, 12)

		// Execute
		items := hm.Items()

		// Check
		assert.Equal(t, []Entry[IntKey, int]{{Key: 2, Value: 12}, {Key: 0, Value: 10}, {Key: 1, Value: 11}}, items, "entries")
		assert.Equal(t, []IntKey{2, 0, 1}, hm.Keys(), "keys")
		assert.Equal(t, []int{12, 10, 11}, hm.Values(), "values")
		assert.Equal(t, "[(2, 12), nil, nil, (0, 10), (1, 11)]", hm.String(), "text")
	})
}

func TestHashMap_Stat(t *testing.T) {
	for _, test := range allTests() {
		t.Run(test.crtName, func(t *testing.T) {
			t.Run("gets stat with distribution", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, TestCaseOperations{crt: test.crt})
				_ = hm.Set(1, 1)
				_ = hm.Set(2, 2)

				// Execute
				stat, err := hm.Stat(true)

				// Check
				assert.NoError(t, err, "gets stat")
				assert.Equal(t, int64(2), stat.Records, "records")
				assert.Equal(t, int64(5), stat.NumberOfBuckets, "buckets")
				assert.Equal(t, int64(2), stat.Filled, "filled")
				assert.InDelta(t, 0.4, stat.LoadFactor, 1e-9, "load factor")
				assert.Equal(t, []int64{1, 0, 0, 0, 1}, stat.BucketDistribution, "distribution")
			})

			t.Run("keeps fill counter in range through pop and refill", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, TestCaseOperations{crt: test.crt})
				keys := []IntKey{1, 6, 0, 2, 3}
				for _, k := range keys {
					_ = hm.Set(k, int(k))
				}
				for _, k := range keys {
					_, _ = hm.Pop(k)
				}
				stat, err := hm.Stat(false)
				assert.NoError(t, err, "gets stat after pops")
				assert.Equal(t, int64(0), stat.Filled, "nothing filled after pops")
				assert.Equal(t, 0.0, stat.LoadFactor, "zero load factor after pops")

				// Execute
				for i := 0; i < 8; i++ {
					_ = hm.Set(IntKey(i), i)
				}
				stat, err = hm.Stat(false)

				// Check
				assert.NoError(t, err, "gets stat after refill")
				assert.Equal(t, int64(20), stat.NumberOfBuckets, "grown on refill")
				assert.Equal(t, int64(8), stat.Records, "records")
				assert.Equal(t, int64(8), stat.Filled, "filled")
				assert.Less(t, stat.LoadFactor, 0.75, "below load factor")
			})

			t.Run("gets stat without distribution", func(t *testing.T) {
				// Prepare
				hm := newTestHashMap(t, test)

				// Execute
				stat, err := hm.Stat(false)

				// Check
				assert.NoError(t, err, "gets stat")
				assert.Nil(t, stat.BucketDistribution, "no distribution")
			})
		})
	}
}

func TestHashMap_String(t *testing.T) {
	t.Run("shows empty buckets", func(t *testing.T) {
		for _, test := range []struct {
			crt      int
			expected string
		}{
			{crt: crt.Collision, expected: "[nil, nil]"},
			{crt: crt.LinearProbing, expected: "[nil, nil]"},
			{crt: crt.SeparateChaining, expected: "[[], []]"},
		} {
			// Prepare
			hm, _, err := NewHashMap[IntKey, int](Conf{CollisionResolutionTechnique: test.crt, InitialSize: 2})
			require.NoError(t, err, "create new hash map")

			// Execute
			s := hm.String()

			// Check
			assert.Equalf(t, test.expected, s, "text for %s", crt.Name(test.crt))
			assert.True(t, hm.IsEmpty(), "empty")
		}
	})
}

func TestHashMap_aliasingKeys(t *testing.T) {
	for _, test := range allTests() {
		t.Run(test.crtName, func(t *testing.T) {
			t.Run("latest aliasing key is always found", func(t *testing.T) {
				// Prepare, "0" and "5" both hash to bucket 3 of 5
				hm := newTestHashMap(t, TestCaseOperations{crt: test.crt})

				// Execute & Check
				_ = hm.Set(0, 0)
				assert.Equal(t, 0, hm.GetOrDefault(0, -1), "key 0")
				assert.False(t, hm.IsEmpty(), "not empty")
				_ = hm.Set(1, 1)
				assert.Equal(t, 1, hm.GetOrDefault(1, -1), "key 1")
				_ = hm.Set(5, 5)
				assert.Equal(t, 5, hm.GetOrDefault(5, -1), "key 5")
				assert.True(t, hm.Contains(5), "contains key 5")
			})
		})
	}
}

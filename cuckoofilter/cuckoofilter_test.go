package cuckoofilter_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fukua95/cuckoo/cuckoofilter"
	"github.com/fukua95/cuckoo/oracle"
)

func newFilter(t *testing.T, maxTableSize uint32, bucketSize, fpBits uint8) *cuckoofilter.CuckooFilter {
	t.Helper()
	cf, err := cuckoofilter.New(maxTableSize, bucketSize, fpBits, oracle.Default())
	require.NoError(t, err)
	return cf
}

func TestNewRejectsUnsupportedProfile(t *testing.T) {
	_, err := cuckoofilter.New(64, 3, 8, nil)
	assert.ErrorIs(t, err, cuckoofilter.ErrUnsupportedProfile)
}

func TestNewRoundsTableSizeDownToPowerOfTwo(t *testing.T) {
	cf := newFilter(t, 100, 4, 16)
	assert.Equal(t, uint32(64), cf.Size())
}

func TestNewClampsZeroCapacityToOneBucket(t *testing.T) {
	cf := newFilter(t, 0, 4, 16)
	assert.Equal(t, uint32(1), cf.Size())
}

// S1: small integer filter, B=4, W=16, N=64.
func TestBasicInsertAndContains(t *testing.T) {
	cf := newFilter(t, 64, 4, 16)

	var inserted [][]byte
	for i := 0; i < 64; i++ {
		key := []byte(strconv.Itoa(i))
		if cf.Insert(key) == cuckoofilter.Inserted {
			inserted = append(inserted, key)
		}
	}
	assert.Greater(t, len(inserted), 0)

	for _, key := range inserted {
		assert.Truef(t, cf.Contains(key), "inserted key %s must be contained", key)
	}

	falsePositives := 0
	for i := 64; i < 128; i++ {
		key := []byte(strconv.Itoa(i))
		if cf.Contains(key) {
			falsePositives++
		}
	}
	// Loose bound well above the expected ~2B/2^16 rate; guards against
	// a badly broken partner-index derivation rather than chasing the
	// exact theoretical rate.
	assert.LessOrEqual(t, falsePositives, 5)
}

// S2: delete round-trip.
func TestDeleteRoundTrip(t *testing.T) {
	cf := newFilter(t, 64, 4, 16)
	for i := 0; i < 64; i++ {
		cf.Insert([]byte(strconv.Itoa(i)))
	}

	key := []byte(strconv.Itoa(2))
	require.True(t, cf.Contains(key))
	assert.True(t, cf.Delete(key))
	assert.False(t, cf.Delete(key)) // second delete of the same element is a no-op
}

// S3: victim stash with a deliberately tiny table.
func TestVictimStashAndDrain(t *testing.T) {
	cf := newFilter(t, 2, 4, 8) // N=2, B=4, capacity=8 slots before victim

	var inserted [][]byte
	var refusedKey []byte
	for i := 0; i < 64; i++ {
		key := []byte(strconv.Itoa(i))
		if cf.Insert(key) == cuckoofilter.Inserted {
			inserted = append(inserted, key)
			continue
		}
		refusedKey = key
		break
	}
	require.NotNil(t, refusedKey, "expected the filter to fill up and refuse an insert")

	_, _, victimOccupied := cf.Victim()
	assert.True(t, victimOccupied)

	// Further inserts are refused while the victim is occupied.
	assert.Equal(t, cuckoofilter.Refused, cf.Insert([]byte("another-key")))

	// Deleting an already-inserted element succeeds; the slot it frees
	// drains the victim only if it lies in one of the victim's buckets.
	require.NotEmpty(t, inserted)
	assert.True(t, cf.Delete(inserted[0]))
}

// S4: partner-index involution.
func TestPartnerIndexInvolution(t *testing.T) {
	cf := newFilter(t, 256, 4, 12)
	for i := uint32(0); i < cf.Size(); i++ {
		for fp := uint32(1); fp < 16; fp++ {
			i2 := partnerIndexForTest(cf, i, fp)
			back := partnerIndexForTest(cf, i2, fp)
			assert.Equal(t, i, back)
		}
	}
}

// partnerIndexForTest re-derives the partner index with the same formula
// Insert and Contains use, (i XOR fp*0x5bd1e995) masked to N-1, since the
// filter's own partnerIndex is not exported.
func partnerIndexForTest(cf *cuckoofilter.CuckooFilter, i uint32, fp uint32) uint32 {
	const mixConst = 0x5bd1e995
	return (i ^ (fp * mixConst)) & (cf.Size() - 1)
}

func TestCapacityMonotoneAcrossInsertDelete(t *testing.T) {
	cf := newFilter(t, 128, 4, 16)
	var prev uint64
	for i := 0; i < 100; i++ {
		cf.Insert([]byte(strconv.Itoa(i)))
		cur := cf.ElementCount()
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	for i := 0; i < 100; i++ {
		before := cf.ElementCount()
		cf.Delete([]byte(strconv.Itoa(i)))
		assert.LessOrEqual(t, cf.ElementCount(), before)
	}
}

func TestCountTracksDuplicateInserts(t *testing.T) {
	cf := newFilter(t, 32, 4, 8)
	key := []byte("repeated")
	assert.Equal(t, 0, cf.Count(key))
	for i := 1; i <= 3; i++ {
		require.Equal(t, cuckoofilter.Inserted, cf.Insert(key))
		assert.Equal(t, i, cf.Count(key))
	}
}

func TestAvailabilityDecreasesWithInserts(t *testing.T) {
	cf := newFilter(t, 64, 4, 16)
	first := cf.Availability()
	for i := 0; i < 32; i++ {
		cf.Insert([]byte(strconv.Itoa(i)))
	}
	assert.Less(t, cf.Availability(), first)
}

func TestInsertNeverExceedsKickLimitWithoutTerminating(t *testing.T) {
	// A very small, high-load filter should eventually refuse rather
	// than hang; this exercises the bounded-kicks termination property.
	cf := newFilter(t, 1, 4, 4)
	refusedSeen := false
	for i := 0; i < 1000; i++ {
		if cf.Insert([]byte(strconv.Itoa(i))) == cuckoofilter.Refused {
			refusedSeen = true
			break
		}
	}
	assert.True(t, refusedSeen)
}

// Package dynamiccuckoofilter implements the elastic extension of a
// cuckoo filter: a chain of fixed-size CuckooFilter instances with an
// "active" insertion target that grows the chain on overflow and can
// compact sparse filters back down on demand.
//
// The chain itself is an explicit doubly-linked list with head/tail/
// active pointers, rather than an append-only slice of generations,
// since removeCF needs to unlink an emptied filter from the middle of
// the chain.
package dynamiccuckoofilter

import (
	"github.com/fukua95/cuckoo/cuckoofilter"
	"github.com/fukua95/cuckoo/oracle"
)

// DynamicCuckooFilter is a doubly-linked chain of CuckooFilter nodes.
// Insertions target the active node; lookups and deletes walk the chain
// from head.
type DynamicCuckooFilter struct {
	maxTableSize       uint32
	bucketSize, fpBits uint8
	hasher             oracle.Hasher

	head, tail, active *cuckoofilter.CuckooFilter
	filterCount        int
	elementCount       uint64
}

// New constructs a dynamic cuckoo filter whose chain links are each
// built with the given per-filter maximum table size and (bucketSize,
// fpBits) profile. The chain starts with a single filter.
func New(maxTableSize uint32, bucketSize, fpBits uint8, hasher oracle.Hasher) (*DynamicCuckooFilter, error) {
	if hasher == nil {
		hasher = oracle.Default()
	}

	first, err := cuckoofilter.New(maxTableSize, bucketSize, fpBits, hasher)
	if err != nil {
		return nil, err
	}

	return &DynamicCuckooFilter{
		maxTableSize: maxTableSize,
		bucketSize:   bucketSize,
		fpBits:       fpBits,
		hasher:       hasher,
		head:         first,
		tail:         first,
		active:       first,
		filterCount:  1,
	}, nil
}

// FilterCount returns the current chain length.
func (dcf *DynamicCuckooFilter) FilterCount() int { return dcf.filterCount }

// ElementCount returns the total number of elements across the chain,
// counting one stashed in a victim cell as present once forwarded.
func (dcf *DynamicCuckooFilter) ElementCount() uint64 { return dcf.elementCount }

// newLinkedFilter builds a fresh CuckooFilter using the chain's
// configured parameters; chain extension is the only place in this
// package that allocates.
func (dcf *DynamicCuckooFilter) newLinkedFilter() *cuckoofilter.CuckooFilter {
	cf, err := cuckoofilter.New(dcf.maxTableSize, dcf.bucketSize, dcf.fpBits, dcf.hasher)
	if err != nil {
		// Parameters were already validated in New; a profile or
		// capacity that was acceptable once stays acceptable.
		panic("dynamiccuckoofilter: chain extension with previously-valid parameters failed: " + err.Error())
	}
	return cf
}

// nextCF returns the first non-full filter after cf in the chain. When cf
// is the tail, or every filter after it is full, a new filter is appended
// at the tail and returned; no filter is ever spliced into the middle of
// the chain.
func (dcf *DynamicCuckooFilter) nextCF(cf *cuckoofilter.CuckooFilter) *cuckoofilter.CuckooFilter {
	if cf == dcf.tail || cf.Next() == nil {
		next := dcf.newLinkedFilter()
		cf.SetNext(next)
		next.SetPrev(cf)
		dcf.tail = next
		dcf.filterCount++
		return next
	}

	next := cf.Next()
	if next.Full() {
		return dcf.nextCF(next)
	}
	return next
}

// removeCF unlinks an emptied filter from the chain.
func (dcf *DynamicCuckooFilter) removeCF(cf *cuckoofilter.CuckooFilter) {
	prev := cf.Prev()
	next := cf.Next()

	if prev == nil {
		dcf.head = next
	} else {
		prev.SetNext(next)
	}
	if next == nil {
		dcf.tail = prev
	} else {
		next.SetPrev(prev)
	}
	if dcf.active == cf {
		if prev != nil {
			dcf.active = prev
		} else {
			dcf.active = next
		}
	}
	dcf.filterCount--
}

// Insert adds element to the chain. If the active filter is full, the
// active pointer advances first; if the active filter's own victim cell
// ends up occupied, the stashed fingerprint is forwarded to the filters
// after the active one (see forwardVictim). Filters before the active one,
// head included, are not tried.
func (dcf *DynamicCuckooFilter) Insert(element []byte) cuckoofilter.InsertStatus {
	if dcf.active.Full() {
		dcf.active = dcf.nextCF(dcf.active)
	}

	status := dcf.active.Insert(element)
	if status == cuckoofilter.Inserted {
		dcf.elementCount++
		return cuckoofilter.Inserted
	}

	fp, index, ok := dcf.active.Victim()
	if !ok {
		// Refused without a victim can't happen: Insert only refuses
		// when it either stashes a victim or one was already present.
		return cuckoofilter.Refused
	}
	dcf.active.ClearVictim()
	dcf.forwardVictim(fp, index)
	dcf.elementCount++
	return cuckoofilter.Inserted
}

// forwardVictim places a fingerprint evicted from the active filter
// into the next filter in the chain, running that filter's own
// bounded-kick insert loop (not just a bare empty-slot scan) starting
// from the victim's own (fp, index). If that filter also ends up
// stashing a victim, the forwarding continues into the filter after it;
// nextCF always extends the chain when every existing successor is
// full, so this terminates once it reaches a freshly created, empty
// filter.
func (dcf *DynamicCuckooFilter) forwardVictim(fp, index uint32) {
	cf := dcf.nextCF(dcf.active)
	for {
		status := cf.InsertFP(fp, index)
		if status == cuckoofilter.Inserted {
			return
		}

		nextFP, nextIndex, ok := cf.Victim()
		if !ok {
			return
		}
		cf.ClearVictim()
		dcf.active = cf
		fp, index = nextFP, nextIndex
		cf = dcf.nextCF(dcf.active)
	}
}

// Contains walks the chain from head, returning on the first match.
func (dcf *DynamicCuckooFilter) Contains(element []byte) bool {
	for cf := dcf.head; cf != nil; cf = cf.Next() {
		if cf.Contains(element) {
			return true
		}
	}
	return false
}

// Delete walks the chain from head, deleting from and decrementing the
// first filter that holds a matching fingerprint.
func (dcf *DynamicCuckooFilter) Delete(element []byte) bool {
	for cf := dcf.head; cf != nil; cf = cf.Next() {
		if cf.Delete(element) {
			dcf.elementCount--
			return true
		}
	}
	return false
}

// Compact redistributes fingerprints across non-full filters to shrink
// the chain: collect every non-full filter, sort ascending by element
// count, then for each filter a (ascending) try to drain it into each
// filter b (descending, after a) at matching bucket coordinates. A
// filter that empties out is unlinked and destroyed.
func (dcf *DynamicCuckooFilter) Compact() {
	var sparse []*cuckoofilter.CuckooFilter
	for cf := dcf.head; cf != nil; cf = cf.Next() {
		if !cf.Full() {
			sparse = append(sparse, cf)
		}
	}
	if len(sparse) == 0 {
		return
	}

	// Simple O(k^2) ascending sort by element count; k is small (chain
	// lengths are expected to stay well under a few dozen filters).
	for i := 0; i < len(sparse)-1; i++ {
		for j := 0; j < len(sparse)-1-i; j++ {
			if sparse[j].ElementCount() > sparse[j+1].ElementCount() {
				sparse[j], sparse[j+1] = sparse[j+1], sparse[j]
			}
		}
	}

	for i := 0; i < len(sparse); i++ {
		a := sparse[i]
		if a == nil {
			continue
		}
		for j := len(sparse) - 1; j > i; j-- {
			b := sparse[j]
			if b == nil {
				continue
			}
			a.MoveElementsTo(b)
			if a.Empty() {
				dcf.removeCF(a)
				sparse[i] = nil
				break
			}
		}
	}
}

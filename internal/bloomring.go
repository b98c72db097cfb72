// Package internal holds the probabilistic block set used to spot repeated
// ciphertext blocks.
package internal

import (
	"hash/fnv"
	"sync"

	"github.com/riobard/go-bloom"
)

// Defaults remember roughly the last million blocks (8 MiB of ciphertext).
const (
	DefaultSlots    = 8
	DefaultCapacity = 1 << 20
	DefaultFPR      = 1e-6
)

// double FNV as the Bloom filter hash pair
func doubleFNV(b []byte) (uint64, uint64) {
	hx := fnv.New64()
	hx.Write(b)
	x := hx.Sum64()
	hy := fnv.New64a()
	hy.Write(b)
	y := hy.Sum64()
	return x, y
}

// BloomRing is a set of blocks that forgets the oldest entries once full.
// It is split into slots; when the current slot reaches its share of the
// capacity the next slot is cleared and takes over.
type BloomRing struct {
	slotCapacity int
	slotPosition int
	slotCount    int
	entryCounter int
	slots        []bloom.Filter
	mu           sync.RWMutex
}

// NewBloomRing returns a ring of slot filters holding about capacity entries
// in total with the given false positive rate.
func NewBloomRing(slot, capacity int, falsePositiveRate float64) *BloomRing {
	if slot < 1 {
		slot = 1
	}
	r := &BloomRing{
		slotCapacity: capacity / slot,
		slotCount:    slot,
		slots:        make([]bloom.Filter, slot),
	}
	if r.slotCapacity < 1 {
		r.slotCapacity = 1
	}
	for i := range r.slots {
		r.slots[i] = bloom.New(r.slotCapacity, falsePositiveRate, doubleFNV)
	}
	return r
}

// Add records b.
func (r *BloomRing) Add(b []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(b)
}

func (r *BloomRing) add(b []byte) {
	slot := r.slots[r.slotPosition]
	if r.entryCounter >= r.slotCapacity {
		r.slotPosition = (r.slotPosition + 1) % r.slotCount
		slot = r.slots[r.slotPosition]
		slot.Reset()
		r.entryCounter = 0
	}
	r.entryCounter++
	slot.Add(b)
}

// Test reports whether b was probably added and not yet forgotten.
func (r *BloomRing) Test(b []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.test(b)
}

func (r *BloomRing) test(b []byte) bool {
	for _, s := range r.slots {
		if s.Test(b) {
			return true
		}
	}
	return false
}

// Seen reports whether b was probably added before, then adds it.
func (r *BloomRing) Seen(b []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.test(b) {
		return true
	}
	r.add(b)
	return false
}

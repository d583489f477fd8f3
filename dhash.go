package dhash

import (
	"fmt"
	"iter"
	"log/slog"
)

const (
	growLoadPercent   = 70
	shrinkLoadPercent = 10
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// entry is owned by exactly one slot of one table.
type entry struct {
	key   string
	value string
}

type slot struct {
	state slotState
	entry *entry
}

// Table is a string to string hash table using open addressing with double
// hashing. The physical capacity is always prime.
//
// A Table is not safe for concurrent use.
type Table struct {
	slots      []slot
	baseSize   int
	size       int
	count      int
	tombstones int

	grows     int
	shrinks   int
	destroyed bool

	minBaseSize int
	hasher      Hasher
	log         *slog.Logger
}

// Stats is a snapshot of a table's occupancy.
type Stats struct {
	Count       int
	Size        int
	BaseSize    int
	Tombstones  int
	LoadPercent int
	Grows       int
	Shrinks     int
}

// New creates an empty table at the minimum base size.
func New(opts ...Option) *Table {
	o := newOptions(opts...)
	return newTable(o.minBaseSize, o)
}

// NewWithSize creates an empty table with the given base size. Base sizes
// below the configured minimum are raised to it.
func NewWithSize(baseSize int, opts ...Option) *Table {
	o := newOptions(opts...)
	return newTable(max(baseSize, o.minBaseSize), o)
}

func newTable(baseSize int, o *options) *Table {
	size := NextPrime(baseSize)
	return &Table{
		slots:       make([]slot, size),
		baseSize:    baseSize,
		size:        size,
		minBaseSize: o.minBaseSize,
		hasher:      o.hasher,
		log:         o.logger,
	}
}

// Insert adds key with value, replacing the value of an existing key.
func (t *Table) Insert(key, value string) {
	t.mustBeLive()

	if t.count*100/t.size > growLoadPercent {
		t.resize(t.baseSize * 2)
	}

	e := &entry{key: key, value: value}
	start, step := t.hasher.Probe(key, t.size)
	idx := start
	reuse := -1

	for i := 0; i < t.size; i++ {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			if reuse < 0 {
				reuse = idx
			}
			t.place(reuse, e)
			return

		case slotTombstone:
			if reuse < 0 {
				reuse = idx
			}

		case slotOccupied:
			if s.entry.key == key {
				// Update existing key
				s.entry = e
				return
			}
		}
		idx = (idx + step) % t.size
	}

	// Every slot was probed without finding the key or an empty slot, so
	// the free slots are all tombstones and reuse holds the first of them.
	if reuse < 0 {
		panic(fmt.Sprintf("dhash: probe sequence for %q did not cover %d slots", key, t.size))
	}
	t.place(reuse, e)
}

func (t *Table) place(idx int, e *entry) {
	s := &t.slots[idx]
	if s.state == slotTombstone {
		t.tombstones--
	}
	s.state = slotOccupied
	s.entry = e
	t.count++
}

// Search returns the value stored for key.
func (t *Table) Search(key string) (string, bool) {
	if t.destroyed {
		return "", false
	}
	idx := t.find(key)
	if idx < 0 {
		return "", false
	}
	return t.slots[idx].entry.value, true
}

// Lookup is Search reporting absence as ErrNotFound.
func (t *Table) Lookup(key string) (string, error) {
	if t.destroyed {
		return "", ErrDestroyed
	}
	v, ok := t.Search(key)
	if !ok {
		return "", fmt.Errorf("lookup %q: %w", key, ErrNotFound)
	}
	return v, nil
}

// find returns the slot index holding key, or -1.
func (t *Table) find(key string) int {
	start, step := t.hasher.Probe(key, t.size)
	idx := start
	for i := 0; i < t.size; i++ {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if s.entry.key == key {
				return idx
			}
		}
		idx = (idx + step) % t.size
	}
	return -1
}

// Delete removes key. Deleting an absent key is a no-op.
func (t *Table) Delete(key string) {
	t.mustBeLive()

	if t.count*100/t.size < shrinkLoadPercent {
		t.resize(t.baseSize / 2)
	}

	idx := t.find(key)
	if idx < 0 {
		return
	}
	t.slots[idx] = slot{state: slotTombstone}
	t.count--
	t.tombstones++
}

// Destroy releases every entry and the slot array. Further Insert or Delete
// calls panic with ErrDestroyed.
func (t *Table) Destroy() {
	if t.destroyed {
		return
	}
	clear(t.slots)
	t.slots = nil
	t.count = 0
	t.tombstones = 0
	t.destroyed = true
}

func (t *Table) mustBeLive() {
	if t.destroyed {
		panic(ErrDestroyed)
	}
}

// resize moves every live entry into a freshly allocated slot array of
// NextPrime(baseSize) slots. The live table is only modified once the new
// array is complete.
func (t *Table) resize(baseSize int) {
	if baseSize < t.minBaseSize {
		return
	}

	size := NextPrime(baseSize)
	slots := make([]slot, size)
	for _, s := range t.slots {
		if s.state != slotOccupied {
			continue
		}
		start, step := t.hasher.Probe(s.entry.key, size)
		idx := start
		for slots[idx].state != slotEmpty {
			idx = (idx + step) % size
		}
		slots[idx] = slot{state: slotOccupied, entry: s.entry}
	}

	t.log.Debug("resized table",
		"old_size", t.size,
		"new_size", size,
		"count", t.count,
		"tombstones_dropped", t.tombstones,
	)

	if size > t.size {
		t.grows++
	} else {
		t.shrinks++
	}
	t.slots = slots
	t.baseSize = baseSize
	t.size = size
	t.tombstones = 0
}

// Len returns the number of live entries.
func (t *Table) Len() int { return t.count }

// Size returns the physical capacity.
func (t *Table) Size() int { return t.size }

// BaseSize returns the base size requested by the last resize.
func (t *Table) BaseSize() int { return t.baseSize }

func (t *Table) Stats() Stats {
	st := Stats{
		Count:      t.count,
		Size:       t.size,
		BaseSize:   t.baseSize,
		Tombstones: t.tombstones,
		Grows:      t.grows,
		Shrinks:    t.shrinks,
	}
	if t.size > 0 {
		st.LoadPercent = t.count * 100 / t.size
	}
	return st
}

// All iterates over live entries in slot order.
func (t *Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, s := range t.slots {
			if s.state != slotOccupied {
				continue
			}
			if !yield(s.entry.key, s.entry.value) {
				return
			}
		}
	}
}

// Keys returns the live keys in slot order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.count)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

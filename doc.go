/*
Package dhash provides an in-memory string to string hash table built on open
addressing with double hashing.

Basic usage:

	import "github.com/theflywheel/dhash"

	t := dhash.New()
	defer t.Destroy()

	t.Insert("a", "1")
	t.Insert("b", "2")

	if v, ok := t.Search("b"); ok {
		fmt.Println("Value:", v)
	}

	t.Delete("a")

Features:

  - Physical capacity is always the smallest prime at or above the base size
  - Double hashing: the probe start and the probe step come from two
    independent hashes, so each key's probe sequence covers every slot
  - Tombstones keep probe chains intact after deletions and are reclaimed by
    later insertions
  - Grows (base size doubled) when the load factor exceeds 70% and shrinks
    (base size halved) when it drops under 10%, never below the minimum base
    size of 53
  - Pluggable hash family: positional polynomial hashing by default, or
    xxHash via WithHasher(dhash.XXHasher{})

Implementation Details:

The table keeps a slice of slots. Each slot is empty, occupied by an entry,
or a tombstone. Entries are allocated separately from the slot slice; a resize
builds a new slot slice, moves the entry handles into it and only then swaps
it in, so no key or value is copied and the live table is never left half
migrated.

The default hash reads the key's bytes as a numeral in base 151 (start) and
base 163 (step), reducing modulo the capacity at every step. The step is
taken modulo size-1 and offset by one so it is never a multiple of the prime
capacity.

A Table is not safe for concurrent use; callers sharing one across goroutines
must synchronise access themselves.
*/
package dhash

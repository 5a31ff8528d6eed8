package propui

import (
	"encoding/binary"
	"hash/fnv"
)

// ID uniquely identifies a widget instance across passes.
// Node objects are discarded every pass; the ID is the only thing that survives.
// Zero means "not hit-testable".
type ID uint64

// HashLabel hashes a widget label with FNV-1a.
func HashLabel(label string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return h.Sum64()
}

// CombineID derives a child identity from its parent's identity and the hash of
// its label. The function is pure and order-sensitive: CombineID(a, b) and
// CombineID(b, a) differ.
func CombineID(parent ID, labelHash uint64) ID {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(parent))
	binary.LittleEndian.PutUint64(buf[8:], labelHash)

	h := fnv.New64a()
	h.Write(buf[:])
	id := ID(h.Sum64())
	if id == 0 {
		// keep zero reserved for passive nodes
		id = 1
	}
	return id
}

// ChildID is shorthand for CombineID(parent, HashLabel(label)).
func ChildID(parent ID, label string) ID {
	return CombineID(parent, HashLabel(label))
}

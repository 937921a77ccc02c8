package domain

import (
	"fmt"
	"strconv"
)

// Price is the key of a price level. Negative prices are valid.
type Price int32

// Quantity is the size carried by a single record
type Quantity uint32

// Volume is a cumulative quantity (sum of many records).
// Held in 64 bits so that summing any number of uint32 quantities found in
// a basket cannot wrap.
type Volume uint64

// Tag is an opaque 128-bit identifier attached to a record.
// The basket never inspects it; it only travels with the record so that
// callers can verify where each record ended up.
type Tag struct {
	Hi uint64
	Lo uint64
}

// TagOf builds a tag whose value fits in 64 bits
func TagOf(v uint64) Tag {
	return Tag{Lo: v}
}

// Compare orders tags as unsigned 128-bit integers: -1, 0 or +1
func (t Tag) Compare(other Tag) int {
	switch {
	case t.Hi < other.Hi:
		return -1
	case t.Hi > other.Hi:
		return 1
	case t.Lo < other.Lo:
		return -1
	case t.Lo > other.Lo:
		return 1
	}
	return 0
}

// String prints small tags in decimal, wide ones in hex
func (t Tag) String() string {
	if t.Hi == 0 {
		return strconv.FormatUint(t.Lo, 10)
	}
	return fmt.Sprintf("0x%x%016x", t.Hi, t.Lo)
}

// Record is one unit of quantity resting at a price level.
// Memory layout: Quantity first, then the 16-byte tag, 24 bytes total
// with padding. Records are stored by value inside a level so a level's
// records sit in one contiguous block.
type Record struct {
	Quantity Quantity // 4 bytes (+4 padding)
	Tag      Tag      // 16 bytes
}

// NewRecord creates a record
func NewRecord(quantity Quantity, tag Tag) Record {
	return Record{Quantity: quantity, Tag: tag}
}

// String formats a record as (quantity,tag)
func (r Record) String() string {
	return "(" + strconv.FormatUint(uint64(r.Quantity), 10) + "," + r.Tag.String() + ")"
}

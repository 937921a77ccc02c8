package basket

import (
	"strings"

	"price-basket/domain"
)

// Basket is an ascending sequence of price levels, each holding records in
// the order they were put.
//
// A Basket is not safe for concurrent use: it is owned by a single goroutine
// and callers synchronize if they share it.
//
// Invariants after every public call:
//   - level prices are strictly increasing with no duplicates
//   - records inside a level keep put order
//   - no level is empty
type Basket struct {
	indexType IndexType
	levels    priceIndex
}

// New creates an empty basket backed by the default red-black tree index
func New() *Basket {
	return NewWithIndex(RedBlackTreeIndex)
}

// NewWithIndex creates an empty basket backed by the given index type
func NewWithIndex(t IndexType) *Basket {
	return &Basket{
		indexType: t,
		levels:    newPriceIndex(t),
	}
}

// IndexType reports the backend used by this basket
func (b *Basket) IndexType() IndexType {
	return b.indexType
}

// Put appends a record to the level at price, creating the level if needed
// Performance: O(log n) with tree indexes, plus amortized O(1) append
func (b *Basket) Put(price domain.Price, quantity domain.Quantity, tag domain.Tag) {
	record := domain.NewRecord(quantity, tag)

	if level, ok := b.levels.Get(price); ok {
		level.push(record)
		return
	}
	b.levels.Insert(newLevel(price, record))
}

// Levels returns a deep copy of the levels in ascending price order
func (b *Basket) Levels() []Level {
	out := make([]Level, 0, b.levels.Len())
	b.levels.Ascend(func(level *Level) bool {
		out = append(out, level.snapshot())
		return true
	})
	return out
}

// LevelCount returns the number of distinct prices
func (b *Basket) LevelCount() int {
	return b.levels.Len()
}

// RecordCount returns the number of records across all levels
func (b *Basket) RecordCount() int {
	n := 0
	b.levels.Ascend(func(level *Level) bool {
		n += level.Len()
		return true
	})
	return n
}

// Volume returns the sum of all record quantities
func (b *Basket) Volume() domain.Volume {
	var v domain.Volume
	b.levels.Ascend(func(level *Level) bool {
		v += level.Volume
		return true
	})
	return v
}

// IsEmpty returns true if the basket holds no records
func (b *Basket) IsEmpty() bool {
	return b.levels.Len() == 0
}

// String dumps the basket as [price:[(quantity,tag) ...] ...]
func (b *Basket) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	b.levels.Ascend(func(level *Level) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(level.String())
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}

package basket

import "price-basket/domain"

// cut describes which part of a basket a split removes.
// whole lists levels that move entirely, lowest price first.
// partial, when set, names the level right after them whose first records
// move while the rest stay behind.
type cut struct {
	whole   []*Level
	partial *partialCut
}

type partialCut struct {
	level *Level
	count int // 0 < count < level.Len()
}

func (c cut) empty() bool {
	return len(c.whole) == 0 && c.partial == nil
}

// Split removes the longest prefix of records (ascending price, FIFO within
// a price) whose prices are all <= priceCeiling and whose running quantity
// sum stays <= quantityCeiling, and returns them as a new basket.
//
// The scan stops at the first record that breaks either bound; nothing
// beyond it moves, even if a later record would still fit. A record that
// brings the running sum exactly to quantityCeiling is included.
//
// The returned basket uses the same index type and shares no storage with b.
func (b *Basket) Split(priceCeiling domain.Price, quantityCeiling domain.Volume) *Basket {
	out := NewWithIndex(b.indexType)

	c := b.locate(priceCeiling, quantityCeiling)
	if c.empty() {
		return out
	}

	for _, level := range c.whole {
		b.levels.Remove(level.Price)
		out.levels.Insert(level)
	}
	if c.partial != nil {
		out.levels.Insert(c.partial.level.take(c.partial.count))
	}

	return out
}

// locate scans without modifying anything and reports where the cut falls
func (b *Basket) locate(priceCeiling domain.Price, quantityCeiling domain.Volume) cut {
	var (
		c   cut
		sum domain.Volume
	)

	b.levels.Ascend(func(level *Level) bool {
		if level.Price > priceCeiling {
			return false
		}

		// Whole level fits: no need to walk its records
		if sum+level.Volume <= quantityCeiling {
			sum += level.Volume
			c.whole = append(c.whole, level)
			return true
		}

		count := 0
		for _, r := range level.records {
			if sum+domain.Volume(r.Quantity) > quantityCeiling {
				break
			}
			sum += domain.Volume(r.Quantity)
			count++
		}
		if count > 0 {
			c.partial = &partialCut{level: level, count: count}
		}
		return false
	})

	return c
}

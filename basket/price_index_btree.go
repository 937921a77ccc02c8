package basket

import (
	"github.com/google/btree"

	"price-basket/domain"
)

// btreeDegree is the B-tree node fan-out.
// 32 keeps a node of level pointers within a few cache lines.
const btreeDegree = 32

// bTreeIndex stores levels in a B-tree ordered by price.
// Lookups probe the tree with a bare Level that only carries the price.
type bTreeIndex struct {
	levels *btree.BTreeG[*Level]
}

// Ensure bTreeIndex implements priceIndex
var _ priceIndex = (*bTreeIndex)(nil)

func newBTreeIndex() *bTreeIndex {
	return &bTreeIndex{
		levels: btree.NewG(btreeDegree, func(a, b *Level) bool {
			return a.Price < b.Price
		}),
	}
}

func (b *bTreeIndex) Get(price domain.Price) (*Level, bool) {
	return b.levels.Get(&Level{Price: price})
}

func (b *bTreeIndex) Insert(level *Level) {
	b.levels.ReplaceOrInsert(level)
}

func (b *bTreeIndex) Remove(price domain.Price) {
	b.levels.Delete(&Level{Price: price})
}

func (b *bTreeIndex) Ascend(visit func(level *Level) bool) {
	b.levels.Ascend(visit)
}

func (b *bTreeIndex) Len() int {
	return b.levels.Len()
}

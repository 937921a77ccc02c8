package basket

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"price-basket/domain"
)

// redBlackTreeIndex 使用红黑树（Ordered Map）存储价格档位
// 性能：查找 / 插入 / 删除 O(log n)，顺序遍历 O(n)
type redBlackTreeIndex struct {
	levels *rbt.Tree[domain.Price, *Level]
}

// Ensure redBlackTreeIndex implements priceIndex
var _ priceIndex = (*redBlackTreeIndex)(nil)

func newRedBlackTreeIndex() *redBlackTreeIndex {
	// 价格从小到大
	comparator := func(a, b domain.Price) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	}

	return &redBlackTreeIndex{
		levels: rbt.NewWith[domain.Price, *Level](comparator),
	}
}

func (r *redBlackTreeIndex) Get(price domain.Price) (*Level, bool) {
	return r.levels.Get(price)
}

func (r *redBlackTreeIndex) Insert(level *Level) {
	r.levels.Put(level.Price, level)
}

func (r *redBlackTreeIndex) Remove(price domain.Price) {
	r.levels.Remove(price)
}

func (r *redBlackTreeIndex) Ascend(visit func(level *Level) bool) {
	// 红黑树的中序遍历即价格升序
	it := r.levels.Iterator()
	for it.Next() {
		if !visit(it.Value()) {
			return
		}
	}
}

func (r *redBlackTreeIndex) Len() int {
	return r.levels.Size()
}

package basket

import (
	"math/bits"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"price-basket/domain"
)

const (
	bucketBits = 7
	bucketSize = 1 << bucketBits // 128 = 2^7，可用位运算优化
	bucketMask = bucketSize - 1
)

// shardedIndex 使用分片 + Ordered Map 架构
// 外层：红黑树管理 bucket（O(log m)）
// 内层：固定数组存储价格档位（O(1)），位图记录哪些槽位被占用
type shardedIndex struct {
	buckets *rbt.Tree[int32, *bucket]
	size    int
}

// bucket 代表一个价格分片：[id*128, id*128+127]
type bucket struct {
	levels   [bucketSize]*Level
	occupied [bucketSize / 64]uint64 // bit i set <=> levels[i] != nil
	size     int
}

// Ensure shardedIndex implements priceIndex
var _ priceIndex = (*shardedIndex)(nil)

func newShardedIndex() *shardedIndex {
	return &shardedIndex{
		buckets: rbt.New[int32, *bucket](),
	}
}

// shardOf 计算 bucket ID 和槽位
// 算术右移等价于向下取整除法，负价格也落在正确的 bucket；
// price & mask 等价于 price mod 128（结果在 [0,127]）
func shardOf(price domain.Price) (int32, int) {
	return int32(price) >> bucketBits, int(int32(price) & bucketMask)
}

func (s *shardedIndex) Get(price domain.Price) (*Level, bool) {
	id, slot := shardOf(price)
	b, found := s.buckets.Get(id)
	if !found {
		return nil, false
	}
	level := b.levels[slot]
	return level, level != nil
}

func (s *shardedIndex) Insert(level *Level) {
	id, slot := shardOf(level.Price)
	b, found := s.buckets.Get(id)
	if !found {
		b = &bucket{}
		s.buckets.Put(id, b)
	}

	if b.levels[slot] == nil {
		b.size++
		s.size++
	}
	b.levels[slot] = level
	b.occupied[slot/64] |= 1 << (slot % 64)
}

func (s *shardedIndex) Remove(price domain.Price) {
	id, slot := shardOf(price)
	b, found := s.buckets.Get(id)
	if !found || b.levels[slot] == nil {
		return
	}

	b.levels[slot] = nil
	b.occupied[slot/64] &^= 1 << (slot % 64)
	b.size--
	s.size--

	// 如果 bucket 为空，删除 bucket
	if b.size == 0 {
		s.buckets.Remove(id)
	}
}

func (s *shardedIndex) Ascend(visit func(level *Level) bool) {
	it := s.buckets.Iterator()
	for it.Next() {
		b := it.Value()
		for word, set := range b.occupied {
			// 只遍历被占用的槽位
			for set != 0 {
				i := bits.TrailingZeros64(set)
				set &= set - 1
				if !visit(b.levels[word*64+i]) {
					return
				}
			}
		}
	}
}

func (s *shardedIndex) Len() int {
	return s.size
}

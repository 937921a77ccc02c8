package basket

import (
	"github.com/pkg/errors"
)

// ErrInvalidIndexType is returned by ParseIndexType for unknown names
var ErrInvalidIndexType = errors.New("invalid price index type")

// IndexType 定义价格索引的实现类型
type IndexType int

const (
	// RedBlackTreeIndex 红黑树实现（默认）
	// 性能：查找 / 插入 / 删除 O(log n)
	RedBlackTreeIndex IndexType = iota

	// BTreeIndex B 树实现
	// 性能：O(log n)，节点更紧凑，价格档位很多时缓存更友好
	BTreeIndex

	// HashMapListIndex HashMap + Doubly Linked List 实现
	// 适用场景：价格档位较少（< 100）
	// 性能：已有价格 O(1)，新价格插入 O(n)
	HashMapListIndex

	// ShardedIndex 分片 + 位运算优化实现
	// 外层红黑树管理 128 个价格一组的 bucket，内层固定数组 + 位图
	// 性能：查找 / 插入 / 删除 O(log m)，m = bucket 数量；价格集中时最快
	ShardedIndex
)

var indexTypeNames = map[IndexType]string{
	RedBlackTreeIndex: "rbtree",
	BTreeIndex:        "btree",
	HashMapListIndex:  "hashlist",
	ShardedIndex:      "sharded",
}

// IndexTypes lists every available backend
func IndexTypes() []IndexType {
	return []IndexType{RedBlackTreeIndex, BTreeIndex, HashMapListIndex, ShardedIndex}
}

func (t IndexType) String() string {
	if name, ok := indexTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseIndexType maps a backend name (rbtree, btree, hashlist, sharded) to its type
func ParseIndexType(name string) (IndexType, error) {
	for t, n := range indexTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidIndexType, "%q", name)
}

// newPriceIndex 根据类型创建价格索引
func newPriceIndex(t IndexType) priceIndex {
	switch t {
	case BTreeIndex:
		return newBTreeIndex()
	case HashMapListIndex:
		return newHashMapListIndex()
	case ShardedIndex:
		return newShardedIndex()
	case RedBlackTreeIndex:
		fallthrough
	default:
		return newRedBlackTreeIndex()
	}
}

package basket

import "price-basket/domain"

// priceIndex 定义价格档位索引的接口
// 支持多种实现：红黑树、B 树、HashMap+List
// Every implementation iterates levels in ascending price order.
type priceIndex interface {
	// Get returns the level stored at exactly price
	Get(price domain.Price) (*Level, bool)

	// Insert stores a level whose price is not yet present
	Insert(level *Level)

	// Remove deletes the level at price, if any
	Remove(price domain.Price)

	// Ascend visits levels from the lowest price up until visit returns false.
	// The index must not be modified from inside visit.
	Ascend(visit func(level *Level) bool)

	// Len returns the number of price levels
	Len() int
}

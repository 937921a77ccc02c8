package basket

import "price-basket/domain"

// hashMapListIndex keeps levels in a map for lookup and threads them on a
// doubly linked list in ascending price order for iteration.
//
// Performance:
//   - Get: O(1) map lookup
//   - Insert new price: O(n) walk from the lowest price
//   - Remove: O(1) unlink once the node is found in the map
//   - Ascend: O(n) list walk, no allocation
//
// Suits baskets with few distinct prices and many records per price.
type hashMapListIndex struct {
	nodes  map[domain.Price]*levelNode
	lowest *levelNode // head of the list
}

// levelNode links one level into the ascending price list
type levelNode struct {
	level *Level
	next  *levelNode // next higher price
	prev  *levelNode // next lower price
}

// Ensure hashMapListIndex implements priceIndex
var _ priceIndex = (*hashMapListIndex)(nil)

func newHashMapListIndex() *hashMapListIndex {
	return &hashMapListIndex{
		nodes: make(map[domain.Price]*levelNode),
	}
}

func (h *hashMapListIndex) Get(price domain.Price) (*Level, bool) {
	node, ok := h.nodes[price]
	if !ok {
		return nil, false
	}
	return node.level, true
}

func (h *hashMapListIndex) Insert(level *Level) {
	node := &levelNode{level: level}
	h.nodes[level.Price] = node

	// Empty list
	if h.lowest == nil {
		h.lowest = node
		return
	}

	// New lowest price
	if level.Price < h.lowest.level.Price {
		node.next = h.lowest
		h.lowest.prev = node
		h.lowest = node
		return
	}

	// Find insertion point
	current := h.lowest
	for current.next != nil && current.next.level.Price < level.Price {
		current = current.next
	}

	// Insert after current
	node.next = current.next
	node.prev = current
	if current.next != nil {
		current.next.prev = node
	}
	current.next = node
}

func (h *hashMapListIndex) Remove(price domain.Price) {
	node, ok := h.nodes[price]
	if !ok {
		return
	}
	delete(h.nodes, price)

	if node.prev != nil {
		node.prev.next = node.next
	} else {
		h.lowest = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}

	node.next = nil
	node.prev = nil
}

func (h *hashMapListIndex) Ascend(visit func(level *Level) bool) {
	for current := h.lowest; current != nil; current = current.next {
		if !visit(current.level) {
			return
		}
	}
}

func (h *hashMapListIndex) Len() int {
	return len(h.nodes)
}

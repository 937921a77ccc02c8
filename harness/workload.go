package harness

import (
	"math/rand/v2"
	"slices"

	"price-basket/basket"
	"price-basket/domain"
)

// Entry is one put call: price, quantity and tag
type Entry struct {
	Price    domain.Price
	Quantity domain.Quantity
	Tag      domain.Tag
}

// SplitCase is a filled basket plus the ceilings to split it with
type SplitCase struct {
	Basket   *basket.Basket
	Price    domain.Price
	Quantity domain.Volume
}

// NewRand returns a deterministic generator for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// MakePutData generates priceCount-1 random prices, each with sizeCount-1
// random (quantity, tag) pairs, and returns all entries sorted by tag so
// prices arrive interleaved.
// Prices and quantities cover their whole type range, negative prices included.
func MakePutData(rng *rand.Rand, priceCount, sizeCount int) []Entry {
	if priceCount < 2 || sizeCount < 2 {
		return nil
	}

	data := make([]Entry, 0, (priceCount-1)*(sizeCount-1))
	for p := 1; p < priceCount; p++ {
		price := domain.Price(int32(rng.Uint32()))
		for s := 1; s < sizeCount; s++ {
			data = append(data, Entry{
				Price:    price,
				Quantity: domain.Quantity(rng.Uint32()),
				Tag:      domain.TagOf(rng.Uint64()),
			})
		}
	}

	slices.SortStableFunc(data, func(a, b Entry) int {
		return a.Tag.Compare(b.Tag)
	})
	return data
}

// SplitPoint picks the price of the middle entry as the price ceiling and
// the total quantity priced strictly below it as the quantity ceiling.
func SplitPoint(data []Entry) (domain.Price, domain.Volume) {
	if len(data) == 0 {
		return 0, 0
	}

	price := data[len(data)/2].Price
	var quantity domain.Volume
	for _, e := range data {
		if e.Price < price {
			quantity += domain.Volume(e.Quantity)
		}
	}
	return price, quantity
}

// Fill puts every entry into b in order
func Fill(b *basket.Basket, data []Entry) {
	for _, e := range data {
		b.Put(e.Price, e.Quantity, e.Tag)
	}
}

// MakeSplitData builds a filled basket and its split point
func MakeSplitData(rng *rand.Rand, t basket.IndexType, priceCount, sizeCount int) SplitCase {
	data := MakePutData(rng, priceCount, sizeCount)
	b := basket.NewWithIndex(t)
	Fill(b, data)

	price, quantity := SplitPoint(data)
	return SplitCase{Basket: b, Price: price, Quantity: quantity}
}

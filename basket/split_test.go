package basket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"price-basket/domain"
)

func TestSplitEmptyBasket(t *testing.T) {
	forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
		b := newBasket()
		out := b.Split(1000, 1000)

		checkBasket(t, b, nil)
		checkBasket(t, out, nil)
		assert.Equal(t, b.IndexType(), out.IndexType())
	})
}

// TestSplitInsideLevel 测试在价格档位内部切分
func TestSplitInsideLevel(t *testing.T) {
	forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
		b := sixRecordBasket(newBasket())
		out := b.Split(21, 3)

		checkBasket(t, out, []wantLevel{
			{20, []domain.Record{rec(1, 101)}},
			{21, []domain.Record{rec(1, 102), rec(1, 103)}},
		})
		checkBasket(t, b, []wantLevel{
			{21, []domain.Record{rec(1, 104)}},
			{22, []domain.Record{rec(1, 105)}},
			{23, []domain.Record{rec(2, 106)}},
		})
	})
}

func TestSplitWholeLevels(t *testing.T) {
	forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
		b := sixRecordBasket(newBasket())
		out := b.Split(22, 33)

		checkBasket(t, out, []wantLevel{
			{20, []domain.Record{rec(1, 101)}},
			{21, []domain.Record{rec(1, 102), rec(1, 103), rec(1, 104)}},
			{22, []domain.Record{rec(1, 105)}},
		})
		checkBasket(t, b, []wantLevel{
			{23, []domain.Record{rec(2, 106)}},
		})
	})
}

func TestSplitSingleRecord(t *testing.T) {
	forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
		t.Run("fits", func(t *testing.T) {
			b := newBasket()
			b.Put(20, 1, domain.TagOf(101))
			out := b.Split(21, 3)

			checkBasket(t, out, []wantLevel{{20, []domain.Record{rec(1, 101)}}})
			checkBasket(t, b, nil)
		})

		t.Run("price too high", func(t *testing.T) {
			b := newBasket()
			b.Put(20, 1, domain.TagOf(101))
			out := b.Split(1, 3)

			checkBasket(t, out, nil)
			checkBasket(t, b, []wantLevel{{20, []domain.Record{rec(1, 101)}}})
		})
	})
}

func TestSplitQuantityBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		price     domain.Price
		quantity  domain.Volume
		wantOut   []wantLevel
		wantStays []wantLevel
	}{
		{
			name:     "zero budget moves nothing",
			price:    100,
			quantity: 0,
			wantStays: []wantLevel{
				{10, []domain.Record{rec(3, 1), rec(4, 2)}},
				{11, []domain.Record{rec(5, 3)}},
			},
		},
		{
			name:     "first record alone over budget",
			price:    100,
			quantity: 2,
			wantStays: []wantLevel{
				{10, []domain.Record{rec(3, 1), rec(4, 2)}},
				{11, []domain.Record{rec(5, 3)}},
			},
		},
		{
			name:     "exact equality on first record is included",
			price:    100,
			quantity: 3,
			wantOut: []wantLevel{
				{10, []domain.Record{rec(3, 1)}},
			},
			wantStays: []wantLevel{
				{10, []domain.Record{rec(4, 2)}},
				{11, []domain.Record{rec(5, 3)}},
			},
		},
		{
			name:     "one short of a full level",
			price:    100,
			quantity: 6,
			wantOut: []wantLevel{
				{10, []domain.Record{rec(3, 1)}},
			},
			wantStays: []wantLevel{
				{10, []domain.Record{rec(4, 2)}},
				{11, []domain.Record{rec(5, 3)}},
			},
		},
		{
			name:     "exact equality on level boundary",
			price:    100,
			quantity: 7,
			wantOut: []wantLevel{
				{10, []domain.Record{rec(3, 1), rec(4, 2)}},
			},
			wantStays: []wantLevel{
				{11, []domain.Record{rec(5, 3)}},
			},
		},
		{
			name:     "exact equality on everything",
			price:    11,
			quantity: 12,
			wantOut: []wantLevel{
				{10, []domain.Record{rec(3, 1), rec(4, 2)}},
				{11, []domain.Record{rec(5, 3)}},
			},
		},
		{
			name:     "price ceiling between levels",
			price:    10,
			quantity: 1000,
			wantOut: []wantLevel{
				{10, []domain.Record{rec(3, 1), rec(4, 2)}},
			},
			wantStays: []wantLevel{
				{11, []domain.Record{rec(5, 3)}},
			},
		},
		{
			name:     "price ceiling below everything",
			price:    9,
			quantity: 1000,
			wantStays: []wantLevel{
				{10, []domain.Record{rec(3, 1), rec(4, 2)}},
				{11, []domain.Record{rec(5, 3)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
				b := newBasket()
				b.Put(10, 3, domain.TagOf(1))
				b.Put(11, 5, domain.TagOf(3))
				b.Put(10, 4, domain.TagOf(2))

				out := b.Split(tt.price, tt.quantity)

				checkBasket(t, out, tt.wantOut)
				checkBasket(t, b, tt.wantStays)
			})
		})
	}
}

// TestSplitNoSkipAhead 价格优先：不会跳过放不下的档位去取后面更小的数量
func TestSplitNoSkipAhead(t *testing.T) {
	forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
		b := newBasket()
		b.Put(1, 1, domain.TagOf(1))
		b.Put(2, 10, domain.TagOf(2))
		b.Put(2, 1, domain.TagOf(3))
		b.Put(3, 1, domain.TagOf(4))

		out := b.Split(3, 5)

		checkBasket(t, out, []wantLevel{{1, []domain.Record{rec(1, 1)}}})
		checkBasket(t, b, []wantLevel{
			{2, []domain.Record{rec(10, 2), rec(1, 3)}},
			{3, []domain.Record{rec(1, 4)}},
		})
	})
}

func TestSplitZeroQuantityRecords(t *testing.T) {
	forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
		b := newBasket()
		b.Put(1, 0, domain.TagOf(1))
		b.Put(1, 2, domain.TagOf(2))
		b.Put(1, 0, domain.TagOf(3))
		b.Put(2, 0, domain.TagOf(4))
		b.Put(2, 1, domain.TagOf(5))

		// budget 2 is used up by the second record; the zero after it still fits
		out := b.Split(10, 2)

		checkBasket(t, out, []wantLevel{
			{1, []domain.Record{rec(0, 1), rec(2, 2), rec(0, 3)}},
			{2, []domain.Record{rec(0, 4)}},
		})
		checkBasket(t, b, []wantLevel{{2, []domain.Record{rec(1, 5)}}})

		// zero budget still takes leading zero-quantity records
		b = newBasket()
		b.Put(5, 0, domain.TagOf(6))
		b.Put(5, 1, domain.TagOf(7))
		out = b.Split(5, 0)

		checkBasket(t, out, []wantLevel{{5, []domain.Record{rec(0, 6)}}})
		checkBasket(t, b, []wantLevel{{5, []domain.Record{rec(1, 7)}}})
	})
}

func TestSplitLargeQuantitiesDoNotWrap(t *testing.T) {
	const big = domain.Quantity(1<<32 - 1)

	forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
		b := newBasket()
		b.Put(1, big, domain.TagOf(1))
		b.Put(1, big, domain.TagOf(2))
		b.Put(2, big, domain.TagOf(3))

		out := b.Split(2, domain.Volume(big)*2)

		checkBasket(t, out, []wantLevel{{1, []domain.Record{rec(big, 1), rec(big, 2)}}})
		checkBasket(t, b, []wantLevel{{2, []domain.Record{rec(big, 3)}}})
		assert.Equal(t, domain.Volume(big)*2, out.Volume())
	})
}

// TestSplitNoAliasing 切分后两个篮子互不影响
func TestSplitNoAliasing(t *testing.T) {
	forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
		b := sixRecordBasket(newBasket())
		out := b.Split(21, 3)

		// both sides keep a level at 21; growing one must not show up in the other
		b.Put(21, 7, domain.TagOf(201))
		out.Put(21, 8, domain.TagOf(202))
		out.Put(19, 9, domain.TagOf(203))

		checkBasket(t, out, []wantLevel{
			{19, []domain.Record{rec(9, 203)}},
			{20, []domain.Record{rec(1, 101)}},
			{21, []domain.Record{rec(1, 102), rec(1, 103), rec(8, 202)}},
		})
		checkBasket(t, b, []wantLevel{
			{21, []domain.Record{rec(1, 104), rec(7, 201)}},
			{22, []domain.Record{rec(1, 105)}},
			{23, []domain.Record{rec(2, 106)}},
		})
	})
}

func TestSplitRepeatedly(t *testing.T) {
	forEachIndex(t, func(t *testing.T, newBasket func() *Basket) {
		b := sixRecordBasket(newBasket())

		var drained []domain.Record
		for !b.IsEmpty() {
			out := b.Split(100, 2)
			require.False(t, out.IsEmpty(), "split made no progress on %s", b)
			for _, level := range out.Levels() {
				drained = append(drained, level.Records()...)
			}
		}

		assert.Equal(t, []domain.Record{
			rec(1, 101), rec(1, 102), rec(1, 103), rec(1, 104), rec(1, 105), rec(2, 106),
		}, drained)
	})
}

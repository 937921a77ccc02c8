package basket

import (
	"slices"
	"strconv"
	"strings"

	"price-basket/domain"
)

// Level represents all records resting at one price
// Records are kept in a slice in put order (FIFO); the front of the
// slice is the oldest record.
type Level struct {
	Price  domain.Price
	Volume domain.Volume // sum of record quantities

	records []domain.Record
}

func newLevel(price domain.Price, first domain.Record) *Level {
	return &Level{
		Price:   price,
		Volume:  domain.Volume(first.Quantity),
		records: []domain.Record{first},
	}
}

// Len returns the number of records at this level
func (l *Level) Len() int {
	return len(l.records)
}

// Records returns a copy of the records in FIFO order
func (l *Level) Records() []domain.Record {
	return slices.Clone(l.records)
}

func (l *Level) push(r domain.Record) {
	l.records = append(l.records, r)
	l.Volume += domain.Volume(r.Quantity)
}

// take detaches the first n records into a new level at the same price.
// 0 < n < Len() must hold, otherwise one side would be left empty.
// The returned level owns a fresh slice; the receiver compacts what is left
// to the front of its own array, so the two never share storage.
func (l *Level) take(n int) *Level {
	head := &Level{
		Price:   l.Price,
		records: slices.Clone(l.records[:n]),
	}
	for _, r := range head.records {
		head.Volume += domain.Volume(r.Quantity)
	}

	rest := copy(l.records, l.records[n:])
	clear(l.records[rest:])
	l.records = l.records[:rest]
	l.Volume -= head.Volume

	return head
}

func (l *Level) snapshot() Level {
	return Level{Price: l.Price, Volume: l.Volume, records: l.Records()}
}

func (l *Level) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(int64(l.Price), 10))
	b.WriteString(":[")
	for i, r := range l.records {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}

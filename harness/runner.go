package harness

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"price-basket/basket"
	"price-basket/config"
	"price-basket/logger"
)

// Result aggregates the rounds of one workload
type Result struct {
	Workload config.Workload
	Rounds   int
	Records  int           // records put per round
	Put      time.Duration // mean time to put all records
	Split    time.Duration // mean time of one split
	Moved    int           // mean records moved by the split
}

// Runner times put and split over the configured workloads
type Runner struct {
	index     basket.IndexType
	seed      uint64
	rounds    int
	workloads []config.Workload
	log       *logger.Logger
}

// NewRunner creates a runner from a validated config
func NewRunner(cfg *config.Config, log *logger.Logger) (*Runner, error) {
	index, err := cfg.IndexType()
	if err != nil {
		return nil, errors.Wrap(err, "runner")
	}

	return &Runner{
		index:     index,
		seed:      cfg.Seed,
		rounds:    cfg.Rounds,
		workloads: cfg.Workloads,
		log:       log.WithFields(logger.NewField("index", index.String())),
	}, nil
}

// Run executes every workload in order.
// On cancellation it returns the workloads completed so far with the
// context error.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(r.workloads))

	for i, w := range r.workloads {
		res, err := r.runWorkload(ctx, uint64(i), w)
		if err != nil {
			return results, errors.Wrapf(err, "workload prices=%d sizes=%d", w.Prices, w.Sizes)
		}
		results = append(results, res)

		r.log.InfoContext(ctx, "workload done",
			logger.NewField("prices", w.Prices),
			logger.NewField("sizes", w.Sizes),
			logger.NewField("records", res.Records),
			logger.NewField("rounds", res.Rounds),
			logger.NewField("put", res.Put.String()),
			logger.NewField("split", res.Split.String()),
			logger.NewField("moved", res.Moved),
		)
	}

	return results, nil
}

func (r *Runner) runWorkload(ctx context.Context, n uint64, w config.Workload) (Result, error) {
	res := Result{Workload: w, Rounds: r.rounds}

	var putTotal, splitTotal time.Duration
	moved := 0
	for round := 0; round < r.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		// 每个 (workload, round) 使用独立种子，结果可复现
		rng := NewRand(r.seed + n<<32 + uint64(round))
		data := MakePutData(rng, w.Prices, w.Sizes)
		price, quantity := SplitPoint(data)

		b := basket.NewWithIndex(r.index)
		start := time.Now()
		Fill(b, data)
		putTotal += time.Since(start)
		levels := b.LevelCount()

		start = time.Now()
		out := b.Split(price, quantity)
		splitTotal += time.Since(start)

		moved += out.RecordCount()
		res.Records = len(data)

		r.log.DebugContext(ctx, "round done",
			logger.NewField("round", round),
			logger.NewField("levels", levels),
			logger.NewField("split_price", int32(price)),
			logger.NewField("split_quantity", uint64(quantity)),
		)
	}

	res.Put = putTotal / time.Duration(r.rounds)
	res.Split = splitTotal / time.Duration(r.rounds)
	res.Moved = moved / r.rounds
	return res, nil
}

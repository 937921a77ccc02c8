package main

import (
	"fmt"
	"os"

	"price-basket/basket"
	"price-basket/domain"
	"price-basket/logger"
)

func main() {
	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.InfoLevel))
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	b := basket.New()

	// Example: 20:[1] 21:[1 1 1] 22:[1] 23:[2]
	b.Put(20, 1, domain.TagOf(101))
	b.Put(21, 1, domain.TagOf(102))
	b.Put(21, 1, domain.TagOf(103))
	b.Put(21, 1, domain.TagOf(104))
	b.Put(22, 1, domain.TagOf(105))
	b.Put(23, 2, domain.TagOf(106))
	log.Info("basket filled",
		logger.NewField("basket", b.String()),
		logger.NewField("levels", b.LevelCount()),
		logger.NewField("volume", uint64(b.Volume())),
	)

	// Take everything priced up to 21, at most 3 units: cuts inside level 21
	taken := b.Split(21, 3)
	log.Info("split price<=21 quantity<=3",
		logger.NewField("taken", taken.String()),
		logger.NewField("left", b.String()),
	)

	fmt.Println("taken:", taken)
	fmt.Println("left: ", b)
}

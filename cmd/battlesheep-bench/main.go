package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Tuupertunut/BattleSheepSolver/experiments"
)

func main() {
	experiment := flag.String("experiment", "speedup", "speedup, strength or throughput")
	games := flag.Int("games", 10, "games per matchup, positions for throughput")
	flag.Parse()

	var err error
	switch *experiment {
	case "speedup":
		err = experiments.RunSpeedup(*games)
	case "strength":
		err = experiments.RunStrength(*games)
	case "throughput":
		err = experiments.RunThroughput(*games)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

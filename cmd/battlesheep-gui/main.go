package main

import (
	"flag"
	"os"
	"runtime"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/Tuupertunut/BattleSheepSolver/game"
	"github.com/Tuupertunut/BattleSheepSolver/searcher"
	"github.com/Tuupertunut/BattleSheepSolver/ui"
)

// defaultArena is the four by eight field the board game ships with.
const defaultArena = `
       0   0   0   0   0   0   0   0
     0   0   0   0   0   0   0   0
   0   0   0   0   0   0   0   0
 0   0   0   0   0   0   0   0
`

func main() {
	boardPath := flag.String("board", "", "file with the starting board, built-in arena when empty")
	human := flag.String("human", "min", "side played by the human: min or max")
	depth := flag.Int("depth", searcher.DefaultDepth, "search depth in half moves")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel search workers")
	flag.Parse()

	input := defaultArena
	if *boardPath != "" {
		data, err := os.ReadFile(*boardPath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not read board")
		}
		input = string(data)
	}
	board, err := game.ParseBoard(input)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse board")
	}

	side := game.Min
	if strings.EqualFold(*human, "max") {
		side = game.Max
	}

	agent := searcher.NewNegamax(*workers, searcher.WithDepth(*depth))

	ebiten.SetWindowSize(ui.WindowWidth, ui.WindowHeight)
	ebiten.SetWindowTitle("Battle Sheep")
	if err := ebiten.RunGame(ui.NewScreen(board, side, agent)); err != nil {
		log.Fatal().Err(err).Msg("window closed with an error")
	}
}

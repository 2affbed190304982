package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Tuupertunut/BattleSheepSolver/engine"
	"github.com/Tuupertunut/BattleSheepSolver/game"
	"github.com/Tuupertunut/BattleSheepSolver/searcher"
)

func main() {
	mode := flag.String("mode", "selfplay", "selfplay (AI vs AI) or advise (recommend one move)")
	boardPath := flag.String("board", "", "file with the starting board, stdin when empty")
	depth := flag.Int("depth", searcher.DefaultDepth, "search depth in half moves")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel search workers")
	player := flag.String("player", "max", "side to advise: min or max")
	colored := flag.Bool("color", true, "render boards with ANSI colors")
	verbose := flag.Bool("v", false, "log every search")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	board, err := readBoard(*boardPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read board")
	}

	agent := searcher.NewNegamax(*workers, searcher.WithDepth(*depth), searcher.WithMetrics())

	switch *mode {
	case "selfplay":
		runSelfplay(board, agent, *colored)
	case "advise":
		side, err := parsePlayer(*player)
		if err != nil {
			log.Fatal().Err(err).Msg("could not pick a side")
		}
		runAdvise(board, agent, side, *colored)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runSelfplay(board game.Board, agent engine.Agent, colored bool) {
	e := engine.LocalEngine(board, agent, agent)
	e.Output = os.Stdout
	e.Colored = colored

	winner, metric, _ := e.Run()
	if winner == "Draw" {
		fmt.Printf("\nDraw after %d moves in %v.\n", metric.TotalMoves, metric.Duration)
	} else {
		fmt.Printf("\n%s won after %d moves in %v.\n", winner, metric.TotalMoves, metric.Duration)
	}
}

func runAdvise(board game.Board, agent engine.Agent, side game.Player, colored bool) {
	advisor := engine.NewAdvisor(agent)
	next, value, metric, ok := advisor.Advise(board, side)
	if !ok {
		fmt.Printf("%v has no legal moves.\n", side)
		return
	}

	log.Info().Msgf("searched %d boards to depth %d in %v", metric.Boards, metric.Depth, metric.Duration)
	fmt.Printf("Recommended move for %v (value %+d):\n\n", side, value)
	if colored {
		fmt.Println(next.ColorString())
	} else {
		fmt.Println(next.String())
	}
}

func parsePlayer(name string) (game.Player, error) {
	switch strings.ToLower(name) {
	case "min":
		return game.Min, nil
	case "max":
		return game.Max, nil
	}
	return game.Min, fmt.Errorf("unknown player %q, want min or max", name)
}

// readBoard loads the starting position from a file, or interactively from
// stdin where an empty line ends the board.
func readBoard(path string) (game.Board, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return game.Board{}, err
		}
		return game.ParseBoard(string(data))
	}

	fmt.Println("Enter a board, empty line to finish:")
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" && len(lines) > 0 {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return game.Board{}, err
	}
	return game.ParseBoard(strings.Join(lines, "\n"))
}

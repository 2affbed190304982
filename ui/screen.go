package ui

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/rs/zerolog/log"

	"github.com/Tuupertunut/BattleSheepSolver/engine"
	"github.com/Tuupertunut/BattleSheepSolver/game"
	"github.com/Tuupertunut/BattleSheepSolver/searcher"
)

const (
	WindowWidth  = 1200
	WindowHeight = 800
)

// hand is a partial stack picked up from the board and not dropped yet.
type hand struct {
	origin game.Coord
	height int
}

// Screen implements ebiten.Game: a playable board with the human on one side
// and a search agent on the other. The agent runs on its own goroutine so
// the window stays responsive while it thinks.
type Screen struct {
	board  game.Board
	human  game.Player
	agent  engine.Agent
	toMove game.Player

	hand       *hand
	aiResultCh chan searcher.Decision
	aiRunning  bool

	gameOver  bool
	verdict   string
	hasValue  bool
	lastValue int
}

// NewScreen starts a game on the given board. Min always moves first.
func NewScreen(board game.Board, human game.Player, agent engine.Agent) *Screen {
	return &Screen{
		board:      board,
		human:      human,
		agent:      agent,
		toMove:     game.Min,
		aiResultCh: make(chan searcher.Decision, 1),
	}
}

func (s *Screen) Update() error {
	if s.gameOver {
		return nil
	}

	if s.toMove == s.human {
		s.handleInput()
	} else {
		s.advanceAI()
	}
	return nil
}

// advanceAI launches the search once and then polls for its result without
// blocking the frame.
func (s *Screen) advanceAI() {
	if !s.aiRunning {
		s.aiRunning = true
		board, player := s.board, s.toMove
		go func() {
			decision, _ := s.agent.FindMove(board, player)
			s.aiResultCh <- decision
		}()
		return
	}

	select {
	case decision := <-s.aiResultCh:
		s.aiRunning = false
		if !decision.HasMove {
			s.finish(s.toMove.Opponent())
			return
		}
		s.board = decision.Successor
		s.lastValue = s.toMove.Sign() * decision.Value
		s.hasValue = true
		s.endTurn()
	default:
	}
}

func (s *Screen) handleInput() {
	if s.hand != nil {
		s.handleScroll()
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	l := boardLayout(s.board, WindowWidth, WindowHeight)
	mx, my := ebiten.CursorPosition()
	c := l.pixelToHex(float64(mx), float64(my))
	tile := s.board.At(c)

	switch {
	case !s.hasPlaced():
		if tile.IsEmpty() && slices.Contains(s.board.EmptyOuterEdge(), c) {
			s.board = s.board.WithTile(c, game.NewStack(s.human, game.StartingStackSize))
			s.endTurn()
		}
	case s.hand == nil:
		if tile.IsStack() && tile.Owner() == s.human && tile.Size() > 1 {
			s.hand = &hand{origin: c, height: tile.Size() / 2}
		}
	default:
		s.handleDrop(c, tile)
	}
}

func (s *Screen) handleDrop(c game.Coord, tile game.Tile) {
	if c == s.hand.origin {
		// Put the stack back.
		s.hand = nil
		return
	}
	if tile.IsEmpty() && slices.Contains(s.board.RunEnds(s.hand.origin), c) {
		s.board = s.board.Split(s.hand.origin, c, s.hand.height)
		s.hand = nil
		s.endTurn()
	}
}

// handleScroll adjusts how many sheep the hand is holding.
func (s *Screen) handleScroll() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}

	height := s.hand.height
	if dy > 0 {
		height++
	} else {
		height--
	}
	if height >= 1 && height < s.board.At(s.hand.origin).Size() {
		s.hand.height = height
	}
}

func (s *Screen) endTurn() {
	s.toMove = s.toMove.Opponent()
	if !hasAnyMove(s.board, s.toMove) {
		s.finish(s.toMove.Opponent())
	}
}

func (s *Screen) finish(winner game.Player) {
	s.gameOver = true
	s.verdict = fmt.Sprintf("%v wins!", winner)
	if w, ok := s.board.Winner(); ok {
		log.Info().Msgf("game over: %v wins, %v holds the better standings", winner, w)
	} else {
		log.Info().Msgf("game over: %v wins, standings tied", winner)
	}
}

func (s *Screen) hasPlaced() bool {
	for _, t := range s.board.All() {
		if t.IsStack() && t.Owner() == s.human {
			return true
		}
	}
	return false
}

func hasAnyMove(board game.Board, player game.Player) bool {
	for range board.PossibleMoves(player) {
		return true
	}
	return false
}

func (s *Screen) Draw(dst *ebiten.Image) {
	dst.Fill(colorBackground)

	l := boardLayout(s.board, WindowWidth, WindowHeight)

	for c, t := range s.board.All() {
		if !t.IsBoardTile() {
			continue
		}
		x, y := l.hexToPixel(c)
		drawTile(dst, x, y, l.tileHeight, colorTile)
		if t.IsStack() {
			if s.hand != nil && c == s.hand.origin {
				t = game.NewStack(t.Owner(), t.Size()-s.hand.height)
			}
			drawStack(dst, x, y, l.tileHeight, t)
		}
	}

	s.drawHighlights(dst, l)
	s.drawStatus(dst)
	s.drawHand(dst, l)
}

// drawHighlights marks the cells the human can act on.
func (s *Screen) drawHighlights(dst *ebiten.Image, l layout) {
	if s.gameOver || s.toMove != s.human {
		return
	}

	if !s.hasPlaced() {
		for _, c := range s.board.EmptyOuterEdge() {
			x, y := l.hexToPixel(c)
			drawHexagon(dst, x, y, l.tileHeight*0.92, colorTarget)
		}
		return
	}
	if s.hand == nil {
		return
	}

	for _, dir := range game.Directions {
		for _, c := range s.board.EmptyRun(s.hand.origin, dir) {
			x, y := l.hexToPixel(c)
			drawHexagon(dst, x, y, l.tileHeight*0.92, colorPath)
		}
	}
	for _, c := range s.board.RunEnds(s.hand.origin) {
		x, y := l.hexToPixel(c)
		drawHexagon(dst, x, y, l.tileHeight*0.92, colorTarget)
	}
}

func (s *Screen) drawHand(dst *ebiten.Image, l layout) {
	if s.hand == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	drawStack(dst, float64(mx), float64(my), l.tileHeight, game.NewStack(s.human, s.hand.height))
}

func (s *Screen) drawStatus(dst *ebiten.Image) {
	var msg string
	switch {
	case s.gameOver:
		msg = s.verdict
	case s.toMove != s.human:
		msg = "thinking..."
	case !s.hasPlaced():
		msg = "place your starting stack on a highlighted edge cell"
	case s.hand == nil:
		msg = "click one of your stacks to pick sheep up"
	default:
		msg = fmt.Sprintf("moving %d sheep: scroll to adjust, click a highlighted cell to drop", s.hand.height)
	}
	if s.hasValue {
		msg += fmt.Sprintf("   value %d", s.lastValue)
	}
	text.Draw(dst, msg, basicfont.Face7x13, 16, 24, colorText)
}

func (s *Screen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

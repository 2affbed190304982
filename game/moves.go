package game

import "iter"

// StartingStackSize is the stack each player brings into the game and places
// whole on their first turn.
const StartingStackSize = 16

// PossibleMoves returns a lazy sequence of every board reachable by one
// legal move of the player. A player with no stacks on the board places
// their starting stack; otherwise one of their stacks is split. The sequence
// is restartable, and an empty sequence means the player cannot move.
func (b Board) PossibleMoves(player Player) iter.Seq[Board] {
	for _, t := range b.tiles {
		if t.IsStack() && t.Owner() == player {
			return b.regularMoves(player)
		}
	}
	return b.startingMoves(player)
}

// regularMoves yields every way the player can split one of their stacks and
// slide the top part to the far end of a straight run of empty cells. The
// emission order is fixed: stacks in row-major order, directions clockwise,
// split heights ascending.
func (b Board) regularMoves(player Player) iter.Seq[Board] {
	return func(yield func(Board) bool) {
		for c, t := range b.All() {
			if !t.IsStack() || t.Owner() != player || t.Size() < 2 {
				continue
			}
			for _, dir := range Directions {
				end := b.runEnd(c, dir)
				if end == c {
					continue
				}
				for height := 1; height < t.Size(); height++ {
					if !yield(b.Split(c, end, height)) {
						return
					}
				}
			}
		}
	}
}

// startingMoves yields a board for every empty cell on the outer edge of the
// playable region, with the player's full starting stack placed on it.
func (b Board) startingMoves(player Player) iter.Seq[Board] {
	return func(yield func(Board) bool) {
		for c := range b.outerEdge() {
			if b.At(c).IsEmpty() {
				if !yield(b.WithTile(c, NewStack(player, StartingStackSize))) {
					return
				}
			}
		}
	}
}

// outerEdge walks the boundary of the playable region clockwise, yielding
// every boundary cell it passes through. Cells may repeat where the region
// pinches to a single tile wide.
func (b Board) outerEdge() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		start, ok := b.firstBoardTile()
		if !ok {
			panic("board has no playable tiles")
		}

		// The start tile is the leftmost board tile of the topmost occupied
		// row, so its west neighbor is always off the board.
		prev := Coord{start.R, start.Q - 1}
		cur := start
		for {
			next, found := b.nextBoundaryTile(cur, prev)
			if !found {
				// A single isolated tile has no neighbors to walk to.
				next = start
			}
			if !yield(next) {
				return
			}
			if next == start {
				return
			}
			prev = cur
			cur = next
		}
	}
}

func (b Board) firstBoardTile() (Coord, bool) {
	for c, t := range b.All() {
		if t.IsBoardTile() {
			return c, true
		}
	}
	return Coord{}, false
}

// nextBoundaryTile finds the first board tile around cur, scanning clockwise
// starting just after the direction that points back at prev. Keeping the
// off-board side on the left makes the walk trace the boundary.
func (b Board) nextBoundaryTile(cur, prev Coord) (Coord, bool) {
	from := 0
	for i, d := range Directions {
		if cur.Add(d) == prev {
			from = i
			break
		}
	}
	for i := 1; i <= len(Directions); i++ {
		n := cur.Add(Directions[(from+i)%len(Directions)])
		if b.At(n).IsBoardTile() {
			return n, true
		}
	}
	return Coord{}, false
}

// EmptyOuterEdge returns the distinct empty cells on the outer edge of the
// playable region, in walk order.
func (b Board) EmptyOuterEdge() []Coord {
	seen := make(map[Coord]bool)
	var cells []Coord
	for c := range b.outerEdge() {
		if b.At(c).IsEmpty() && !seen[c] {
			seen[c] = true
			cells = append(cells, c)
		}
	}
	return cells
}

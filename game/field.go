package game

// ClaimedTiles counts the cells occupied by the player's stacks.
func (b Board) ClaimedTiles(player Player) int {
	count := 0
	for _, t := range b.tiles {
		if t.IsStack() && t.Owner() == player {
			count++
		}
	}
	return count
}

// LargestField returns the size of the player's largest connected group of
// occupied cells.
func (b Board) LargestField(player Player) int {
	visited := make([]bool, len(b.tiles))
	var stack []Coord
	largest := 0

	for c, t := range b.All() {
		if !t.IsStack() || t.Owner() != player || visited[b.rowLength*c.R+c.Q] {
			continue
		}

		size := 0
		visited[b.rowLength*c.R+c.Q] = true
		stack = append(stack[:0], c)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++

			for n, nt := range b.Neighbors(cur) {
				if nt.IsStack() && nt.Owner() == player && !visited[b.rowLength*n.R+n.Q] {
					visited[b.rowLength*n.R+n.Q] = true
					stack = append(stack, n)
				}
			}
		}
		largest = max(largest, size)
	}
	return largest
}

// Winner adjudicates a finished game: the player holding more cells wins,
// ties fall to the larger connected field, and a tie on both is a draw
// reported as ok == false.
func (b Board) Winner() (winner Player, ok bool) {
	minClaimed, maxClaimed := b.ClaimedTiles(Min), b.ClaimedTiles(Max)
	if minClaimed != maxClaimed {
		if maxClaimed > minClaimed {
			return Max, true
		}
		return Min, true
	}

	minField, maxField := b.LargestField(Min), b.LargestField(Max)
	if maxField > minField {
		return Max, true
	}
	if minField > maxField {
		return Min, true
	}
	return Min, false
}

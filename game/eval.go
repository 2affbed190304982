package game

import "math"

// WinScore is the score of a decided game. It dominates any heuristic score
// by several orders of magnitude, so a forced win always outranks a merely
// good position.
const WinScore = 1000000

const (
	// maxMobilityScore caps the mobility term. Six neighbors per stack and
	// at most sixteen stacks put the uncapped term well above any value a
	// real position reaches before the cap.
	maxMobilityScore = 75

	// maxEvennessPenalty floors the evenness term at the largest spread a
	// sixteen-sheep side can have, (16-1)/2.
	maxEvennessPenalty = 7
)

// HasRegularMove reports whether the player has any stack that can still
// split, which is exactly whether regularMoves would yield anything.
func (b Board) HasRegularMove(player Player) bool {
	for c, t := range b.All() {
		if !t.IsStack() || t.Owner() != player || t.Size() < 2 {
			continue
		}
		for _, n := range b.Neighbors(c) {
			if n.IsEmpty() {
				return true
			}
		}
	}
	return false
}

// Evaluate scores the board from Max's point of view: positive favors Max,
// negative Min. A position where the player to move cannot split any stack
// is decided and scores ±WinScore. Anywhere else the score sums, per player,
// a mobility term (one point per empty neighbor of each stack, capped) and
// an evenness penalty (half the spread between the largest and smallest
// stack, floored). A side with no stacks on the board counts as stuck.
func (b Board) Evaluate(toMove Player) int {
	var mobility [2]int
	var largest [2]int
	smallest := [2]int{math.MaxInt, math.MaxInt}
	stuck := [2]bool{true, true}

	for c, t := range b.All() {
		if !t.IsStack() {
			continue
		}
		p := t.Owner()
		size := t.Size()

		empties := 0
		for _, n := range b.Neighbors(c) {
			if n.IsEmpty() {
				empties++
			}
		}

		if size > 1 && empties > 0 {
			stuck[p] = false
		}
		mobility[p] += empties
		largest[p] = max(largest[p], size)
		smallest[p] = min(smallest[p], size)
	}

	if stuck[toMove] {
		if toMove == Min {
			return WinScore
		}
		return -WinScore
	}

	score := func(p Player) int {
		if largest[p] == 0 {
			return 0
		}
		s := min(mobility[p], maxMobilityScore)
		s -= min((largest[p]-smallest[p])/2, maxEvennessPenalty)
		return s
	}
	return score(Max) - score(Min)
}

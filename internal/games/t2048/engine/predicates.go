package engine

// probe runs scratch simulations. Its results are discarded, so merged
// tiles need no real IDs.
var probe = &Engine{ids: discardIDs{}}

// CanMoveInDirection reports whether moving b toward dir changes anything.
func CanMoveInDirection(b Board, dir Direction) bool {
	return probe.Move(b, dir).Moved
}

// CanMove reports whether any direction is legal.
func CanMove(b Board) bool {
	for _, dir := range Directions {
		if CanMoveInDirection(b, dir) {
			return true
		}
	}
	return false
}

// LegalMoves returns the directions that would change b.
func LegalMoves(b Board) []Direction {
	var dirs []Direction
	for _, dir := range Directions {
		if CanMoveInDirection(b, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// HasWon reports whether some tile has reached WinTile.
func HasWon(b Board) bool {
	return HasWonAt(b, WinTile)
}

// HasWonAt reports whether some tile is at least target.
// A target of zero or less never wins.
func HasWonAt(b Board, target int) bool {
	if target <= 0 {
		return false
	}
	return b.MaxTile() >= target
}

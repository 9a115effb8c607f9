package engine

// axis maps between board coordinates and (line, k) pairs for one
// direction. k counts from the end the tiles slide toward, so k == 0 is
// the first cell a tile lands in.
type axis Direction

// cell converts a line index and slide-order offset to a board position.
func (a axis) cell(line, k int) Position {
	switch Direction(a) {
	case DirLeft:
		return Position{Row: line, Col: k}
	case DirRight:
		return Position{Row: line, Col: BoardSize - 1 - k}
	case DirUp:
		return Position{Row: k, Col: line}
	default:
		return Position{Row: BoardSize - 1 - k, Col: line}
	}
}

// index is the inverse of cell.
func (a axis) index(p Position) (line, k int) {
	switch Direction(a) {
	case DirLeft:
		return p.Row, p.Col
	case DirRight:
		return p.Row, BoardSize - 1 - p.Col
	case DirUp:
		return p.Col, p.Row
	default:
		return p.Col, BoardSize - 1 - p.Row
	}
}

// Slide describes one tile's travel during a move.
type Slide struct {
	From     Position
	To       Position
	Value    int  // Value before the move
	Merged   bool // The tile was consumed by a merge at To
	Distance int  // Cells travelled
}

// MoveResult is the outcome of applying one direction to a board.
type MoveResult struct {
	Board         Board
	Moved         bool
	ScoreIncrease int
	Merged        []Tile  // Tiles created by merges, at their final positions
	Slides        []Slide // Per-tile travel, for animation
}

// Engine applies moves to boards. The zero value is not usable; use
// NewEngine.
type Engine struct {
	ids IDSource
}

// NewEngine returns an engine that names merged tiles with ids.
// A nil ids uses random UUIDs.
func NewEngine(ids IDSource) *Engine {
	if ids == nil {
		ids = NewUUIDSource()
	}
	return &Engine{ids: ids}
}

// Move slides every line of b toward dir and merges equal neighbours.
// b is not modified. For an invalid direction the board is returned
// unchanged with Moved == false.
func (e *Engine) Move(b Board, dir Direction) MoveResult {
	if !dir.Valid() {
		return MoveResult{Board: b}
	}

	var (
		next  Board
		res   MoveResult
		moved bool
		ax    = axis(dir)
	)

	for line := range BoardSize {
		tiles := make([]Tile, 0, BoardSize)
		for k := range BoardSize {
			p := ax.cell(line, k)
			if t, ok := b.At(p); ok {
				t.Row, t.Col = p.Row, p.Col
				tiles = append(tiles, t)
			}
		}

		out, score, _ := reduceLine(tiles, e.ids)
		res.ScoreIncrease += score

		for k, t := range out {
			if t.Empty() {
				continue
			}

			to := ax.cell(line, k)
			if t.Row != to.Row || t.Col != to.Col {
				moved = true
			}

			res.Slides = append(res.Slides, slidesFor(ax, t, to, k)...)

			t.Row, t.Col = to.Row, to.Col
			next[to.Row][to.Col] = t
			if t.IsMerged {
				res.Merged = append(res.Merged, t)
			}
		}
	}

	res.Board = next
	// A merge can leave the surviving tile where the near source was.
	res.Moved = moved || res.ScoreIncrease > 0
	return res
}

// slidesFor reports the travel of the tile(s) that ended at output slot k.
func slidesFor(ax axis, t Tile, to Position, k int) []Slide {
	if !t.IsMerged {
		if t.Pos() == to {
			return nil
		}
		return []Slide{newSlide(ax, t, to, k, false)}
	}

	slides := make([]Slide, 0, len(t.MergedFrom))
	for _, src := range t.MergedFrom {
		slides = append(slides, newSlide(ax, src, to, k, true))
	}
	return slides
}

func newSlide(ax axis, src Tile, to Position, k int, merged bool) Slide {
	_, from := ax.index(src.Pos())
	dist := from - k
	if dist < 0 {
		dist = -dist
	}
	return Slide{
		From:     src.Pos(),
		To:       to,
		Value:    src.Value,
		Merged:   merged,
		Distance: dist,
	}
}

// Move applies dir to b using random UUIDs for merged tiles.
func Move(b Board, dir Direction) MoveResult {
	return NewEngine(nil).Move(b, dir)
}

package engine

// reduceLine slides and merges one line toward its near end.
// tiles must be the occupied cells of the line in slide order, near end
// first. Returns the packed line, the score gained from merges, and the
// tiles created by merging.
//
// A tile merges at most once per pass, so [2,2,2] becomes [4,2] and
// [2,2,2,2] becomes [4,4].
func reduceLine(tiles []Tile, ids IDSource) (line [BoardSize]Tile, score int, merged []Tile) {
	if len(tiles) > BoardSize {
		tiles = tiles[:BoardSize]
	}

	src := make([]Tile, len(tiles))
	for i, t := range tiles {
		src[i] = t.settled()
	}

	write := 0
	for read := 0; read < len(src); write++ {
		cur := src[read]

		if read+1 < len(src) {
			next := src[read+1]
			if next.Value == cur.Value && !cur.IsMerged && !next.IsMerged {
				m := Tile{
					ID:         ids.NextID(),
					Value:      cur.Value * 2,
					Row:        cur.Row,
					Col:        cur.Col,
					IsMerged:   true,
					MergedFrom: []Tile{cur, next},
				}
				line[write] = m
				score += m.Value
				merged = append(merged, m)
				read += 2
				continue
			}
		}

		line[write] = cur
		read++
	}

	return line, score, merged
}

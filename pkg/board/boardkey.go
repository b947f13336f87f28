package board

// BoardKey is a canonical form of a Board used to fold symmetric positions
// together in BFS visited-sets. Two boards that are mirror images of each
// other (directly, or after relabeling mirror-paired pieces) produce the
// same BoardKey. BoardKey is a plain comparable value, so it can be used
// directly as a map key without a custom hash function.
type BoardKey struct {
	canonical BitPattern
}

// Pattern returns the canonical BitPattern underlying the key.
func (k BoardKey) Pattern() BitPattern {
	return k.canonical
}

func (k BoardKey) String() string {
	return k.canonical.String()
}

// CreateBoardKey computes the canonical key for b under the symmetry group
// generated by left-right mirroring and the piece relabeling in pairs: it
// is the lexicographically smallest of the board's image, its mirror, its
// pair-relabeling, and the mirror of that relabeling.
func CreateBoardKey(pairs []PiecePair, b Board) BoardKey {
	image := b.Image()
	mirrored := image.Mirrored()
	symmetrized := image.Symmetrized(pairs)
	symmetrizedMirrored := symmetrized.Mirrored()

	min := image
	for _, candidate := range [3]BitPattern{mirrored, symmetrized, symmetrizedMirrored} {
		if candidate.Compare(min) < 0 {
			min = candidate
		}
	}
	return BoardKey{canonical: min}
}

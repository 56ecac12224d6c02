package core

import "slices"

// UniqueLines drops every line that is covered by a longer line of the same
// orientation, so that a line extended several times within one placement is
// counted once.
func UniqueLines(lines []Line) []Line {
	sorted := slices.Clone(lines)
	slices.SortStableFunc(sorted, func(a, b Line) int {
		return b.Len() - a.Len()
	})
	removed := make([]bool, len(sorted))
	for n := 0; n < len(sorted)-1; n++ {
		for m := n + 1; m < len(sorted); m++ {
			if sorted[n].Overlaps(sorted[m]) {
				removed[m] = true
			}
		}
	}
	out := make([]Line, 0, len(sorted))
	for i, l := range sorted {
		if !removed[i] {
			out = append(out, l)
		}
	}
	return out
}

// Score sums the face values of the unique lines.
func Score(lines []Line) int {
	total := 0
	for _, l := range UniqueLines(lines) {
		total += l.FaceValue()
	}
	return total
}

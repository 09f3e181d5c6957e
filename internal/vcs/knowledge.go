package vcs

import "sort"

// Ownership is one author's share of a file's surviving lines, per
// [Knowledge].
type Ownership struct {
	Author  string
	Lines   int
	Percent float64
}

// Knowledge composes blame lines into ownership percentages, sorted by
// descending line count and then by author name for ties.
func Knowledge(blame []BlameLine) []Ownership {
	if len(blame) == 0 {
		return nil
	}

	counts := map[string]int{}
	for _, b := range blame {
		counts[b.Author]++
	}

	total := len(blame)
	out := make([]Ownership, 0, len(counts))

	for author, n := range counts {
		out = append(out, Ownership{
			Author:  author,
			Lines:   n,
			Percent: 100 * float64(n) / float64(total),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Lines != out[j].Lines {
			return out[i].Lines > out[j].Lines
		}

		return out[i].Author < out[j].Author
	})

	return out
}

// PrimaryOwner returns the author with the largest share of a file's
// lines, and false if blame carried no lines.
func PrimaryOwner(blame []BlameLine) (Ownership, bool) {
	owners := Knowledge(blame)
	if len(owners) == 0 {
		return Ownership{}, false
	}

	return owners[0], true
}

package scorer

import "strings"

// sequenceRatio returns a similarity ratio in [0,1] between two strings:
// twice the total length of all matching blocks divided by the combined
// length. Matching blocks are found by recursively taking the longest
// common contiguous run, the classic diff heuristic. Two empty strings
// are identical by definition.
func sequenceRatio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1
	}

	matched := matchingTotal(ar, br)
	return 2 * float64(matched) / float64(total)
}

// matchingTotal sums the lengths of all matching blocks between a and b.
func matchingTotal(a, b []rune) int {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	type span struct{ alo, ahi, blo, bhi int }

	var total int
	stack := []span{{0, len(a), 0, len(b)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, k := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if k == 0 {
			continue
		}
		total += k
		stack = append(stack,
			span{s.alo, i, s.blo, j},
			span{i + k, s.ahi, j + k, s.bhi})
	}
	return total
}

// longestMatch finds the longest contiguous run common to a[alo:ahi] and
// b[blo:bhi], where b2j indexes rune positions in b. Runs in O(n·m) worst
// case but is near-linear on natural-language text.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	j2len := make(map[int]int)

	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}

// tokenOverlap computes the overlap between the whitespace-delimited token
// sets of a and b, in [0,1]. The denominator depends on the formula: the
// set union (Jaccard) or the larger of the two sets.
func tokenOverlap(a, b string, formula Overlap) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}

	var denom int
	switch formula {
	case OverlapMaxLen:
		denom = max(len(setA), len(setB))
	default:
		denom = len(setA) + len(setB) - intersection
	}
	return float64(intersection) / float64(denom)
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(text) {
		set[tok] = true
	}
	return set
}

package terminal

import "strings"

// EditDistance is the Levenshtein distance between a and b, over runes.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// ClosestCommand returns the nearest known command to input, or "" when
// nothing is close enough. Short inputs (four runes or fewer) accept a
// distance of 1, longer ones 2. Ties go to the earlier table entry.
func ClosestCommand(input string) string {
	input = strings.ToLower(input)
	maxDistance := 2
	if len([]rune(input)) <= 4 {
		maxDistance = 1
	}

	best, bestDist := "", -1
	for _, c := range commandTable {
		d := EditDistance(input, c.Name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.Name, d
		}
	}
	if bestDist > maxDistance {
		return ""
	}
	return best
}

// Complete returns the command names starting with prefix, in table order.
// A blank prefix matches nothing.
func Complete(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil
	}
	var out []string
	for _, c := range commandTable {
		if strings.HasPrefix(c.Name, prefix) {
			out = append(out, c.Name)
		}
	}
	return out
}

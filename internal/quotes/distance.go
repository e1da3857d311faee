package quotes

// Distance returns the Levenshtein edit distance between a and b, counting
// insertions, deletions and substitutions of single runes at unit cost.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	// matrix[i][j] is the distance between rb[:i] and ra[:j].
	matrix := make([][]int, len(rb)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(ra)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(ra); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(rb); i++ {
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = 1 + min(matrix[i-1][j-1], matrix[i][j-1], matrix[i-1][j])
		}
	}

	return matrix[len(rb)][len(ra)]
}

package editdistance

import "fmt"

// Operation describes a single substitute/delete/insert step recovered
// from an optimal Levenshtein alignment, grounded on
// EditDistanceCalculator.get_edit_operations.
type Operation struct {
	Kind        string // "substitute", "delete", or "insert"
	Position    int
	FromChar    byte // zero for insert
	ToChar      byte // zero for delete
	Description string
}

// Operations recovers one optimal alignment from a to b using the
// standard Levenshtein DP table, back-tracing with the tie-break order
// match > substitute > delete > insert, per spec §4.3's edit-operation
// trace.
func (e *Engine) Operations(a, b string) []Operation {
	lenA, lenB := len(a), len(b)

	dp := make([][]int, lenA+1)
	for i := range dp {
		dp[i] = make([]int, lenB+1)
	}
	for i := 0; i <= lenA; i++ {
		dp[i][0] = i
	}
	for j := 0; j <= lenB; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1]
			} else {
				dp[i][j] = 1 + minInt(dp[i-1][j], minInt(dp[i][j-1], dp[i-1][j-1]))
			}
		}
	}

	var ops []Operation
	i, j := lenA, lenB
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			i--
			j--
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+1:
			ops = append(ops, Operation{
				Kind:     "substitute",
				Position: i - 1,
				FromChar: a[i-1],
				ToChar:   b[j-1],
				Description: fmt.Sprintf("substitute '%c' -> '%c' at position %d",
					a[i-1], b[j-1], i-1),
			})
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+1:
			ops = append(ops, Operation{
				Kind:        "delete",
				Position:    i - 1,
				FromChar:    a[i-1],
				Description: fmt.Sprintf("delete '%c' at position %d", a[i-1], i-1),
			})
			i--
		case j > 0 && dp[i][j] == dp[i][j-1]+1:
			ops = append(ops, Operation{
				Kind:        "insert",
				Position:    i,
				ToChar:      b[j-1],
				Description: fmt.Sprintf("insert '%c' at position %d", b[j-1], i),
			})
			j--
		default:
			// Unreachable for a valid DP table, but guards against an
			// infinite loop if i/j ever desynchronize from dp.
			i, j = 0, 0
		}
	}

	reverse(ops)
	return ops
}

func reverse(ops []Operation) {
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
}

// CorrectionPair is an (original, corrected) token pair used for
// error-pattern analytics, the original_source supplement exposed as
// pipeline.AnalyzeErrorPatterns.
type CorrectionPair struct {
	Original  string
	Corrected string
}

// ErrorPatternReport summarizes operation kinds across a batch of
// corrections, grounded on EditDistanceCalculator.analyze_error_patterns.
type ErrorPatternReport struct {
	PatternCounts        map[string]int
	MostCommonOperations []OperationCount
}

// OperationCount pairs a human-readable operation description with how
// often it occurred across a batch.
type OperationCount struct {
	Description string
	Count       int
}

// AnalyzeErrorPatterns aggregates operation kinds (substitution,
// deletion, insertion) and the ten most common individual operations
// across a batch of correction pairs.
func (e *Engine) AnalyzeErrorPatterns(pairs []CorrectionPair) ErrorPatternReport {
	patterns := make(map[string]int)
	operationCounts := make(map[string]int)

	for _, pair := range pairs {
		for _, op := range e.Operations(pair.Original, pair.Corrected) {
			operationCounts[op.Description]++
			switch op.Kind {
			case "substitute":
				patterns["substitution"]++
			case "delete":
				patterns["deletion"]++
			case "insert":
				patterns["insertion"]++
			}
		}
	}

	counts := make([]OperationCount, 0, len(operationCounts))
	for desc, c := range operationCounts {
		counts = append(counts, OperationCount{Description: desc, Count: c})
	}
	sortOperationCountsDesc(counts)
	if len(counts) > 10 {
		counts = counts[:10]
	}

	return ErrorPatternReport{
		PatternCounts:        patterns,
		MostCommonOperations: counts,
	}
}

func sortOperationCountsDesc(counts []OperationCount) {
	for i := 1; i < len(counts); i++ {
		for j := i; j > 0 && counts[j].Count > counts[j-1].Count; j-- {
			counts[j], counts[j-1] = counts[j-1], counts[j]
		}
	}
}

package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertContainsSubseq[T any](t *testing.T, list, subseq []T) (bool, int, int) {
	t.Helper()
	match, start, end := containsSubseq(list, subseq)
	if !match {
		assert.Fail(t,
			fmt.Sprintf("List does not contain subsequence:\n  list: %s\n  subseq: %s",
				pplistAnnotate(list, "  ", start, end),
				pplistAnnotate(subseq, "  ", 0, end-start)),
		)
	}
	return match, start, end
}

func AssertNotContainsSubseq[T any](t *testing.T, list, subseq []T) (bool, int, int) {
	t.Helper()
	match, start, end := containsSubseq(list, subseq)
	if match {
		assert.Fail(t,
			fmt.Sprintf("List contains subsequence:\n  list: %s\n  subseq: %s",
				pplistAnnotate(list, "  ", start, end),
				pplistAnnotate(subseq, "  ", 0, end-start)),
		)
	}
	return !match, start, end
}

// SplitStatements splits rendered sql back into its statements, without terminators
func SplitStatements(sql string) []string {
	out := []string{}
	for _, stmt := range strings.Split(sql, ";\n\n") {
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// returns (match, start, end)
// where start is the first index of the matched subsequence in list and end is the last matching index + 1
// if match == false and start == 0 and end == 0, no partials were matched
// this is greedy, the first partial match that fails ends the search
func containsSubseq[T any](list, subseq []T) (bool, int, int) {
	// all lists contain empty subsequences
	if len(subseq) == 0 {
		return true, 0, 0
	}
	// the empty list contains no subsequences (except for the empty subsequence)
	if len(list) == 0 {
		return false, 0, 0
	}

	i := 0
	j := 0
	start := -1
	for ; i < len(list) && j < len(subseq); i += 1 {
		if assert.ObjectsAreEqual(list[i], subseq[j]) {
			if start == -1 {
				start = i
			}
			j += 1
		} else if j > 0 {
			return false, start, i
		}
	}
	end := i
	if start < 0 {
		start = 0
		end = 0
	}
	return j >= len(subseq), start, end
}

func pplistAnnotate[T any](list []T, indent string, start, end int) string {
	if len(list) == 0 {
		return "[]"
	}

	horiz := "["
	vert := "["
	for i, el := range list {
		item := fmt.Sprintf("%q", fmt.Sprint(el))
		if i >= start && i < end {
			// surround horiz range with (), prefix vert with >
			if i == start {
				horiz += "("
			}
			horiz += item
			if i == end-1 {
				horiz += ")"
			}
			horiz += " "

			vert += fmt.Sprintf("\n%s> %s", indent, item)
		} else {
			horiz += item + " "
			vert += fmt.Sprintf("\n%s  %s", indent, item)
		}
	}
	horiz = strings.TrimSpace(horiz) + "]"
	vert += "\n" + indent + "]"
	if len(horiz) <= 120 {
		return horiz
	}
	return vert
}

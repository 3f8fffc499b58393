package util

import (
	"strings"
)

func MaybeStr(cond bool, str string) string {
	return ChooseStr(cond, str, "")
}

func ChooseStr(cond bool, trueStr, falseStr string) string {
	if cond {
		return trueStr
	}
	return falseStr
}

// returns the first non-empty string, or the empty string
func CoalesceStr(strs ...string) string {
	for _, s := range strs {
		if len(s) > 0 {
			return s
		}
	}
	return ""
}

// like strings.Split, but empty trailing fields are dropped
// e.g. SplitTrimTrailing("a,b,,", ",") results in ["a", "b"]
func SplitTrimTrailing(str, sep string) []string {
	parts := strings.Split(str, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

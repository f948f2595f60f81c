package compare

import (
	"sort"

	"github.com/Aurum-R/Shellfast/pkg/types"
)

// Sets partitions two line collections into lines only in the first,
// only in the second, and in both. Each line is a set element, so
// duplicates within one input collapse to a single membership. Inputs
// are not required or verified to be sorted; the partition is a pure
// set operation. Output slices are sorted so the result is
// deterministic per run.
func Sets(a, b []string) types.CommResult {
	setA := toSet(a)
	setB := toSet(b)

	var result types.CommResult
	for line := range setA {
		if setB[line] {
			result.InBoth = append(result.InBoth, line)
		} else {
			result.OnlyInFirst = append(result.OnlyInFirst, line)
		}
	}
	for line := range setB {
		if !setA[line] {
			result.OnlyInSecond = append(result.OnlyInSecond, line)
		}
	}

	sort.Strings(result.OnlyInFirst)
	sort.Strings(result.OnlyInSecond)
	sort.Strings(result.InBoth)
	return result
}

func toSet(lines []string) map[string]bool {
	set := make(map[string]bool, len(lines))
	for _, line := range lines {
		set[line] = true
	}
	return set
}

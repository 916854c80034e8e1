// Package dfs provides small slice helpers shared by the traversal and
// topological sort implementations.
package dfs

// indexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func indexOf[N comparable](s []N, val N) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// reverse reverses s in place.
// Time Complexity: O(n).
func reverse[N any](s []N) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

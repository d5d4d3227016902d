// Package x holds small generic helpers shared across packages.
package x

import (
	"fmt"
	"os"
	"sort"
)

// Fine, I'll do it myself...
func Ternary[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}
	return falseValue
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetUserHomeDir returns the current user's home directory.
func GetUserHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home dir: %w", err)
	}
	return home, nil
}

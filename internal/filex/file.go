// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (and any parents) if it does not exist and returns
// the path. Local state like the preferences database and the log file
// live under the directory this guarantees.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// Package utils holds small helpers shared by the commands.
package utils

import (
	"os"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath expands a leading ~ and any environment variables in path. The
// path is returned untouched when the home directory cannot be resolved.
func ExpandPath(path string) string {
	expanded, err := homedir.Expand(os.ExpandEnv(path))
	if err != nil {
		return path
	}
	return expanded
}

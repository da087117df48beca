package utils

import (
	"strings"

	"github.com/google/uuid"
)

// StagingName returns a unique file name for temporary copies of name.
func StagingName(name string) string {
	return "." + strings.ReplaceAll(uuid.New().String(), "-", "") + "-" + name + ".part"
}

// Package fileutil provides the file housekeeping shared by the commands:
// output directory creation and collision-free output naming.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// OutputName builds a file name from a format string with placeholders:
//
//	{uuid}      a random UUID
//	{timestamp} current timestamp (YYYYMMDD_HHMMSS)
//	{date}      current date (YYYYMMDD)
//	{original}  base name of the source file, extension stripped
//
// The extension is appended when the format does not already end with it.
func OutputName(format, sourceFile, ext string) string {
	now := time.Now()
	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{original}":  strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile)),
	}
	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}
	if !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}
	return result
}

// DefaultOutputPath joins dir with a generated name for sourceFile, using
// the given name prefix. Example: merged_20240115_143022_<uuid>.xlsx.
func DefaultOutputPath(dir, prefix, sourceFile string) string {
	name := OutputName(prefix+"_{timestamp}_{uuid}", sourceFile, ".xlsx")
	return filepath.Join(dir, name)
}

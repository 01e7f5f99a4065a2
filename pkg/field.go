package syncver

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Field locates a version value inside a file: the value starts right after
// the first occurrence of Marker and runs up to the first Terminator after it.
type Field struct {
	Path       string
	Marker     string
	Terminator string
}

// ManifestField returns the field of a Cargo-style manifest: version = "1.2.3"
func ManifestField(path string) Field {
	return Field{Path: path, Marker: `version = "`, Terminator: "\"\n"}
}

// BuildField returns the field of a Makefile-style build file: VERSION = 1.2.3
func BuildField(path string) Field {
	return Field{Path: path, Marker: "VERSION = ", Terminator: "\n"}
}

// ErrMarkerNotFound is matched by every *MarkerError.
var ErrMarkerNotFound = errors.New("version marker not found")

// MarkerError reports a file whose version field could not be located.
type MarkerError struct {
	Path   string
	Marker string
	Reason string
}

// Error names the file, the problem and the marker searched for.
func (e *MarkerError) Error() string {
	return fmt.Sprintf("%s: %s (marker %q)", e.Path, e.Reason, e.Marker)
}

// Is reports whether target is ErrMarkerNotFound.
func (e *MarkerError) Is(target error) bool {
	return target == ErrMarkerNotFound
}

// Extract returns the version value of f within content.
// A "\n" in Terminator also matches "\r\n"; the value never keeps a
// trailing carriage return.
func (f Field) Extract(content string) (string, error) {
	_, rest, ok := strings.Cut(content, f.Marker)
	if !ok {
		return "", &MarkerError{Path: f.Path, Marker: f.Marker, Reason: "marker not found"}
	}

	end := strings.Index(rest, f.Terminator)
	if crlf := strings.Replace(f.Terminator, "\n", "\r\n", 1); crlf != f.Terminator {
		if i := strings.Index(rest, crlf); i >= 0 && (end < 0 || i < end) {
			end = i
		}
	}
	if end < 0 {
		return "", &MarkerError{Path: f.Path, Marker: f.Marker, Reason: "unterminated version field"}
	}

	value := strings.TrimSuffix(rest[:end], "\r")
	if value == "" {
		return "", &MarkerError{Path: f.Path, Marker: f.Marker, Reason: "empty version field"}
	}
	return value, nil
}

// Read loads the file at f.Path and extracts its version value.
func (f Field) Read() (content, version string, err error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", "", fmt.Errorf("reading file %s: %w", f.Path, err)
	}
	content = string(data)
	version, err = f.Extract(content)
	if err != nil {
		return "", "", err
	}
	return content, version, nil
}

// replaceVersion substitutes every literal occurrence of oldVersion, not only
// the one behind the marker. An unrelated string equal to oldVersion elsewhere
// in the file is rewritten too; callers rely on this to keep duplicated
// version strings in sync.
func replaceVersion(content, oldVersion, newVersion string) string {
	if oldVersion == "" || oldVersion == newVersion {
		return content
	}
	return strings.ReplaceAll(content, oldVersion, newVersion)
}

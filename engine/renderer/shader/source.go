package shader

import (
	"fmt"
	"os"
)

// Source is a shader source text with a name used in diagnostics. The core
// is agnostic to where the text came from; the filesystem and in-memory
// constructors below cover both origins.
type Source struct {
	name string
	text string
}

// FromFile reads a shader source from the filesystem.
//
// Parameters:
//   - path: the source file path, also used as the diagnostic name
//
// Returns:
//   - Source: the loaded source
//   - error: error if the file could not be read
func FromFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read shader source %q: %w", path, err)
	}
	return Source{name: path, text: string(data)}, nil
}

// FromString wraps an in-memory shader source, e.g. one embedded at build
// time.
//
// Parameters:
//   - name: the diagnostic name for the source
//   - text: the shader source text
//
// Returns:
//   - Source: the wrapped source
func FromString(name, text string) Source {
	return Source{name: name, text: text}
}

// Name retrieves the diagnostic name of the source.
//
// Returns:
//   - string: the source name
func (s Source) Name() string {
	return s.name
}

// Text retrieves the shader source text.
//
// Returns:
//   - string: the source text
func (s Source) Text() string {
	return s.text
}

package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names an input layout.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension:
// .yaml/.yml → FormatYAML; .txt, .graph or none → FormatText.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case "", ".txt", ".graph":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Read parses r in the given format.
func Read(r io.Reader, f Format) (*Network, error) {
	switch f {
	case FormatYAML:
		return ParseYAML(r)
	case FormatText:
		g, err := ParseText(r)
		if err != nil {
			return nil, err
		}

		return NewNetwork(g, nil)
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnsupportedFormat)
	}
}

// Load opens path and parses it according to its extension.
func Load(path string) (*Network, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open network file: %w", err)
	}
	defer file.Close()

	net, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return net, nil
}

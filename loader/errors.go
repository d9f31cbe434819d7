package loader

import "errors"

// Sentinel errors for loader operations.
var (
	// ErrEmptyInput indicates that the input holds no vertex count.
	ErrEmptyInput = errors.New("loader: empty input")

	// ErrSyntax indicates a line or field that could not be parsed.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrMissingWeight indicates an edge line with only two endpoints.
	ErrMissingWeight = errors.New("loader: edge weight is required")

	// ErrUnknownStation indicates an endpoint name that is not a declared station.
	ErrUnknownStation = errors.New("loader: unknown station")

	// ErrVertexMismatch indicates that "vertices" disagrees with the station list.
	ErrVertexMismatch = errors.New("loader: vertex count does not match station list")

	// ErrUnsupportedFormat indicates a file extension Load cannot handle.
	ErrUnsupportedFormat = errors.New("loader: unsupported format")
)

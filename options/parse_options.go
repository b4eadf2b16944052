package options

import "io"

// ParseOptions configures how media extension elements are parsed.
type ParseOptions struct {
	// StrictNamespace only accepts elements resolved to the Media RSS
	// namespace. By default a bare media: prefix is accepted too, because
	// plenty of feeds in the wild use it without ever declaring it.
	StrictNamespace bool

	// CharsetReader converts non-UTF8 input using its declared encoding.
	// The default handles every charset known to x/net/html/charset.
	CharsetReader func(charset string, input io.Reader) (io.Reader, error)
}

// DefaultParseOptions returns sensible defaults.
func DefaultParseOptions() *ParseOptions {
	return &ParseOptions{StrictNamespace: false}
}

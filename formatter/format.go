package formatter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/transnet-generator/config"
)

// Format is an output graph format
type Format string

const (
	Pajek Format = "pajek"
	GML   Format = "gml"
)

// Formats lists the supported formats
var Formats = []Format{Pajek, GML}

// UnsupportedFormatError is returned for any format other than pajek or gml.
// It matches config.ErrConfig.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%v: output format [%s] is not supported, use pajek or gml", config.ErrConfig, e.Format)
}

func (e *UnsupportedFormatError) Is(target error) bool { return target == config.ErrConfig }

// ParseFormat matches name case-insensitively against the supported formats
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats {
		if string(f) == n {
			return f, nil
		}
	}
	return "", &UnsupportedFormatError{Format: name}
}

// Extension returns the conventional file extension, dot included
func (f Format) Extension() string {
	switch f {
	case Pajek:
		return ".net"
	case GML:
		return ".gml"
	}
	return ""
}

// MatchesPath reports whether path ends with the format's extension, ignoring case
func (f Format) MatchesPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), f.Extension())
}

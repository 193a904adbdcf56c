package config

import (
	"errors"
	"fmt"
)

// ErrConfig is matched (errors.Is) by every configuration failure: an absent
// source list, an unsupported output format or encoding, an invalid config file.
var ErrConfig = errors.New("configuration error")

// Errorf builds an error wrapping ErrConfig
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

package transnet

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/transnet-generator/config"
)

// ErrConfig is matched by every configuration error
var ErrConfig = config.ErrConfig

// ErrNoSources is returned when the source list is absent
var ErrNoSources = fmt.Errorf("%w: no source feeds given", ErrConfig)

// ErrOrphanContinuation is returned for a stop_sequence other than 0 when no
// earlier row of the same source exists to pair it with
var ErrOrphanContinuation = errors.New("continuation row without a preceding row in this source")

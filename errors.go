package gassim

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every error returned by Initialize.
var ErrConfig = errors.New("gassim: invalid configuration")

// Configuration errors. All of them satisfy errors.Is(err, ErrConfig).
var (
	ErrNegativeCount  = fmt.Errorf("%w: negative particle count", ErrConfig)
	ErrBadRadius      = fmt.Errorf("%w: radius must be positive", ErrConfig)
	ErrBadSpeed       = fmt.Errorf("%w: negative speed limit", ErrConfig)
	ErrBadMass        = fmt.Errorf("%w: negative mass", ErrConfig)
	ErrBadRestitution = fmt.Errorf("%w: restitution outside [0, 1]", ErrConfig)
	ErrBadArena       = fmt.Errorf("%w: arena size must be finite", ErrConfig)
	ErrArenaTooSmall  = fmt.Errorf("%w: arena smaller than one particle diameter", ErrConfig)
)

// ErrCoincident is returned by Collide when two particles share the same center.
// The line of centers is undefined so no impulse can be applied.
var ErrCoincident = errors.New("gassim: coincident particle centers")

package core

import "errors"

var (
	ErrProviderUnavailable = errors.New("ai provider unavailable")
	ErrGenerationTimeout   = errors.New("ai generation timeout")
	ErrInvalidResponse     = errors.New("ai provider returned invalid response")
)

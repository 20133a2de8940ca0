package ai

import "github.com/hireloop/candidatehub/internal/ai/core"

// Re-exported from core so providers can share them without importing
// this package (which would cycle through the factory).
var (
	ErrProviderUnavailable = core.ErrProviderUnavailable
	ErrGenerationTimeout   = core.ErrGenerationTimeout
	ErrInvalidResponse     = core.ErrInvalidResponse
)

package constants

// Context keys
const (
	ContextKeyClaims = "claims"
)

// Validation constraints
const (
	MinPasswordLength = 8
	MaxNameLength     = 150
	MaxTitleLength    = 200
)

// Pagination defaults
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

package cli

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeConfigLoad    = "E002" // Config file could not be read or parsed
	ErrCodeInvalidConfig = "E003" // Config rejected before generation
	ErrCodeWriteFailed   = "E004" // Tree or manifest write error
	ErrCodeNotFound      = "E005" // Path or run not found
	ErrCodeParseFailed   = "E006" // Malformed manifest line
	ErrCodeLedger        = "E007" // Run ledger error

	// Manifest and tree validation errors
	ErrCodeInvariant = "E101" // Manifest invariant violated
	ErrCodeCycle     = "E102" // Dependency cycle found
)

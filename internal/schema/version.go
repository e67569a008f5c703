package schema

// Version constants for msgc.
const (
	// GeneratorVersion is recorded in generation history.
	GeneratorVersion = "0.1.0"

	// FormatVersion is the version of the YAML/CUE/JSON schema layout.
	FormatVersion = "1"
)

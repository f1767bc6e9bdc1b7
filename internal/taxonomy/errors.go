package taxonomy

import "fmt"

// InvalidTaxonomyError indicates a structurally malformed taxonomy.
// This is the programmer-error case; messy skill data never raises it.
type InvalidTaxonomyError struct {
	Message string
}

func (e *InvalidTaxonomyError) Error() string {
	return fmt.Sprintf("invalid taxonomy: %s", e.Message)
}

// LoadError indicates a taxonomy override file could not be read,
// parsed, or did not pass schema validation.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load taxonomy %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load taxonomy %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

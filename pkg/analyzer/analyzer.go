// Package analyzer defines the contract shared by all script detectors.
package analyzer

// TextAnalyzer is the interface all script detectors satisfy. Detectors are
// pure: they take immutable script text and return a fresh result, so any
// number of them may run concurrently over the same input.
type TextAnalyzer[T any] interface {
	// Analyze derives a fresh result from the script text. Malformed lines
	// are skipped rather than reported; Analyze never fails on bad input.
	Analyze(text string) T
}

// Func adapts a plain detector function to TextAnalyzer.
type Func[T any] func(text string) T

// Analyze calls the wrapped function.
func (f Func[T]) Analyze(text string) T {
	return f(text)
}

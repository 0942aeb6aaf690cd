package filter

import "fmt"

// CompilationError indicates an expression could not be compiled.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

// Error implements the error interface
func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filter: %s: %q: %v", e.Reason, e.Expression, e.Err)
	}
	return fmt.Sprintf("filter: %s: %q", e.Reason, e.Expression)
}

// Unwrap returns the underlying compile error
func (e *CompilationError) Unwrap() error {
	return e.Err
}

// EvaluationError indicates a compiled expression failed against an item.
type EvaluationError struct {
	Expression string
	Reason     string
	Err        error
}

// Error implements the error interface
func (e *EvaluationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filter: %s: %q: %v", e.Reason, e.Expression, e.Err)
	}
	return fmt.Sprintf("filter: %s: %q", e.Reason, e.Expression)
}

// Unwrap returns the underlying evaluation error
func (e *EvaluationError) Unwrap() error {
	return e.Err
}

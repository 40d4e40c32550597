package llm

import "fmt"

// ServiceError represents a network or service-level failure calling the
// generative provider. It is transient from the caller's point of view;
// retrying is the caller's decision.
type ServiceError struct {
	Op    string
	Cause error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("generative service error during %s: %v", e.Op, e.Cause)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates the model returned no usable text.
type EmptyResponseError struct {
	Reason string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("model returned no usable output: %s", e.Reason)
}

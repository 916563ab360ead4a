package utils

// TryAgainError represents an error indicating that more input is needed
// before the operation can complete.
type TryAgainError struct {
}

// Error returns the error message for TryAgainError.
func (TryAgainError) Error() string {
	return "Try again"
}

// NoCodecDataError represents an error indicating that no codec data was provided.
type NoCodecDataError struct {
}

// Error returns the error message for NoCodecDataError.
func (NoCodecDataError) Error() string {
	return "No codec data"
}

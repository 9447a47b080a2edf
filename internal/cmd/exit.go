package cmd

// Exit codes used by the json command, which maps each failure class to a
// distinct process exit code instead of relying on Kong's generic fatal path.
const (
	ExitInputMissing = 2
	ExitParseFailure = 3
	ExitReadFailure  = 4
	ExitWriteFailure = 5
)

// ExitError carries a specific process exit code alongside the underlying
// error. main inspects it before falling back to the default error handling.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

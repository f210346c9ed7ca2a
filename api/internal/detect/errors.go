package detect

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput   = errors.New("missing imageBase64")
	ErrMalformedInput = errors.New("malformed image data URL")
)

// RemoteCallError wraps a failed model invocation (network, auth, quota).
// Its message is safe to log but not meant for clients.
type RemoteCallError struct {
	Engine string
	Err    error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s: remote call failed: %v", e.Engine, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

// UnparsableOutputError carries the raw model text for diagnostics.
type UnparsableOutputError struct {
	ModelOutput string
	Err         error
}

func (e *UnparsableOutputError) Error() string {
	return fmt.Sprintf("model output is not a JSON object: %v", e.Err)
}

func (e *UnparsableOutputError) Unwrap() error { return e.Err }

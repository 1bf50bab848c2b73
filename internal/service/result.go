package service

import "errors"

// Result is the structured outcome of every mutating action. Errors are
// returned as data, never panicked: handlers render Error inline and
// keep the submitted form populated for correction.
type Result struct {
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
	ID      string `json:"id,omitempty"`
}

// ErrUnauthorized is the fixed gate-failure message.
const ErrUnauthorized = "Unauthorized"

// ErrSessionRequired is returned by admin reads invoked without a
// session; mutators report the same condition through Result instead.
var ErrSessionRequired = errors.New("unauthorized")

func errorResult(message string) Result {
	return Result{Error: message}
}

func successResult(message string) Result {
	return Result{Success: message}
}

func unauthorizedResult() Result {
	return Result{Error: ErrUnauthorized}
}

// IsError reports whether the result carries an error.
func (r Result) IsError() bool {
	return r.Error != ""
}

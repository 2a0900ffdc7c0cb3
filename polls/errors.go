// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "errors"

// ErrNotFound is returned when a question does not exist or is not yet published.
// The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("question not found")

// ValidationError reports a bad vote submission. No state was changed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

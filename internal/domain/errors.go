package domain

import "errors"

// Error kinds distinguishable with errors.Is. Wrapped details stay readable
// while the kind decides how a failure is classified.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrAPI            = errors.New("sheets api error")
	ErrNotFound       = errors.New("spreadsheet or sheet not found")
	ErrAliasNotFound  = errors.New("alias not found")
)

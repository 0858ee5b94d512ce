package entity

import "errors"

// ErrLeadNotFound is returned when the requested lead id does not exist.
var ErrLeadNotFound = errors.New("lead not found")

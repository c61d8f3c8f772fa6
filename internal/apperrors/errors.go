package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current resource state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInvalidTransition indicates an invoice status change the lifecycle
// state machine does not allow, e.g. settling an already PAID invoice.
var ErrInvalidTransition = errors.New("invalid invoice status transition")

// ErrAlreadyInProgress indicates a transfer is already outstanding on this
// settlement client. Callers are rejected, not queued.
var ErrAlreadyInProgress = errors.New("transfer already in progress")

// ErrPrecision indicates an amount that cannot be represented exactly at the
// token's fixed-point precision.
var ErrPrecision = errors.New("amount exceeds token precision")

// ErrLedger indicates a network or provider failure talking to the external
// token ledger. Local state is never mutated when this is returned.
var ErrLedger = errors.New("ledger request failed")

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PermissionDeniedError represents an operation the acting team is not
// authorized to perform. Never retried automatically.
type PermissionDeniedError struct {
	Message string
}

func (e *PermissionDeniedError) Error() string {
	return e.Message
}

// PartInUseError represents a destructive operation attempted on a part that
// has been consumed by an aircraft. Permanent until the owning aircraft is
// deleted; callers must not retry.
type PartInUseError struct {
	SerialNumber string
}

func (e *PartInUseError) Error() string {
	if e.SerialNumber != "" {
		return fmt.Sprintf("part %s is used in an aircraft and cannot be deleted", e.SerialNumber)
	}
	return "part is used in an aircraft and cannot be deleted"
}

// Is enables errors.Is() comparison for PartInUseError regardless of serial
func (e *PartInUseError) Is(target error) bool {
	_, ok := target.(*PartInUseError)
	return ok
}

// PartNotAvailableError represents a candidate part that is missing, already
// used, or belongs to a different aircraft type. Carries the offending id.
type PartNotAvailableError struct {
	PartID string
	Reason string
}

func (e *PartNotAvailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("part %s is not available: %s", e.PartID, e.Reason)
	}
	return fmt.Sprintf("part %s is not available", e.PartID)
}

// Is enables errors.Is() comparison for PartNotAvailableError regardless of id
func (e *PartNotAvailableError) Is(target error) bool {
	_, ok := target.(*PartNotAvailableError)
	return ok
}

// ConflictError represents a unique-constraint violation surfaced to the
// caller, e.g. two assemblies racing for the same part. Not retried silently
// since retrying could violate caller intent.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Permission and ownership errors
var (
	ErrNoTeamMembership = &PermissionDeniedError{Message: "user is not a member of any team"}
	ErrPartCreateDenied = &PermissionDeniedError{Message: "team has no permission to create parts of this type"}
	ErrAssemblyDenied   = &PermissionDeniedError{Message: "only assembly teams may assemble aircraft"}
	ErrNotPartOwnerTeam = &PermissionDeniedError{Message: "part belongs to another team"}
	ErrAdminRequired    = &PermissionDeniedError{Message: "administrator rights required"}
)

// Lifecycle errors
var (
	ErrPartInUse                 = &PartInUseError{}
	ErrPartConsumedConcurrently  = &ConflictError{Message: "part was consumed by another assembly"}
	ErrDuplicateSerialNumber     = &ConflictError{Message: "serial number already exists"}
	ErrSerialGenerationExhausted = errors.New("serial number generation exhausted retry budget")
)

// Entity Not Found Errors
var (
	ErrTeamTypeNotFound     = &NotFoundError{Entity: "team type"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrTeamMemberNotFound   = &NotFoundError{Entity: "team member"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrPartTypeNotFound     = &NotFoundError{Entity: "part type"}
	ErrPartNotFound         = &NotFoundError{Entity: "part"}
	ErrPermissionNotFound   = &NotFoundError{Entity: "team part permission"}
	ErrAircraftTypeNotFound = &NotFoundError{Entity: "aircraft type"}
	ErrAircraftNotFound     = &NotFoundError{Entity: "aircraft"}
	ErrRequirementNotFound  = &NotFoundError{Entity: "aircraft part requirement"}
)

// Already Exists Errors
var (
	ErrTeamTypeExists     = &AlreadyExistsError{Entity: "team type", Context: "with this name"}
	ErrTeamExists         = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrTeamMemberExists   = &AlreadyExistsError{Entity: "team member", Context: "for this user"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrPartTypeExists     = &AlreadyExistsError{Entity: "part type", Context: "with this name"}
	ErrAircraftTypeExists = &AlreadyExistsError{Entity: "aircraft type", Context: "with this name"}
	ErrPermissionExists   = &AlreadyExistsError{Entity: "team part permission", Context: "for this team type and part type"}
	ErrRequirementExists  = &AlreadyExistsError{Entity: "aircraft part requirement", Context: "for this aircraft type and part type"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPermissionDenied checks if an error is a PermissionDeniedError
func IsPermissionDenied(err error) bool {
	var deniedErr *PermissionDeniedError
	return errors.As(err, &deniedErr)
}

// IsPartInUse checks if an error is a PartInUseError
func IsPartInUse(err error) bool {
	var inUseErr *PartInUseError
	return errors.As(err, &inUseErr)
}

// IsPartNotAvailable checks if an error is a PartNotAvailableError
func IsPartNotAvailable(err error) bool {
	var notAvailErr *PartNotAvailableError
	return errors.As(err, &notAvailErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPermissionDeniedError creates a new PermissionDeniedError
func NewPermissionDeniedError(message string) error {
	return &PermissionDeniedError{Message: message}
}

// NewPartInUseError creates a PartInUseError naming the locked part
func NewPartInUseError(serialNumber string) error {
	return &PartInUseError{SerialNumber: serialNumber}
}

// NewPartNotAvailableError creates a PartNotAvailableError naming the part
func NewPartNotAvailableError(partID, reason string) error {
	return &PartNotAvailableError{PartID: partID, Reason: reason}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

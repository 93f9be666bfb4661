package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation      ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound        ErrorType = "NOT_FOUND"
	ErrorTypeUnauthenticated ErrorType = "UNAUTHENTICATED"
	ErrorTypeForbidden       ErrorType = "FORBIDDEN"
	ErrorTypeInternal        ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeTitleExists       ErrorCode = "TITLE_EXISTS"
	ErrCodeRoleTitleExists   ErrorCode = "ROLE_TITLE_EXISTS"
	ErrCodeInvalidRoleTitle  ErrorCode = "INVALID_ROLE_TITLE"
	ErrCodeIntegerOutOfRange ErrorCode = "INTEGER_OUT_OF_RANGE"
	ErrCodeInvalidInteger    ErrorCode = "INVALID_INTEGER"

	ErrCodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"
	ErrCodeRoleNotFound     ErrorCode = "ROLE_NOT_FOUND"
	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"

	ErrCodeNotSignedIn        ErrorCode = "NOT_SIGNED_IN"
	ErrCodeTokenAuthFailed    ErrorCode = "TOKEN_AUTH_FAILED"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeDocumentAccess     ErrorCode = "DOCUMENT_ACCESS_DENIED"
	ErrCodeDocumentEdit       ErrorCode = "DOCUMENT_EDIT_DENIED"
	ErrCodeDocumentDelete     ErrorCode = "DOCUMENT_DELETE_DENIED"
	ErrCodeSuperadminRequired ErrorCode = "SUPERADMIN_REQUIRED"
	ErrCodeAdminRequired      ErrorCode = "ADMIN_REQUIRED"
	ErrCodeProtectedRole      ErrorCode = "PROTECTED_ROLE"
	ErrCodeUserUpdate         ErrorCode = "USER_UPDATE_DENIED"
	ErrCodeUserDelete         ErrorCode = "USER_DELETE_DENIED"
)

// AppError carries the HTTP status and the exact client-facing message for a
// failure. Services return these; the transport layer surfaces Message and
// StatusCode verbatim.
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	return &AppError{
		Type:       e.Type,
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Cause:      cause,
	}
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewPermissionError returns a 401. Permission denials answer 401 (not 403)
// and clients depend on that status.
func NewPermissionError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewIntegerOutOfRangeError echoes the offending literal the same way the
// backing database reports values that do not fit a 32-bit integer column.
func NewIntegerOutOfRangeError(literal string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeIntegerOutOfRange,
		Message:    fmt.Sprintf("value %q is out of range for type integer", literal),
		StatusCode: http.StatusBadRequest,
	}
}

// NewInvalidIntegerError mirrors the database's syntax error for non-numeric
// input where an integer is expected.
func NewInvalidIntegerError(literal string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeInvalidInteger,
		Message:    fmt.Sprintf("invalid input syntax for integer: %q", literal),
		StatusCode: http.StatusBadRequest,
	}
}

var (
	ErrNotSignedIn = &AppError{
		Type:       ErrorTypeUnauthenticated,
		Code:       ErrCodeNotSignedIn,
		Message:    "You are not signed in. Please sign in.",
		StatusCode: http.StatusUnauthorized,
	}
	ErrTokenAuthFailed = &AppError{
		Type:       ErrorTypeForbidden,
		Code:       ErrCodeTokenAuthFailed,
		Message:    "Token Authentication failed",
		StatusCode: http.StatusForbidden,
	}
	ErrInvalidCredentials = &AppError{
		Type:       ErrorTypeUnauthenticated,
		Code:       ErrCodeInvalidCredentials,
		Message:    "Invalid login credentials",
		StatusCode: http.StatusUnauthorized,
	}

	ErrDocumentNotFound = NewNotFoundError("Document not found", ErrCodeDocumentNotFound)
	ErrRoleNotFound     = NewNotFoundError("Role not found", ErrCodeRoleNotFound)
	ErrUserNotFound     = NewNotFoundError("User not found", ErrCodeUserNotFound)

	ErrDocumentAccess = NewPermissionError("You are not permitted to access this document", ErrCodeDocumentAccess)
	ErrDocumentEdit   = NewPermissionError("You are not permitted to edit this document", ErrCodeDocumentEdit)
	ErrDocumentDelete = NewPermissionError("You are not permitted to delete this document", ErrCodeDocumentDelete)

	ErrSuperadminRequired = NewPermissionError("Access denied: SuperAdmin credentials required", ErrCodeSuperadminRequired)
	ErrAdminRequired      = NewPermissionError("Access denied: Admin credentials required", ErrCodeAdminRequired)
	ErrUserUpdateDenied   = NewPermissionError("You are not permitted to update this user", ErrCodeUserUpdate)
	ErrUserDeleteDenied   = NewPermissionError("You are not permitted to delete this user", ErrCodeUserDelete)

	ErrTitleExists     = NewValidationError("Title already exist", ErrCodeTitleExists)
	ErrRoleTitleExists = NewValidationError("title must be unique", ErrCodeRoleTitleExists)
	ErrProtectedRole   = NewValidationError("Seeded roles cannot be deleted", ErrCodeProtectedRole)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}

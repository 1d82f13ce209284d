package errors

import (
	"net/http"

	"custody/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Identity registration errors
	ErrAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"ALREADY_REGISTERED",
		"此地址已註冊身分",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"無效的角色",
		"",
	)

	ErrIdentityNotFound = NewBaseError(
		http.StatusNotFound,
		"IDENTITY_NOT_FOUND",
		"找不到該身分",
		"",
	)

	ErrNotRegistered = NewBaseError(
		http.StatusForbidden,
		"NOT_REGISTERED",
		"呼叫者尚未註冊身分",
		"",
	)

	ErrNotApproved = NewBaseError(
		http.StatusForbidden,
		"NOT_APPROVED",
		"身分尚未核准",
		"",
	)

	// Authorization errors
	ErrNotAuthorized = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHORIZED",
		"僅限管理員操作",
		"",
	)

	ErrNotRecipient = NewBaseError(
		http.StatusForbidden,
		"NOT_RECIPIENT",
		"僅限收件者處理此移轉",
		"",
	)

	// Asset issuance errors
	ErrEmptyName = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_NAME",
		"資產名稱不可為空",
		"",
	)

	ErrInvalidSupply = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SUPPLY",
		"總供給量必須大於零",
		"",
	)

	ErrUnexpectedParent = NewBaseError(
		http.StatusBadRequest,
		"UNEXPECTED_PARENT",
		"生產者發行的批次不可指定母批次",
		"",
	)

	ErrInvalidParent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PARENT",
		"找不到指定的母批次",
		"",
	)

	ErrParentNotOwned = NewBaseError(
		http.StatusBadRequest,
		"PARENT_NOT_OWNED",
		"未持有母批次的餘額",
		"",
	)

	ErrConsumerCannotIssue = NewBaseError(
		http.StatusBadRequest,
		"CONSUMER_CANNOT_ISSUE",
		"消費者不可發行資產",
		"",
	)

	ErrAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_FOUND",
		"找不到該資產",
		"",
	)

	// Transfer errors
	ErrInvalidRecipient = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RECIPIENT",
		"無效的收件地址",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"移轉數量必須大於零",
		"",
	)

	ErrInsufficientBalance = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_BALANCE",
		"餘額不足",
		"",
	)

	ErrRecipientNotRegistered = NewBaseError(
		http.StatusBadRequest,
		"RECIPIENT_NOT_REGISTERED",
		"收件者尚未註冊身分",
		"",
	)

	ErrRecipientNotApproved = NewBaseError(
		http.StatusBadRequest,
		"RECIPIENT_NOT_APPROVED",
		"收件者身分尚未核准",
		"",
	)

	ErrInvalidRolePath = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE_PATH",
		"角色之間不允許此移轉路徑",
		"",
	)

	ErrSenderCannotTransfer = NewBaseError(
		http.StatusBadRequest,
		"SENDER_CANNOT_TRANSFER",
		"消費者不可發起移轉",
		"",
	)

	ErrTransferNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSFER_NOT_FOUND",
		"找不到該移轉請求",
		"",
	)

	ErrTransferNotPending = NewBaseError(
		http.StatusConflict,
		"TRANSFER_NOT_PENDING",
		"移轉請求已處理完畢",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

package errors

import (
	"net/http"

	"pickup/internal/errors"
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

// Is matches any BaseError with the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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
	// Cart and checkout errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"購物車是空的",
		"",
	)

	ErrInvalidContact = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONTACT",
		"姓名或電話格式錯誤",
		"",
	)

	ErrCartOwnerRequired = NewBaseError(
		http.StatusBadRequest,
		"CART_OWNER_REQUIRED",
		"缺少購物車識別資訊",
		"",
	)

	ErrCatalogItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CATALOG_ITEM_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrItemStoreMismatch = NewBaseError(
		http.StatusBadRequest,
		"ITEM_STORE_MISMATCH",
		"商品不屬於此店家",
		"",
	)

	ErrItemUnavailable = NewBaseError(
		http.StatusConflict,
		"ITEM_UNAVAILABLE",
		"商品目前無法訂購",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"商品庫存不足",
		"",
	)

	// Order lifecycle errors
	ErrIllegalTransition = NewBaseError(
		http.StatusConflict,
		"ILLEGAL_TRANSITION",
		"目前的訂單狀態無法進行此操作",
		"",
	)

	ErrRejectionReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"REJECTION_REASON_REQUIRED",
		"拒絕訂單時必須填寫原因",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"無效的訂單狀態",
		"",
	)

	ErrConcurrentUpdate = NewBaseError(
		http.StatusConflict,
		"CONCURRENT_UPDATE",
		"訂單已被其他操作更新，請重新整理",
		"",
	)

	// Lookup errors. Phone mismatch and timeout share the not-found message so the
	// client learns nothing about the order.
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"找不到該訂單",
		"",
	)

	ErrPhoneMismatch = NewBaseError(
		http.StatusNotFound,
		"PHONE_MISMATCH",
		"找不到該訂單",
		"",
	)

	ErrLookupTimeout = NewBaseError(
		http.StatusNotFound,
		"LOOKUP_TIMEOUT",
		"找不到該訂單",
		"",
	)

	ErrInvalidPickupCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PICKUP_CODE",
		"無效的取餐條碼",
		"",
	)

	ErrTransientBackend = NewBaseError(
		http.StatusServiceUnavailable,
		"TRANSIENT_BACKEND",
		"服務暫時無法使用，請稍後再試",
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

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)

	ErrIdempotencyKeyReused = NewBaseError(
		http.StatusConflict,
		"IDEMPOTENCY_KEY_REUSED",
		"此訂單識別碼已用於其他訂單",
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

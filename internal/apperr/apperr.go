// Package apperr 定義服務層回傳給邊界層的標記錯誤
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 錯誤分類，邊界層依此決定 HTTP 狀態碼
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindNotFound
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "unexpected"
	}
}

// GenericMessage 是 Unexpected 錯誤對外顯示的唯一訊息
const GenericMessage = "Something went wrong"

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func TooManyRequests(message string) *Error {
	return &Error{Kind: KindTooManyRequests, Message: message}
}

// Unexpected 包裝基礎設施錯誤；原因只進 log，不對外
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: GenericMessage, Err: err}
}

// KindOf 取出錯誤分類，非 *Error 一律視為 Unexpected
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// HTTPStatus 對應穩定的狀態碼；Conflict 沿用既有前端約定回 400
func HTTPStatus(k Kind) int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage 回傳可安全顯示給使用者的訊息
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindUnexpected {
		return e.Message
	}
	return GenericMessage
}

// Package errs defines the typed errors shared by the client and the
// helper process. Every error carries a machine code plus a user-facing
// localized message; raw underlying errors are never shown directly.
package errs

import (
	"errors"
	"fmt"
)

// Code identifies a failure class across process boundaries.
type Code string

const (
	CodeTransportNotFound Code = "TransportNotFound"
	CodeTransportFailed   Code = "TransportFailed"
	CodeInvalidResponse   Code = "InvalidResponse"
	CodeTimeout           Code = "Timeout"
	CodeTranslationFailed Code = "TranslationFailed"
	CodeTranslationEmpty  Code = "TranslationEmpty"
	CodeSaveFailed        Code = "SaveFailed"
	CodeDuplicateEntry    Code = "DuplicateEntry"
)

// userMessages maps codes to the localized text shown to users.
var userMessages = map[Code]string{
	CodeTransportNotFound: "未找到本地翻译服务，请确认已安装辅助程序",
	CodeTransportFailed:   "无法连接本地翻译服务",
	CodeInvalidResponse:   "本地翻译服务返回了无效的响应",
	CodeTimeout:           "翻译请求超时，请稍后重试",
	CodeTranslationFailed: "翻译失败，请稍后重试",
	CodeTranslationEmpty:  "没有可翻译的内容",
	CodeSaveFailed:        "保存生词失败",
	CodeDuplicateEntry:    "该生词已存在",
}

const genericMessage = "发生未知错误，请稍后重试"

// Error is the typed error used throughout the client.
type Error struct {
	Code  Code
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.cause }

// UserMessage returns the localized text for this error's code.
func (e *Error) UserMessage() string {
	if msg, ok := userMessages[e.Code]; ok {
		return msg
	}
	return genericMessage
}

// New creates a typed error with no underlying cause.
func New(code Code) *Error {
	return &Error{Code: code}
}

// Wrap attaches a code to an underlying error. A nil cause returns a
// nil error, untyped, so the result is safe to hand to callers that
// compare against nil through the error interface.
func Wrap(code Code, cause error) error {
	if cause == nil {
		return nil
	}
	// Keep the outermost code when re-wrapping a typed error with the
	// same code, so chains don't stack identical layers.
	var typed *Error
	if errors.As(cause, &typed) && typed.Code == code {
		return typed
	}
	return &Error{Code: code, cause: cause}
}

// Wrapf is Wrap with a formatted cause.
func Wrapf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, cause: fmt.Errorf(format, args...)}
}

// CodeOf extracts the code from err, or empty string for untyped errors.
func CodeOf(err error) Code {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Code
	}
	return ""
}

// Is lets errors.Is match typed errors by code.
func (e *Error) Is(target error) bool {
	var typed *Error
	if errors.As(target, &typed) {
		return typed.Code == e.Code
	}
	return false
}

// UserMessage returns the localized message for any error. Untyped
// errors fall back to the generic message rather than leaking raw text.
func UserMessage(err error) string {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.UserMessage()
	}
	return genericMessage
}

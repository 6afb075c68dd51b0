// 指示: miu200521358
// Package io_common は入出力アダプタ共通のエラー型を提供する。
package io_common

import (
	"errors"
	"fmt"
)

// IoErrorKind は入出力エラー種別を表す。
type IoErrorKind int

const (
	// IoErrorKindExtInvalid は拡張子不一致を表す。
	IoErrorKindExtInvalid IoErrorKind = iota
	// IoErrorKindFileNotFound はファイル不存在を表す。
	IoErrorKindFileNotFound
	// IoErrorKindParseFailed は解析失敗を表す。
	IoErrorKindParseFailed
)

// String はIoErrorKindの表示名を返す。
func (k IoErrorKind) String() string {
	switch k {
	case IoErrorKindExtInvalid:
		return "ext_invalid"
	case IoErrorKindFileNotFound:
		return "file_not_found"
	case IoErrorKindParseFailed:
		return "parse_failed"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// IoError は入出力エラーを表す。
type IoError struct {
	Kind    IoErrorKind
	Path    string
	Message string
	cause   error
}

// Error はエラーメッセージを返す。
func (e *IoError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.cause.Error())
	}
	return msg
}

// Unwrap は原因エラーを返す。
func (e *IoError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// NewIoExtInvalid は拡張子不一致エラーを生成する。
func NewIoExtInvalid(path string, cause error) *IoError {
	return &IoError{Kind: IoErrorKindExtInvalid, Path: path, Message: "対応していない拡張子です", cause: cause}
}

// NewIoFileNotFound はファイル不存在エラーを生成する。
func NewIoFileNotFound(path string, cause error) *IoError {
	return &IoError{Kind: IoErrorKindFileNotFound, Path: path, Message: "ファイルが見つかりません", cause: cause}
}

// NewIoParseFailed は解析失敗エラーを生成する。
func NewIoParseFailed(message string, cause error, params ...any) *IoError {
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	return &IoError{Kind: IoErrorKindParseFailed, Message: message, cause: cause}
}

// IsKind はエラーが指定種別のIoErrorかどうかを返す。
func IsKind(err error, kind IoErrorKind) bool {
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		return false
	}
	return ioErr.Kind == kind
}

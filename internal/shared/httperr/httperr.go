// Package httperr は全フィーチャーで共有するドメインエラーの分類を定義します。
// 各エラーはHTTPステータスコード、短いラベル、メッセージ、および
// クライアントには返さない内部原因を保持します。
package httperr

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// stackDepth は取得するスタックフレーム数の上限です。
const stackDepth = 5

// Error はHTTPステータスへの対応付けが固定されたドメインエラーです。
type Error struct {
	// StatusCode は境界がレスポンスに用いるHTTPステータスコードです。
	StatusCode int

	// Status はエラー種別の短いラベルです（例: "Bad request"）。
	Status string

	// Message はクライアントに表示する詳細メッセージです。
	Message string

	// Cause はラップされた内部エラーで、サーバー側のログ専用です。
	Cause error

	stack string
}

// Error はメッセージを返します。空の場合はラベルにフォールバックします。
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Status
}

// Unwrap は内部原因をerrors.Is / errors.Asへ公開します。
func (e *Error) Unwrap() error { return e.Cause }

// Stack はエラー生成時に取得したコールスタックを返します。
// クライアントへは開発モードでのみ出力されます。
func (e *Error) Stack() string { return e.stack }

func newError(statusCode int, status, message string, cause error) *Error {
	return &Error{
		StatusCode: statusCode,
		Status:     status,
		Message:    message,
		Cause:      cause,
		stack:      captureStack(4),
	}
}

func captureStack(skip int) string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}

// BadRequest はバリデーションや永続化の書き込み失敗を表す400エラーを生成します。
func BadRequest(message string, cause error) *Error {
	return newError(http.StatusBadRequest, "Bad request", message, cause)
}

// NotFound はリソースが存在しないことを表す404エラーを生成します。
func NotFound(message string) *Error {
	return newError(http.StatusNotFound, "NotFound", message, nil)
}

// Conflict は409エラーを生成します。一意性チェック用に予約されています。
func Conflict(message string, cause error) *Error {
	return newError(http.StatusConflict, "Conflict", message, cause)
}

// Gone はルートに一致しないリクエストを表す410エラーを生成します。
func Gone(message string) *Error {
	return newError(http.StatusGone, "Gone", message, nil)
}

// Internal はより具体的な種別を持たない失敗を表す500エラーを生成します。
func Internal(message string, cause error) *Error {
	return newError(http.StatusInternalServerError, "Internal server error", message, cause)
}

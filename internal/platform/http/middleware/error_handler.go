// Package middleware はHTTP境界の横断的なginミドルウェアを提供します。
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"gamestore_backend/internal/shared/httperr"
)

// genericMessage は開発モード以外でクライアントから内部情報を隠します。
const genericMessage = "Whoops, looks like something went wrong..."

// errorBody は全エラーレスポンスのワイヤーフォーマットです。
type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	StackTrace string `json:"stackTrace,omitempty"`
}

// ErrorHandler はハンドラーから転送されたエラーをJSONレスポンスへ変換します。
// ドメインエラーは自身のステータスコードとメッセージで応答します。
// それ以外は500と固定の汎用メッセージ（開発モードでは内部詳細）で応答します。
// 境界に到達したエラーはすべてログに記録されます。
func ErrorHandler(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var herr *httperr.Error
		if errors.As(err, &herr) {
			logError(c, herr.StatusCode, err)

			body := errorBody{StatusCode: herr.StatusCode, Message: herr.Error()}
			if development {
				body.StackTrace = herr.Stack()
			}
			c.JSON(herr.StatusCode, body)
			return
		}

		logError(c, http.StatusInternalServerError, err)

		body := errorBody{StatusCode: http.StatusInternalServerError, Message: genericMessage}
		if development {
			body.Message = err.Error()
			body.StackTrace = string(debug.Stack())
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

func logError(c *gin.Context, status int, err error) {
	attrs := []any{
		"status", status,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	}
	if cause := errors.Unwrap(err); cause != nil {
		attrs = append(attrs, "cause", cause)
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
		return
	}
	slog.Warn("request rejected", attrs...)
}

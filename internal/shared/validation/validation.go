// Package validation は全フィーチャーで共有するリクエストスキーマを実装します。
// パスパラメータの識別子スキーマ、pageとlimitクエリパラメータのページネーション
// スキーマ、そしてボディのバインディング失敗を違反ルールすべてを列挙した
// 可読メッセージへ変換する処理を提供します。
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"gamestore_backend/internal/shared/httperr"
)

const (
	// MaxID は受理するリソース識別子の最大値です。
	MaxID = 2147483647

	// DefaultPage はpageクエリパラメータ省略時の既定値です。
	DefaultPage = 1

	// DefaultLimit はlimitクエリパラメータ省略時の既定値です。
	DefaultLimit = 30

	// MaxLimit はlimitクエリパラメータの上限です。
	MaxLimit = 100
)

// 違反メッセージはGoのフィールド名ではなくJSONキーでフィールドを示します。
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// ParseID はパスセグメントを[1, 2147483647]の範囲のリソース識別子へ変換します。
// 受理するのは1〜9で始まる数字列のみで、それ以外はBadRequestになります。
func ParseID(raw string) (int32, error) {
	if raw == "" {
		return 0, httperr.BadRequest("ID is required", nil)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, httperr.BadRequest("ID must be less than 2,147,483,647", err)
		}
		if _, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
			return 0, httperr.BadRequest("ID must be an integer", err)
		}
		return 0, httperr.BadRequest("ID must be a number", err)
	}

	if id < 1 {
		return 0, httperr.BadRequest("ID must be a positive integer", nil)
	}
	if id > MaxID {
		return 0, httperr.BadRequest("ID must be less than 2,147,483,647", nil)
	}
	// strconvは"+7"や"007"も受理しますが、識別子は1〜9で始まる数字列のみです。
	if raw[0] == '+' {
		return 0, httperr.BadRequest("ID must be a number", nil)
	}
	if raw[0] == '0' {
		return 0, httperr.BadRequest("ID must not contain leading zeros", nil)
	}

	return int32(id), nil
}

// ParsePage はpageクエリパラメータを検証します。省略時は既定値となり、
// 正の整数以外は拒否されます。
func ParsePage(raw string) (int, error) {
	if raw == "" {
		return DefaultPage, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, httperr.BadRequest("Invalid page number", err)
	}
	return page, nil
}

// ParseLimit はlimitクエリパラメータを検証します。省略時は既定値となり、
// [1, 100]の範囲外は拒否されます。
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return DefaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, httperr.BadRequest("Invalid limit", err)
	}
	return limit, nil
}

// BindingMessage はボディのバインディング失敗を、最初の違反だけでなく
// 違反ルールすべてを列挙したメッセージへ変換します。
func BindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldViolation(fe))
		}
		return strings.Join(msgs, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
	}

	return "Invalid request body"
}

// fieldViolation は1件のバリデーション失敗を文字列化します。min/maxタグは
// 文字列フィールドにのみ使用しているため"characters"の表現が成立します。
func fieldViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URI", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag())
	}
}

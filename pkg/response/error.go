package response

import (
	"net/http"

	"Recette/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 对外的错误类别，接口返回体中携带
const (
	KindUnsupportedFormat = "unsupported_format"
	KindPayloadTooLarge   = "payload_too_large"
	KindTooManyFiles      = "too_many_files"
	KindThumbnailFailed   = "thumbnail_failed"
	KindNotFound          = "not_found"
	KindForbidden         = "forbidden"
	KindConflict          = "conflict"
	KindUnauthorized      = "unauthorized"
	KindBadRequest        = "bad_request"
	KindInternal          = "internal"
)

type BizError struct {
	Code  int
	Kind  string
	Msg   string
	Cause error
}

func (e *BizError) Error() string {
	return e.Msg
}

func (e *BizError) Unwrap() error {
	return e.Cause
}

func NewKindError(code int, kind string, msg string) *BizError {
	return &BizError{
		Code: code,
		Kind: kind,
		Msg:  msg,
	}
}

func WrapKindError(code int, kind string, msg string, cause error) *BizError {
	return &BizError{
		Code:  code,
		Kind:  kind,
		Msg:   msg,
		Cause: cause,
	}
}

func NotFound(msg string) *BizError {
	return NewKindError(http.StatusNotFound, KindNotFound, msg)
}

func Forbidden(msg string) *BizError {
	return NewKindError(http.StatusForbidden, KindForbidden, msg)
}

func Conflict(msg string) *BizError {
	return NewKindError(http.StatusConflict, KindConflict, msg)
}

// ErrorMiddleware 兜底 panic，返回统一错误体
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
					Code: http.StatusInternalServerError,
					Kind: KindInternal,
					Msg:  "internal error",
				})
			}
		}()

		c.Next()
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}

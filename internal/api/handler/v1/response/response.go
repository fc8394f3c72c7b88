package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id,omitempty"`
}

func NewErr(statusCode int, err error) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    err.Error(),
	}
}

// RenderErr writes the error as JSON. Server-side errors are logged
// with the request ID and their message replaced before rendering, so
// internals never leak to the client.
func RenderErr(ctx *gin.Context, e *Err) {
	e.RequestID = requestid.Get(ctx)

	if e.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status_code", e.StatusCode),
			zap.String("request_id", e.RequestID),
			zap.String("error", e.Message),
		)

		e.Message = "internal server error"
	}

	ctx.JSON(e.StatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err)
}

func ErrUnauthorized(err error) *Err {
	return NewErr(http.StatusUnauthorized, err)
}

func ErrWrongCredentials(err error) *Err {
	return NewErr(http.StatusUnauthorized, err)
}

func ErrForbidden(err error) *Err {
	return NewErr(http.StatusForbidden, err)
}

func ErrNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, err)
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, err)
}

func ErrInternalServerError(err error) *Err {
	return NewErr(http.StatusInternalServerError, err)
}

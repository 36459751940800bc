package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error body every failing endpoint renders. The status code
// travels out of band.
type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"message"`
}

func (e *Err) Error() string {
	return e.Msg
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrUnauthorized(msg string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        msg,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found with %v %v", resource, key, value),
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

package response

import (
	"net/http"

	"hotel-client/errors"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope of every local API answer
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

type ResponseTotal struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total int         `json:"total"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Success",
		Total: total,
		Data:  data,
	})
}

// Created answers 201 for a new resource
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// Error answers 400 with a custom code
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Server error",
	})
}

func Unauthorized(c *gin.Context) {
	UnauthorizedWithMessage(c, "Not authenticated")
}

func UnauthorizedWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: message,
	})
}

func Forbidden(c *gin.Context) {
	ForbiddenWithMessage(c, "You do not have permission to perform this action.")
}

func ForbiddenWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: message,
	})
}

func NotFound(c *gin.Context) {
	NotFoundWithMessage(c, "Not found")
}

func NotFoundWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// Unavailable answers when the backend cannot be reached
func Unavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, Response{
		Code: 0,
		Mess: message,
	})
}

// BadGateway answers when the backend failed the request
func BadGateway(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError writes the answer matching err's code. Errors without a code
// are a server error.
func FromError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		UnauthorizedWithMessage(c, appErr.Message)
	case errors.ErrCodeForbidden:
		ForbiddenWithMessage(c, appErr.Message)
	case errors.ErrCodeNotFound, errors.ErrCodeRoomNotFound, errors.ErrCodeBookingNotFound:
		NotFoundWithMessage(c, appErr.Message)
	case errors.ErrCodeConflict, errors.ErrCodeUserExists:
		Conflict(c, appErr.Message)
	case errors.ErrCodeBackendUnavailable, errors.ErrCodeStreamClosed:
		Unavailable(c, appErr.Message)
	case errors.ErrCodeBackend:
		BadGateway(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidAmount, errors.ErrCodeInvalidRoomID, errors.ErrCodeInvalidRoomType,
		errors.ErrCodeInvalidStatus, errors.ErrCodeInvalidDate, errors.ErrCodeInvalidOperation:
		BadRequest(c, appErr.Message)
	default:
		ServerError(c)
	}
}

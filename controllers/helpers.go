package controllers

import (
	"strconv"

	"hotel-client/errors"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter. When it is not one an
// error is attached for the error handler to answer.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid "+name, errors.ErrInvalidFormat))
		return 0, false
	}
	return id, true
}

package helpers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tpoportal/internal/pkg/apperrors"
)

// ParseIDParam reads a numeric path parameter such as :id
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("Invalid "+name+": "+raw, name)
	}
	return id, nil
}

// OptionalQueryInt64 reads a numeric query parameter. Missing yields nil.
func OptionalQueryInt64(c *gin.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewValidationError(name+" must be a whole number", name)
	}
	return &v, nil
}

package api

import (
	"errors"

	"github.com/ReconfigureIO/linkbudget/service/layout"
	"github.com/ReconfigureIO/linkbudget/sugar"
	"github.com/gin-gonic/gin"
)

const (
	// listLimit caps the number of saved layouts returned by a list.
	listLimit = 100
)

var (
	errNotFound = errors.New("Not Found")
)

func bindID(c *gin.Context, id *string) bool {
	paramID := c.Param("id")
	if paramID != "" {
		*id = paramID
		return true
	}
	sugar.ErrResponse(c, 404, nil)
	return false
}

// layoutError responds 400 for a payload that is not a layout document and
// 500 for anything else.
func layoutError(c *gin.Context, err error) {
	if _, ok := err.(*layout.StructureError); ok {
		sugar.ErrResponse(c, 400, err)
		return
	}
	sugar.InternalError(c, err)
}

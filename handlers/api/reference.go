package api

import (
	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/sugar"
	"github.com/gin-gonic/gin"
)

// Reference serves the static tables a front-end offers as choices.
type Reference struct{}

// Presets lists the link presets.
func (Reference) Presets(c *gin.Context) {
	sugar.SuccessResponse(c, 200, models.LinkPresets)
}

// Modes lists the video modes. A mode's index in the list is the value of
// a layout's modeIndex.
func (Reference) Modes(c *gin.Context) {
	sugar.SuccessResponse(c, 200, models.VideoModes)
}

package api

import (
	"io/ioutil"

	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/bandwidth"
	"github.com/ReconfigureIO/linkbudget/service/layout"
	"github.com/ReconfigureIO/linkbudget/service/timing"
	"github.com/ReconfigureIO/linkbudget/sugar"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Compute handles stateless calculation requests.
type Compute struct {
	Thresholds aggregate.Thresholds
}

// PostTiming is the request body for a generated timing.
type PostTiming struct {
	H              int            `json:"h" validate:"min=1"`
	V              int            `json:"v" validate:"min=1"`
	Hz             float64        `json:"hz" validate:"is_positive"`
	Profile        models.Profile `json:"profile" validate:"is_generated_profile"`
	Margins        bool           `json:"margins"`
	Interlaced     bool           `json:"interlaced"`
	VideoOptimized bool           `json:"video_optimized"`
}

// PostBandwidth is the request body for a stream rate. Zero color and
// compression fields take their defaults.
type PostBandwidth struct {
	PixelClock  float64            `json:"pixel_clock" validate:"is_positive"`
	BPC         int                `json:"bpc" validate:"is_bpc"`
	ColorFormat models.ColorFormat `json:"color_format" validate:"is_color_format"`
	DSCRatio    float64            `json:"dsc_ratio" validate:"is_dsc_ratio"`
	UseDSC      bool               `json:"use_dsc"`
}

func (p *PostBandwidth) defaults() {
	if p.BPC == 0 {
		p.BPC = models.DefaultBPC
	}
	if p.ColorFormat == "" {
		p.ColorFormat = models.DefaultColorFormat
	}
	if p.DSCRatio == 0 {
		p.DSCRatio = models.DefaultDSCRatio
	}
}

// Timing generates a CVT timing.
func (cp Compute) Timing(c *gin.Context) {
	post := PostTiming{}
	if !sugar.BindAndValidate(c, &post) {
		return
	}
	d, err := timing.Generate(timing.Params(post))
	if err != nil {
		sugar.ErrResponse(c, 400, err)
		return
	}
	sugar.SuccessResponse(c, 200, d)
}

// Bandwidth computes the rates of one stream.
func (cp Compute) Bandwidth(c *gin.Context) {
	post := PostBandwidth{}
	if err := c.ShouldBindJSON(&post); err != nil {
		sugar.ErrResponse(c, 400, err)
		return
	}
	post.defaults()
	if !sugar.ValidateRequest(c, post) {
		return
	}
	rate := bandwidth.ForStream(
		models.TimingSpec{PixelClock: post.PixelClock},
		models.ColorMode{BPC: post.BPC, Format: post.ColorFormat},
		models.CompressionSetting{Ratio: post.DSCRatio, Active: post.UseDSC},
	)
	sugar.SuccessResponse(c, 200, rate)
}

// Capacity computes a link's payload capacity.
func (cp Compute) Capacity(c *gin.Context) {
	post := models.LinkConfig{}
	if !sugar.BindAndValidate(c, &post) {
		return
	}
	sugar.SuccessResponse(c, 200, bandwidth.PayloadCapacity(post))
}

// LayoutReport is a normalized layout with its aggregate report.
type LayoutReport struct {
	Layout   models.Layout      `json:"layout"`
	Capacity bandwidth.Capacity `json:"capacity"`
	Report   aggregate.Report   `json:"report"`
}

func newLayoutReport(l models.Layout, th aggregate.Thresholds) LayoutReport {
	st := layout.FromLayout(l, th)
	report := st.Recompute()
	return LayoutReport{
		Layout:   layout.ToLayout(st),
		Capacity: st.Capacity(),
		Report:   report,
	}
}

// Report imports a layout document from the body and reports on it.
func (cp Compute) Report(c *gin.Context) {
	body, err := ioutil.ReadAll(c.Request.Body)
	if err != nil {
		sugar.ErrResponse(c, 400, err)
		return
	}
	l, err := layout.Decode(body)
	if err != nil {
		layoutError(c, err)
		return
	}
	lr := newLayoutReport(l, cp.Thresholds)
	log.WithFields(log.Fields{
		"streams": len(lr.Layout.Timings),
		"status":  lr.Report.Status,
	}).Debug("computed report")
	sugar.SuccessResponse(c, 200, lr)
}

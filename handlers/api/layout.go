package api

import (
	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/archive"
	"github.com/ReconfigureIO/linkbudget/service/layout"
	"github.com/ReconfigureIO/linkbudget/service/storage"
	"github.com/ReconfigureIO/linkbudget/sugar"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Layout handles saved layout requests.
type Layout struct {
	Repo       models.LayoutRepo
	Storage    storage.Service
	Thresholds aggregate.Thresholds
}

// ByID gets the saved layout by ID, 404 if it doesn't exist.
func (l Layout) ByID(c *gin.Context) (models.SavedLayout, error) {
	var id string
	if !bindID(c, &id) {
		return models.SavedLayout{}, errNotFound
	}
	saved, err := l.Repo.ByID(id)
	if err != nil {
		sugar.NotFoundOrError(c, err)
		return saved, err
	}
	return saved, nil
}

// bindLayout binds a PostLayout and normalizes its layout through the
// importer, so only documents that would import are stored.
func (l Layout) bindLayout(c *gin.Context) (string, models.Layout, bool) {
	post := models.PostLayout{}
	if !sugar.BindAndValidate(c, &post) {
		return "", models.Layout{}, false
	}
	st, err := layout.Import(post.Layout, l.Thresholds)
	if err != nil {
		layoutError(c, err)
		return "", models.Layout{}, false
	}
	st.Recompute()
	return post.Name, layout.ToLayout(st), true
}

// SavedLayoutBody is a saved layout together with its document.
type SavedLayoutBody struct {
	models.SavedLayout
	Layout models.Layout `json:"layout"`
}

func (l Layout) body(c *gin.Context, saved models.SavedLayout) (SavedLayoutBody, bool) {
	doc, err := saved.Layout()
	if err != nil {
		sugar.InternalError(c, err)
		return SavedLayoutBody{}, false
	}
	return SavedLayoutBody{SavedLayout: saved, Layout: doc}, true
}

// List lists the most recently updated layouts.
func (l Layout) List(c *gin.Context) {
	layouts, err := l.Repo.List(listLimit)
	if err != nil {
		sugar.InternalError(c, err)
		return
	}
	sugar.SuccessResponse(c, 200, layouts)
}

// Create saves a new layout.
func (l Layout) Create(c *gin.Context) {
	name, doc, ok := l.bindLayout(c)
	if !ok {
		return
	}
	saved, err := l.Repo.Create(name, doc)
	if err != nil {
		sugar.InternalError(c, err)
		return
	}
	log.WithFields(log.Fields{"id": saved.ID, "streams": len(doc.Timings)}).Info("saved layout")
	sugar.SuccessResponse(c, 201, SavedLayoutBody{SavedLayout: saved, Layout: doc})
}

// Get fetches a saved layout.
func (l Layout) Get(c *gin.Context) {
	saved, err := l.ByID(c)
	if err != nil {
		return
	}
	if resp, ok := l.body(c, saved); ok {
		sugar.SuccessResponse(c, 200, resp)
	}
}

// Update replaces a saved layout. A body that does not import leaves the
// stored layout untouched.
func (l Layout) Update(c *gin.Context) {
	var id string
	if !bindID(c, &id) {
		return
	}
	name, doc, ok := l.bindLayout(c)
	if !ok {
		return
	}
	saved, err := l.Repo.Update(id, name, doc)
	if err != nil {
		sugar.NotFoundOrError(c, err)
		return
	}
	sugar.SuccessResponse(c, 200, SavedLayoutBody{SavedLayout: saved, Layout: doc})
}

// Delete removes a saved layout.
func (l Layout) Delete(c *gin.Context) {
	var id string
	if !bindID(c, &id) {
		return
	}
	if err := l.Repo.Delete(id); err != nil {
		sugar.NotFoundOrError(c, err)
		return
	}
	c.Status(204)
}

// Report recomputes a saved layout.
func (l Layout) Report(c *gin.Context) {
	saved, err := l.ByID(c)
	if err != nil {
		return
	}
	doc, err := saved.Layout()
	if err != nil {
		sugar.InternalError(c, err)
		return
	}
	sugar.SuccessResponse(c, 200, newLayoutReport(doc, l.Thresholds))
}

// Archive exports a saved layout to storage and returns its location.
func (l Layout) Archive(c *gin.Context) {
	saved, err := l.ByID(c)
	if err != nil {
		return
	}
	url, err := archive.Layout(l.Storage, saved, l.Thresholds)
	if err != nil {
		sugar.InternalError(c, err)
		return
	}
	log.WithFields(log.Fields{"id": saved.ID, "url": url}).Info("archived layout")
	sugar.SuccessResponse(c, 200, sugar.M{"url": url})
}

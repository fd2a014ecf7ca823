// Package archive exports saved layouts to a storage service.
package archive

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/layout"
	"github.com/ReconfigureIO/linkbudget/service/storage"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

const batchSize = 100

// Key is the storage key of a saved layout's export.
func Key(id string) string {
	return fmt.Sprintf("layouts/%s.json", id)
}

// Layout normalizes saved through the importer, exports it and uploads the
// document. It returns the document's location.
func Layout(store storage.Service, saved models.SavedLayout, th aggregate.Thresholds) (string, error) {
	doc, err := saved.Layout()
	if err != nil {
		return "", err
	}
	data, err := layout.Export(layout.FromLayout(doc, th))
	if err != nil {
		return "", err
	}
	return store.Upload(Key(saved.ID), bytes.NewReader(data))
}

// Archiver uploads every layout updated since its last run.
type Archiver struct {
	Repo       models.LayoutRepo
	Storage    storage.Service
	Thresholds aggregate.Thresholds

	// Since and SinceID identify the last archived layout. Layouts are
	// visited in (updated_at, id) order.
	Since   time.Time
	SinceID string

	mu      sync.Mutex
	running int32
}

// Job returns a to be scheduled with cron. A tick that arrives while a
// previous run is still in progress is skipped.
func (a *Archiver) Job() cron.Job {
	return cron.FuncJob(func() {
		if !atomic.CompareAndSwapInt32(&a.running, 0, 1) {
			log.Warn("previous archive run still in progress, skipping")
			return
		}
		defer atomic.StoreInt32(&a.running, 0)
		if _, err := a.Run(); err != nil {
			log.WithError(err).Error("archive run failed")
		}
	})
}

// Run archives the layouts updated after the cursor, oldest first, and
// advances the cursor past each uploaded layout. It stops at the first
// failure so that the failed layout is retried on the next run.
func (a *Archiver) Run() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	archived := 0
	for {
		layouts, err := a.Repo.UpdatedSince(a.Since, a.SinceID, batchSize)
		if err != nil {
			return archived, err
		}
		for _, saved := range layouts {
			url, err := Layout(a.Storage, saved, a.Thresholds)
			if err != nil {
				return archived, err
			}
			log.WithFields(log.Fields{"id": saved.ID, "url": url}).Debug("archived layout")
			a.Since, a.SinceID = saved.UpdatedAt, saved.ID
			archived++
		}
		if len(layouts) < batchSize {
			break
		}
	}
	log.Printf("archived %d layouts", archived)
	return archived, nil
}

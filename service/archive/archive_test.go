package archive

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"testing"
	"time"

	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/layout"
	"github.com/ReconfigureIO/linkbudget/service/storage"
	"github.com/fortytw2/leaktest"
	"github.com/golang/mock/gomock"
)

const body = `{"timings":[{"id":"s1","h":1920,"v":1080,"hz":60,"cvtKind":"cvt"}],"presetId":"hbr2"}`

func TestLayout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	store := storage.NewMockService(mockCtrl)

	var uploaded []byte
	store.EXPECT().Upload("layouts/foo.json", gomock.Any()).Do(func(key string, r io.Reader) {
		uploaded, _ = ioutil.ReadAll(r)
	}).Return("file://layouts/foo.json", nil)

	url, err := Layout(store, models.SavedLayout{ID: "foo", Body: body}, aggregate.DefaultThresholds())
	if err != nil || url != "file://layouts/foo.json" {
		t.Fatalf("unexpected result %q %v", url, err)
	}

	st, err := layout.Import(uploaded, aggregate.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	if st.PresetID != "hbr2" || st.Slots[0].Timing.PixelClock != 173 {
		t.Errorf("unexpected archived layout %s", uploaded)
	}
}

func TestArchiverRun(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	repo := models.NewMockLayoutRepo(mockCtrl)
	store := storage.NewMockService(mockCtrl)

	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	first := models.SavedLayout{ID: "a", Body: body, UpdatedAt: start.Add(time.Minute)}
	second := models.SavedLayout{ID: "b", Body: body, UpdatedAt: start.Add(2 * time.Minute)}

	repo.EXPECT().UpdatedSince(start, "", batchSize).Return([]models.SavedLayout{first, second}, nil)
	store.EXPECT().Upload("layouts/a.json", gomock.Any()).Return("a", nil)
	store.EXPECT().Upload("layouts/b.json", gomock.Any()).Return("", errors.New("bucket gone"))
	store.EXPECT().Upload("layouts/b.json", gomock.Any()).Return("b", nil)

	a := &Archiver{Repo: repo, Storage: store, Thresholds: aggregate.DefaultThresholds(), Since: start}

	n, err := a.Run()
	if err == nil || n != 1 {
		t.Fatalf("expected a failure after one layout, got %d %v", n, err)
	}
	if !a.Since.Equal(first.UpdatedAt) {
		t.Errorf("expected to resume after the first layout, got %v", a.Since)
	}

	repo.EXPECT().UpdatedSince(first.UpdatedAt, "a", batchSize).Return([]models.SavedLayout{second}, nil)
	n, err = a.Run()
	if err != nil || n != 1 {
		t.Fatalf("unexpected result %d %v", n, err)
	}
	if !a.Since.Equal(second.UpdatedAt) || a.SinceID != "b" {
		t.Errorf("expected to resume after the second layout, got %v %q", a.Since, a.SinceID)
	}
}

func TestArchiverRunSharedUpdateTime(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	repo := models.NewMockLayoutRepo(mockCtrl)
	store := storage.NewMockService(mockCtrl)

	bulk := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	full := make([]models.SavedLayout, batchSize)
	for i := range full {
		full[i] = models.SavedLayout{ID: fmt.Sprintf("l%03d", i), Body: body, UpdatedAt: bulk}
	}
	last := models.SavedLayout{ID: "l100", Body: body, UpdatedAt: bulk}

	gomock.InOrder(
		repo.EXPECT().UpdatedSince(time.Time{}, "", batchSize).Return(full, nil),
		repo.EXPECT().UpdatedSince(bulk, "l099", batchSize).Return([]models.SavedLayout{last}, nil),
	)
	store.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("ok", nil).Times(batchSize + 1)

	a := &Archiver{Repo: repo, Storage: store, Thresholds: aggregate.DefaultThresholds()}
	n, err := a.Run()
	if err != nil || n != batchSize+1 {
		t.Fatalf("\nExpected: %+v\nGot:      %+v %v\n", batchSize+1, n, err)
	}
	if !a.Since.Equal(bulk) || a.SinceID != "l100" {
		t.Errorf("unexpected cursor %v %q", a.Since, a.SinceID)
	}
}

func TestArchiverJobSkipsOverlappingTick(t *testing.T) {
	defer leaktest.Check(t)()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	repo := models.NewMockLayoutRepo(mockCtrl)
	store := storage.NewMockService(mockCtrl)

	started := make(chan struct{})
	release := make(chan struct{})
	saved := models.SavedLayout{ID: "a", Body: body, UpdatedAt: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
	repo.EXPECT().UpdatedSince(time.Time{}, "", batchSize).Return([]models.SavedLayout{saved}, nil).Times(1)
	store.EXPECT().Upload("layouts/a.json", gomock.Any()).Do(func(key string, r io.Reader) {
		close(started)
		<-release
	}).Return("a", nil)

	a := &Archiver{Repo: repo, Storage: store, Thresholds: aggregate.DefaultThresholds()}
	job := a.Job()

	done := make(chan struct{})
	go func() {
		job.Run()
		close(done)
	}()
	<-started
	job.Run()
	close(release)
	<-done

	if a.SinceID != "a" {
		t.Errorf("expected the cursor after a, got %q", a.SinceID)
	}
}

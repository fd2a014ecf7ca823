package models

//go:generate mockgen -source=saved_layout.go -package=models -destination=saved_layout_mock.go

import (
	"encoding/json"
	"time"

	"github.com/jinzhu/gorm"
)

// LayoutRepo stores named layouts.
type LayoutRepo interface {
	List(limit int) ([]SavedLayout, error)
	UpdatedSince(since time.Time, afterID string, limit int) ([]SavedLayout, error)
	ByID(id string) (SavedLayout, error)
	Create(name string, layout Layout) (SavedLayout, error)
	Update(id string, name string, layout Layout) (SavedLayout, error)
	Delete(id string) error
}

type layoutRepo struct{ db *gorm.DB }

// LayoutDataSource returns the data source for saved layouts.
func LayoutDataSource(db *gorm.DB) LayoutRepo {
	return &layoutRepo{db: db}
}

// SavedLayout model.
type SavedLayout struct {
	uuidHook
	ID        string    `gorm:"primary_key" json:"id"`
	Name      string    `json:"name"`
	Body      string    `json:"-" sql:"type:text NOT NULL"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Layout decodes the stored body.
func (s SavedLayout) Layout() (Layout, error) {
	var l Layout
	err := json.Unmarshal([]byte(s.Body), &l)
	return l, err
}

// PostLayout is the post request body for a new or replaced layout. Layout
// is kept raw so that it goes through the layout importer.
type PostLayout struct {
	Name   string          `json:"name" validate:"nonzero"`
	Layout json.RawMessage `json:"layout"`
}

func (repo *layoutRepo) List(limit int) ([]SavedLayout, error) {
	var layouts []SavedLayout
	err := repo.db.Order("updated_at DESC").Limit(limit).Find(&layouts).Error
	return layouts, err
}

// UpdatedSince pages through layouts in (updated_at, id) order, starting
// after the layout with update time since and id afterID.
func (repo *layoutRepo) UpdatedSince(since time.Time, afterID string, limit int) ([]SavedLayout, error) {
	var layouts []SavedLayout
	err := repo.db.
		Where("updated_at > ? OR (updated_at = ? AND id > ?)", since, since, afterID).
		Order("updated_at ASC, id ASC").
		Limit(limit).
		Find(&layouts).Error
	return layouts, err
}

func (repo *layoutRepo) ByID(id string) (SavedLayout, error) {
	layout := SavedLayout{}
	err := repo.db.First(&layout, "saved_layouts.id = ?", id).Error
	return layout, err
}

func (repo *layoutRepo) Create(name string, layout Layout) (SavedLayout, error) {
	body, err := json.Marshal(layout)
	if err != nil {
		return SavedLayout{}, err
	}
	saved := SavedLayout{Name: name, Body: string(body)}
	err = repo.db.Create(&saved).Error
	return saved, err
}

func (repo *layoutRepo) Update(id string, name string, layout Layout) (SavedLayout, error) {
	body, err := json.Marshal(layout)
	if err != nil {
		return SavedLayout{}, err
	}
	saved, err := repo.ByID(id)
	if err != nil {
		return saved, err
	}
	err = repo.db.Model(&saved).Updates(SavedLayout{Name: name, Body: string(body)}).Error
	return saved, err
}

func (repo *layoutRepo) Delete(id string) error {
	saved, err := repo.ByID(id)
	if err != nil {
		return err
	}
	return repo.db.Delete(&saved).Error
}

package migration202610140900

import (
	"time"

	"github.com/jinzhu/gorm"
	"gopkg.in/gormigrate.v1"
)

// SavedLayout is the saved_layouts table as first created.
type SavedLayout struct {
	ID        string `gorm:"primary_key"`
	Name      string
	Body      string `sql:"type:text NOT NULL"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

var Migration = gormigrate.Migration{
	ID: "202610140900",
	Migrate: func(tx *gorm.DB) error {
		return tx.AutoMigrate(&SavedLayout{}).Error
	},
	Rollback: func(tx *gorm.DB) error {
		return tx.DropTable("saved_layouts").Error
	},
}

package migration202610141130

import (
	"github.com/jinzhu/gorm"
	"gopkg.in/gormigrate.v1"
)

const indexName = "idx_saved_layouts_updated_at"

// Migration indexes saved layouts by recency for listing and archiving.
var Migration = gormigrate.Migration{
	ID: "202610141130",
	Migrate: func(tx *gorm.DB) error {
		return tx.Table("saved_layouts").AddIndex(indexName, "updated_at", "id").Error
	},
	Rollback: func(tx *gorm.DB) error {
		return tx.Table("saved_layouts").RemoveIndex(indexName).Error
	},
}

package migration

import (
	"github.com/ReconfigureIO/linkbudget/migration/migration202610140900"
	"github.com/ReconfigureIO/linkbudget/migration/migration202610141130"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gormigrate.v1"
)

// Migrations are the schema changes in application order.
var Migrations = []*gormigrate.Migration{
	&migration202610140900.Migration,
	&migration202610141130.Migration,
}

// MigrateAll performs database migration.
func MigrateAll(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations)
	if err := m.Migrate(); err != nil {
		return err
	}
	log.Printf("Migration did run successfully")
	return nil
}

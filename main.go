package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ReconfigureIO/linkbudget/config"
	"github.com/ReconfigureIO/linkbudget/handlers/api"
	"github.com/ReconfigureIO/linkbudget/migration"
	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/routes"
	"github.com/ReconfigureIO/linkbudget/service/archive"
	"github.com/ReconfigureIO/linkbudget/service/storage"
	"github.com/ReconfigureIO/linkbudget/service/storage/localfile"
	"github.com/ReconfigureIO/linkbudget/service/storage/s3"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	conf *config.Config
	db   *gorm.DB

	RootCmd = &cobra.Command{
		Use:              "linkbudget",
		Short:            "Display link bandwidth planning service",
		PersistentPreRun: setup,
		Run: func(*cobra.Command, []string) {
			serveCmd()
		},
	}

	version string
)

func setup(*cobra.Command, []string) {
	var err error
	conf, err = config.ParseEnvConfig()
	if err != nil {
		log.Fatal(err)
	}

	err = config.SetupLogging(version, conf)
	if err != nil {
		log.Fatal(err)
	}

	db = config.SetupDB(conf)
}

func main() {
	RootCmd.AddCommand(commands...)

	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var commands = []*cobra.Command{
	&cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Run: func(*cobra.Command, []string) {
			serveCmd()
		},
	},
	&cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Run: func(*cobra.Command, []string) {
			migrateCmd()
		},
	},
	&cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(*cobra.Command, []string) {
			healthCmd()
		},
	},
	&cobra.Command{
		Use:   "archiver",
		Short: "Periodically archive updated layouts to storage",
		Run: func(*cobra.Command, []string) {
			archiverCmd()
		},
	},
}

func newStorage(conf storage.ServiceConfig) (storage.Service, error) {
	switch conf.Backend {
	case "local":
		return localfile.Service(conf.Dir), nil
	case "s3":
		return s3.New(conf), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.Backend)
	}
}

func serveCmd() {
	if conf.Link.Migrate {
		migrateCmd()
	}

	store, err := newStorage(conf.Link.Storage)
	if err != nil {
		log.Fatal(err)
	}

	if conf.Link.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		if err := db.DB().Ping(); err != nil {
			c.String(500, "error connecting to db")
		} else {
			c.String(200, "OK")
		}
	})

	th := conf.Link.Thresholds
	routes.SetupRoutes(r, conf.Link.Origins(), routes.Handlers{
		Compute: api.Compute{Thresholds: th},
		Layout: api.Layout{
			Repo:       models.LayoutDataSource(db),
			Storage:    store,
			Thresholds: th,
		},
	})

	log.WithFields(log.Fields{"port": conf.Port, "version": version}).Info("starting server")
	if err := r.Run(":" + conf.Port); err != nil {
		log.Fatal(err)
	}
}

func migrateCmd() {
	if err := migration.MigrateAll(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

func healthCmd() {
	if err := db.DB().Ping(); err != nil {
		exitWithErr("error connecting to db")
	}
}

func archiverCmd() {
	every, err := time.ParseDuration(conf.Link.ArchiveEvery)
	if err != nil {
		log.Fatalf("invalid archive interval: %v", err)
	}
	store, err := newStorage(conf.Link.Storage)
	if err != nil {
		log.Fatal(err)
	}

	archiver := &archive.Archiver{
		Repo:       models.LayoutDataSource(db),
		Storage:    store,
		Thresholds: conf.Link.Thresholds,
	}

	worker := cron.New()
	worker.Schedule(cron.Every(every), archiver.Job())

	worker.Start()
	log.Printf("starting archiver every %s", every)

	waitForever := make(chan struct{})
	<-waitForever
}

func exitWithErr(err interface{}) {
	log.Println(err)
	os.Exit(1)
}

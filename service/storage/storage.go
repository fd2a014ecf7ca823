package storage

//go:generate mockgen -source=storage.go -package=storage -destination=storage_mock.go

import "io"

// A Service provides a content store for exported layouts.
// It is implemented by service/storage/s3.Service and
// service/storage/localfile.Service.
type Service interface {
	// Upload stores the contents of r under key and returns its location.
	Upload(key string, r io.Reader) (string, error)
	Download(key string) (io.ReadCloser, error)
}

// ServiceConfig selects and configures the storage backend.
type ServiceConfig struct {
	Backend string `env:"LINK_STORAGE" envDefault:"local"`
	Dir     string `env:"LINK_STORAGE_DIR" envDefault:"exports"`
	Bucket  string `env:"LINK_S3_BUCKET" envDefault:"linkbudget-exports"`
	Region  string `env:"LINK_S3_REGION" envDefault:"us-east-1"`
}

package storage

import (
	"context"
	"io"

	"github.com/dmitrymomot/reqdata/pkg/content"
)

// Storage persists uploaded file payloads.
type Storage interface {
	// Put stores the payload of f.
	// Options can customize key, prefix, tenant, ACL, content type and validation.
	Put(ctx context.Context, f content.File, opts ...Option) (*FileInfo, error)

	// Get retrieves a stored file.
	// The caller is responsible for closing the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, key string) error

	// URL generates a URL for accessing the file.
	URL(ctx context.Context, key string, opts ...URLOption) (string, error)
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"STORAGE_BUCKET"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `env:"STORAGE_ACCESS_KEY"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `env:"STORAGE_SECRET_KEY"`

	// Endpoint is a custom endpoint for MinIO and other S3-compatible services.
	Endpoint string `env:"STORAGE_ENDPOINT"`

	// Region defaults to us-east-1.
	Region string `env:"STORAGE_REGION" envDefault:"us-east-1"`

	// PublicURL is a CDN prefix used for public URLs instead of the bucket URL.
	PublicURL string `env:"STORAGE_PUBLIC_URL"`

	// DefaultACL applies to uploads without WithACL (default: private).
	DefaultACL ACL `env:"STORAGE_DEFAULT_ACL" envDefault:"private"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"STORAGE_PATH_STYLE"`
}

// FileInfo describes a stored file.
type FileInfo struct {
	// Key is the storage key (path) for the file.
	Key string

	// Name is the client-supplied file name, if any.
	Name string

	// ContentType is the MIME type detected from the payload.
	ContentType string

	ACL  ACL
	Size int64
}

// ACL represents access control levels for stored files.
type ACL string

const (
	// ACLPrivate makes the file accessible only via signed URLs.
	ACLPrivate ACL = "private"

	// ACLPublicRead makes the file publicly readable.
	ACLPublicRead ACL = "public-read"
)

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.DefaultACL == "" {
		c.DefaultACL = ACLPrivate
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

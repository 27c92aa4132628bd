// Package storage persists files uploaded through multipart forms.
//
// Payloads arrive as content.File values that are already read into memory.
// The MIME type is sniffed from the payload, never taken from the client.
//
// # Basic Usage
//
//	store, err := storage.New(storage.Config{
//		Bucket:    "uploads",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//
//	n, _ := c.Get("avatar")
//	infos, err := storage.PutNode(ctx, store, n,
//		storage.WithPrefix("avatars"),
//		storage.WithValidation(storage.MaxSize(5<<20), storage.ImageOnly()),
//	)
//
// Keys default to "{tenant}/{prefix}/{uuid}{ext}". Validation failures are
// returned as *FileValidationError; S3 failures map onto the package sentinels
// (ErrNotFound, ErrAccessDenied, ErrUploadFailed, ...).
//
// MemoryStorage implements the same interface for tests and local development.
package storage

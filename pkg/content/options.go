package content

// Default body limits.
const (
	DefaultMaxBodySize = 10 << 20 // 10MB
	DefaultMaxMemory   = 32 << 20 // 32MB, same as net/http
)

// Config holds request decoding limits.
type Config struct {
	// MaxBodySize caps the number of body bytes read from a request.
	MaxBodySize int64 `env:"CONTENT_MAX_BODY_SIZE" envDefault:"10485760"`
	// MaxMemory is the part of a multipart body kept in memory; the rest spills to temp files.
	MaxMemory int64 `env:"CONTENT_MAX_MEMORY" envDefault:"33554432"`
}

// Options converts the config into decoding options.
// Zero values keep the defaults.
func (c Config) Options() []Option {
	return []Option{
		WithMaxBodySize(c.MaxBodySize),
		WithMaxMemory(c.MaxMemory),
	}
}

// Option configures FromRequest.
type Option func(*options)

type options struct {
	maxBodySize int64
	maxMemory   int64
}

func buildOptions(opts ...Option) *options {
	o := &options{
		maxBodySize: DefaultMaxBodySize,
		maxMemory:   DefaultMaxMemory,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMaxBodySize sets the maximum request body size in bytes.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// WithMaxMemory sets how much of a multipart body is held in memory.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

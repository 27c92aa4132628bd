package storage

// Option configures Put operations.
type Option func(*putOptions)

type putOptions struct {
	key             string
	prefix          string
	tenant          string
	contentType     string
	field           string
	acl             ACL
	validationRules []ValidationRule
}

func buildPutOptions(defaultACL ACL, opts ...Option) *putOptions {
	o := &putOptions{acl: defaultACL}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithKey sets an explicit storage key instead of a generated one.
func WithKey(key string) Option {
	return func(o *putOptions) {
		o.key = key
	}
}

// WithPrefix adds a path segment after the tenant and before the file name.
// WithPrefix("avatars") yields "avatars/{uuid}.{ext}".
func WithPrefix(prefix string) Option {
	return func(o *putOptions) {
		o.prefix = prefix
	}
}

// WithTenant makes the tenant ID the first path segment.
func WithTenant(id string) Option {
	return func(o *putOptions) {
		o.tenant = id
	}
}

// WithContentType overrides the sniffed content type.
func WithContentType(ct string) Option {
	return func(o *putOptions) {
		o.contentType = ct
	}
}

// WithACL overrides the default ACL for this upload.
func WithACL(acl ACL) Option {
	return func(o *putOptions) {
		o.acl = acl
	}
}

// WithField names the form field the file came from, for validation errors.
func WithField(name string) Option {
	return func(o *putOptions) {
		o.field = name
	}
}

// WithValidation adds rules checked before upload.
// A failing rule aborts the upload with a *FileValidationError.
func WithValidation(rules ...ValidationRule) Option {
	return func(o *putOptions) {
		o.validationRules = append(o.validationRules, rules...)
	}
}

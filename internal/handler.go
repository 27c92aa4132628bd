package internal

// Handler declares routes on a router.
//
// Example:
//
//	type UploadHandler struct {
//	    store storage.Storage
//	}
//
//	func (h *UploadHandler) Routes(r reqdata.Router) {
//	    r.POST("/avatars", h.upload)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func RequireToken(next reqdata.HandlerFunc) reqdata.HandlerFunc {
//	    return func(c reqdata.Context) error {
//	        if _, ok := c.InputText("token"); !ok {
//	            return reqdata.ErrBadRequest("token is required")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error

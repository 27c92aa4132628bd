// Package content exposes the data of a single HTTP request through one uniform,
// lazily coerced accessor.
//
// Request data arrives through three channels: URL query parameters, a structured
// body (JSON or YAML) and form fields, which may carry uploaded files. Content merges
// them so handlers can look a value up without knowing where it came from.
//
// # Lookup
//
// Build Content from a request and look values up by name or position:
//
//	c, err := content.FromRequest(r)
//	if err != nil {
//		return err // content.ErrMalformedBody or content.ErrBodyTooLarge
//	}
//
//	if n, ok := c.Get("page"); ok {
//		page, _ := n.Int()
//	}
//
//	first, ok := c.Index(0) // query "0", JSON array element 0, then form field "0"
//
// Sources are tried in a fixed order: query, JSON body, form fields. The first hit
// wins. A missing key and a value of the wrong type both surface as a false ok
// value; lookups never return errors.
//
// # Nodes
//
// Every value is a Node. Nodes convert themselves on demand and never cache the
// result, so the same node may be read as text and as a number:
//
//	n, _ := c.Get("limit")
//	s, _ := n.Text()   // "3.9"
//	i, _ := n.Int()    // 3, truncated toward zero
//	b, _ := n.Bool()   // true
//
// Numbers are parsed as float64 and narrowed. Booleans use a permissive rule that
// looks only at the first character: "t", "y" and digits 1-9 are true, anything
// else is false.
//
// Use As for typed access:
//
//	limit, ok := content.As[int](n)
//
// # Form fields
//
// Form fields are MultiPart values: a text input, a single file or several files
// sent under one name. Only inputs coerce to scalars.
//
//	n, _ := c.Get("avatar")
//	if mp, ok := n.(content.MultiPart); ok {
//		if f, ok := mp.File(); ok {
//			fmt.Println(f.Name, f.Type, f.Size())
//		}
//	}
//
// # Query parsing
//
// ParseQuery splits on the first '?', then on '&' and '='. Pairs without '=' or with
// invalid escapes are dropped individually. '+' is not decoded as a space.
package content

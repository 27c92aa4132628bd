package content

import (
	"maps"
	"strconv"
)

// Content merges the query string, a decoded JSON body and form fields of one
// request behind a single lookup API.
//
// Lookups try the sources in a fixed order: query, then JSON, then form. The
// first source holding the key wins, so a query parameter is never shadowed by
// body content. Content is immutable and safe for concurrent reads.
type Content struct {
	query map[string]string
	json  JSONValue
	form  map[string]MultiPart

	hasJSON bool
}

// New assembles Content from already decoded sources.
// tree is a decoded JSON document or nil if the request had none. The maps
// are copied but tree is kept as is: the caller hands it over and must not
// modify it afterwards. Nodes returned by lookups share that tree and the
// stored file buffers, and are read-only.
// form may be nil if the request carried no form fields.
func New(query map[string]string, tree any, form map[string]MultiPart) *Content {
	c := &Content{
		query:   maps.Clone(query),
		form:    maps.Clone(form),
		hasJSON: tree != nil,
	}
	if c.query == nil {
		c.query = map[string]string{}
	}
	if c.hasJSON {
		c.json = NewJSON(tree)
	}
	return c
}

// Index looks up a positional value: query["<i>"], then element i of a JSON
// array body, then form field "<i>".
func (c *Content) Index(i int) (Node, bool) {
	key := strconv.Itoa(i)
	if v, ok := c.query[key]; ok {
		return Text(v), true
	}
	if c.hasJSON {
		if v, ok := c.json.Index(i); ok {
			return v, true
		}
	}
	if v, ok := c.form[key]; ok {
		return v, true
	}
	return nil, false
}

// Get looks up a named value: query[key], then member key of a JSON object
// body, then form field key.
func (c *Content) Get(key string) (Node, bool) {
	if v, ok := c.query[key]; ok {
		return Text(v), true
	}
	if c.hasJSON {
		if v, ok := c.json.Key(key); ok {
			return v, true
		}
	}
	if v, ok := c.form[key]; ok {
		return v, true
	}
	return nil, false
}

// Has reports whether any source holds key.
func (c *Content) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Query returns a copy of the parsed query parameters.
func (c *Content) Query() map[string]string {
	return maps.Clone(c.query)
}

// JSON returns the decoded body tree, if the request had one.
func (c *Content) JSON() (JSONValue, bool) {
	return c.json, c.hasJSON
}

// Form returns a copy of the decoded form fields. Nil if the request had none.
func (c *Content) Form() map[string]MultiPart {
	return maps.Clone(c.form)
}

package content

import "reflect"

// Node is a request value that can be coerced to concrete types on demand.
//
// Every accessor derives its result from the value's canonical form on each call;
// nothing is cached. A false second return value means the value does not fit the
// requested type. It is never an error.
//
// The set of implementations is closed: Text, JSONValue and MultiPart.
type Node interface {
	// IsNull reports whether the canonical text form is exactly "null".
	IsNull() bool

	Bool() (bool, bool)
	Int() (int, bool)
	Uint() (uint, bool)
	Float() (float32, bool)
	Double() (float64, bool)

	// Text returns the value's own textual form.
	// Containers and files have none.
	Text() (string, bool)

	// Array returns the value as a sequence.
	// Scalars yield a single element containing themselves.
	Array() ([]Node, bool)

	// Object returns the members of a JSON object.
	Object() (map[string]Node, bool)

	// JSON returns a JSON tree view of the value.
	JSON() (JSONValue, bool)

	node()
}

// Scalar is the set of types a Node can be converted to with As.
type Scalar interface {
	~string | ~bool | ~int | ~int64 | ~uint | ~float32 | ~float64
}

// As converts n to T using the Node accessor matching T's underlying kind.
// Returns the zero value and false if n is nil or does not fit T.
func As[T Scalar](n Node) (T, bool) {
	var out T
	if n == nil {
		return out, false
	}

	rv := reflect.ValueOf(&out).Elem()
	switch rv.Kind() {
	case reflect.String:
		v, ok := n.Text()
		if !ok {
			return out, false
		}
		rv.SetString(v)
	case reflect.Bool:
		v, ok := n.Bool()
		if !ok {
			return out, false
		}
		rv.SetBool(v)
	case reflect.Int, reflect.Int64:
		v, ok := n.Int()
		if !ok {
			return out, false
		}
		rv.SetInt(int64(v))
	case reflect.Uint:
		v, ok := n.Uint()
		if !ok {
			return out, false
		}
		rv.SetUint(uint64(v))
	case reflect.Float32:
		v, ok := n.Float()
		if !ok {
			return out, false
		}
		rv.SetFloat(float64(v))
	case reflect.Float64:
		v, ok := n.Double()
		if !ok {
			return out, false
		}
		rv.SetFloat(v)
	default:
		return out, false
	}
	return out, true
}

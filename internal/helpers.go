package internal

import (
	"github.com/dmitrymomot/reqdata/pkg/content"
)

// ContextValue returns the value stored under key as T, or T's zero value.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Param converts a URL parameter to T using the same coercion rules as request input.
// Returns T's zero value if the parameter is missing or does not convert.
func Param[T content.Scalar](c Context, name string) T {
	v, _ := content.As[T](content.Text(c.Param(name)))
	return v
}

// Input converts the request input under key to T.
// Returns T's zero value if the key is absent or does not convert.
func Input[T content.Scalar](c Context, key string) T {
	v, _ := lookupInput[T](c, key)
	return v
}

// InputDefault converts the request input under key to T.
// Returns defaultValue if the key is absent or does not convert.
func InputDefault[T content.Scalar](c Context, key string, defaultValue T) T {
	v, ok := lookupInput[T](c, key)
	if !ok {
		return defaultValue
	}
	return v
}

// InputAt converts the positional request input i to T.
func InputAt[T content.Scalar](c Context, i int) T {
	var zero T
	n, ok := c.InputAt(i)
	if !ok {
		return zero
	}
	v, _ := content.As[T](n)
	return v
}

func lookupInput[T content.Scalar](c Context, key string) (T, bool) {
	var zero T
	n, ok := c.Input(key)
	if !ok {
		return zero, false
	}
	return content.As[T](n)
}

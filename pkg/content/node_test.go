package content_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqdata/pkg/content"
)

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("null is case-sensitive", func(t *testing.T) {
		t.Parallel()
		require.True(t, content.Text("null").IsNull())
		require.False(t, content.Text("Null").IsNull())
		require.False(t, content.Text("").IsNull())
	})

	t.Run("numeric coercions derive from the same text", func(t *testing.T) {
		t.Parallel()

		n := content.Text("3.9")

		i, ok := n.Int()
		require.True(t, ok)
		require.Equal(t, 3, i)

		d, ok := n.Double()
		require.True(t, ok)
		require.InDelta(t, 3.9, d, 1e-12)

		s, ok := n.Text()
		require.True(t, ok)
		require.Equal(t, "3.9", s)

		b, ok := n.Bool()
		require.True(t, ok)
		require.True(t, b)
	})

	t.Run("non-numeric text has no numeric form", func(t *testing.T) {
		t.Parallel()

		n := content.Text("abc")
		_, ok := n.Int()
		require.False(t, ok)
		_, ok = n.Uint()
		require.False(t, ok)
		_, ok = n.Float()
		require.False(t, ok)
		_, ok = n.Double()
		require.False(t, ok)

		b, ok := n.Bool()
		require.True(t, ok)
		require.False(t, b)
	})

	t.Run("array wraps the value", func(t *testing.T) {
		t.Parallel()

		arr, ok := content.Text("a,b,c").Array()
		require.True(t, ok)
		require.Equal(t, []content.Node{content.Text("a,b,c")}, arr)
	})

	t.Run("fields splits on commas", func(t *testing.T) {
		t.Parallel()

		fields := content.Text("a,b,,c").Fields()
		require.Equal(t, []content.Node{
			content.Text("a"), content.Text("b"), content.Text(""), content.Text("c"),
		}, fields)
	})

	t.Run("object is absent", func(t *testing.T) {
		t.Parallel()
		_, ok := content.Text("x").Object()
		require.False(t, ok)
	})

	t.Run("json parses the text", func(t *testing.T) {
		t.Parallel()

		j, ok := content.Text(`{"a":[1,2]}`).JSON()
		require.True(t, ok)
		first, ok := j.Key("a")
		require.True(t, ok)
		el, ok := first.Index(1)
		require.True(t, ok)
		v, ok := el.Int()
		require.True(t, ok)
		require.Equal(t, 2, v)

		_, ok = content.Text("not json").JSON()
		require.False(t, ok)
	})
}

func TestJSONValue(t *testing.T) {
	t.Parallel()

	doc, err := content.ParseJSON([]byte(`{
		"count": 2,
		"ratio": 0.75,
		"name": "ann",
		"flag": true,
		"off": false,
		"nothing": null,
		"quoted": "null",
		"tags": ["x", "y"],
		"nested": {"k": "v"}
	}`))
	require.NoError(t, err)

	get := func(t *testing.T, key string) content.JSONValue {
		t.Helper()
		v, ok := doc.Key(key)
		require.True(t, ok, key)
		return v
	}

	t.Run("numbers", func(t *testing.T) {
		t.Parallel()

		i, ok := get(t, "count").Int()
		require.True(t, ok)
		require.Equal(t, 2, i)

		s, ok := get(t, "count").Text()
		require.True(t, ok)
		require.Equal(t, "2", s)

		i, ok = get(t, "ratio").Int()
		require.True(t, ok)
		require.Equal(t, 0, i)

		b, ok := get(t, "ratio").Bool()
		require.True(t, ok)
		require.False(t, b, "first character '0' is false")
	})

	t.Run("booleans coerce through their text", func(t *testing.T) {
		t.Parallel()

		b, ok := get(t, "flag").Bool()
		require.True(t, ok)
		require.True(t, b)

		b, ok = get(t, "off").Bool()
		require.True(t, ok)
		require.False(t, b)

		_, ok = get(t, "flag").Int()
		require.False(t, ok)
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()

		n := get(t, "nothing")
		require.True(t, n.IsNull())
		_, ok := n.Text()
		require.False(t, ok)
		_, ok = n.Bool()
		require.False(t, ok)
		_, ok = n.Array()
		require.False(t, ok)

		require.True(t, get(t, "quoted").IsNull())
		require.False(t, get(t, "name").IsNull())
	})

	t.Run("array", func(t *testing.T) {
		t.Parallel()

		arr, ok := get(t, "tags").Array()
		require.True(t, ok)
		require.Len(t, arr, 2)
		s, ok := arr[1].Text()
		require.True(t, ok)
		require.Equal(t, "y", s)

		_, ok = get(t, "tags").Text()
		require.False(t, ok)
	})

	t.Run("scalar array wraps itself", func(t *testing.T) {
		t.Parallel()

		arr, ok := get(t, "name").Array()
		require.True(t, ok)
		require.Len(t, arr, 1)
		s, _ := arr[0].Text()
		require.Equal(t, "ann", s)
	})

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		obj, ok := get(t, "nested").Object()
		require.True(t, ok)
		s, ok := obj["k"].Text()
		require.True(t, ok)
		require.Equal(t, "v", s)

		_, ok = get(t, "nested").Array()
		require.False(t, ok)
		_, ok = get(t, "name").Object()
		require.False(t, ok)
	})

	t.Run("index bounds", func(t *testing.T) {
		t.Parallel()

		tags := get(t, "tags")
		_, ok := tags.Index(-1)
		require.False(t, ok)
		_, ok = tags.Index(2)
		require.False(t, ok)
		_, ok = get(t, "nested").Index(0)
		require.False(t, ok)
	})

	t.Run("marshal round trip keeps number text", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(get(t, "ratio"))
		require.NoError(t, err)
		require.JSONEq(t, `0.75`, string(b))
	})

	t.Run("wraps float64 trees", func(t *testing.T) {
		t.Parallel()

		v := content.NewJSON(map[string]any{"n": 4.5})
		n, ok := v.Key("n")
		require.True(t, ok)
		i, ok := n.Int()
		require.True(t, ok)
		require.Equal(t, 4, i)
	})
}

func TestParseJSON_Errors(t *testing.T) {
	t.Parallel()

	_, err := content.ParseJSON([]byte(`{"a":`))
	require.ErrorIs(t, err, content.ErrMalformedBody)

	_, err = content.ParseJSON([]byte(`{"a":1} {"b":2}`))
	require.ErrorIs(t, err, content.ErrMalformedBody)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	doc, err := content.ParseYAML([]byte("name: ann\nage: 41\nscore: 9.5\nitems:\n  - a\n  - b\n1: one\n"))
	require.NoError(t, err)

	obj, ok := doc.Object()
	require.True(t, ok)

	age, ok := content.As[int](obj["age"])
	require.True(t, ok)
	require.Equal(t, 41, age)

	score, ok := content.As[float64](obj["score"])
	require.True(t, ok)
	require.InDelta(t, 9.5, score, 1e-12)

	items, ok := obj["items"].Array()
	require.True(t, ok)
	require.Len(t, items, 2)

	one, ok := content.As[string](obj["1"])
	require.True(t, ok)
	require.Equal(t, "one", one)

	_, err = content.ParseYAML([]byte("a: [1, 2"))
	require.ErrorIs(t, err, content.ErrMalformedBody)
}

func TestAs(t *testing.T) {
	t.Parallel()

	type level int
	type label string

	n := content.Text("7.2")

	i, ok := content.As[int](n)
	require.True(t, ok)
	require.Equal(t, 7, i)

	l, ok := content.As[level](n)
	require.True(t, ok)
	require.Equal(t, level(7), l)

	s, ok := content.As[label](n)
	require.True(t, ok)
	require.Equal(t, label("7.2"), s)

	u, ok := content.As[uint](n)
	require.True(t, ok)
	require.Equal(t, uint(7), u)

	b, ok := content.As[bool](n)
	require.True(t, ok)
	require.True(t, b)

	_, ok = content.As[int](content.Text("x"))
	require.False(t, ok)

	_, ok = content.As[int](nil)
	require.False(t, ok)
}

package content_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqdata/pkg/content"
)

func TestMultiPart_Input(t *testing.T) {
	t.Parallel()

	m := content.Input("12.5")
	require.Equal(t, content.KindInput, m.Kind())

	s, ok := m.Input()
	require.True(t, ok)
	require.Equal(t, "12.5", s)

	i, ok := m.Int()
	require.True(t, ok)
	require.Equal(t, 12, i)

	f, ok := m.Float()
	require.True(t, ok)
	require.InDelta(t, float32(12.5), f, 1e-6)

	b, ok := m.Bool()
	require.True(t, ok)
	require.True(t, b)

	arr, ok := content.Input("a,b").Array()
	require.True(t, ok)
	require.Len(t, arr, 1, "input arrays are not comma-split")
	text, _ := arr[0].Text()
	require.Equal(t, "a,b", text)

	_, ok = m.Object()
	require.False(t, ok)

	_, ok = m.File()
	require.False(t, ok)

	require.True(t, content.Input("null").IsNull())
	require.False(t, m.IsNull())

	j, ok := content.Input(`[1,2]`).JSON()
	require.True(t, ok)
	items, ok := j.Array()
	require.True(t, ok)
	require.Len(t, items, 2)
}

func TestMultiPart_FilesHaveNoScalarForm(t *testing.T) {
	t.Parallel()

	file := content.File{Name: "a.txt", Type: "text/plain", Data: []byte("1")}

	variants := map[string]content.MultiPart{
		"file":  content.SingleFile(file),
		"files": content.MultipleFiles([]content.File{file, {Data: []byte("22")}}),
	}

	for name, m := range variants {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.False(t, m.IsNull())
			_, ok := m.Bool()
			require.False(t, ok)
			_, ok = m.Int()
			require.False(t, ok)
			_, ok = m.Uint()
			require.False(t, ok)
			_, ok = m.Float()
			require.False(t, ok)
			_, ok = m.Double()
			require.False(t, ok)
			_, ok = m.Text()
			require.False(t, ok)
			_, ok = m.Array()
			require.False(t, ok)
			_, ok = m.Object()
			require.False(t, ok)
			_, ok = m.JSON()
			require.False(t, ok)
			_, ok = m.Input()
			require.False(t, ok)
		})
	}
}

func TestMultiPart_FileAccessors(t *testing.T) {
	t.Parallel()

	single := content.SingleFile(content.File{Name: "a.png", Type: "image/png", Data: []byte{1, 2, 3}})
	require.Equal(t, content.KindFile, single.Kind())

	f, ok := single.File()
	require.True(t, ok)
	require.Equal(t, "a.png", f.Name)
	require.Equal(t, "image/png", f.Type)
	require.Equal(t, int64(3), f.Size())

	_, ok = single.Files()
	require.False(t, ok)

	src := []content.File{{Name: "1"}, {Name: "2"}}
	multi := content.MultipleFiles(src)
	src[0].Name = "changed"

	files, ok := multi.Files()
	require.True(t, ok)
	require.Equal(t, "1", files[0].Name)
	require.Equal(t, "files", multi.Kind().String())

	_, ok = multi.File()
	require.False(t, ok)
}

func TestMultiPart_OwnsFileData(t *testing.T) {
	t.Parallel()

	data := []byte("GIF89a")
	single := content.SingleFile(content.File{Name: "a.gif", Data: data})
	many := content.MultipleFiles([]content.File{{Name: "b.gif", Data: data}, {Name: "c.gif", Data: data}})
	data[0] = 'X'

	f, ok := single.File()
	require.True(t, ok)
	require.Equal(t, []byte("GIF89a"), f.Data)

	files, ok := many.Files()
	require.True(t, ok)
	require.Len(t, files, 2)
	for _, f := range files {
		require.Equal(t, []byte("GIF89a"), f.Data)
	}
}

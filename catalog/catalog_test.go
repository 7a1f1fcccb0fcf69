package catalog

import (
	"strings"
	"testing"

	"github.com/poiesic/iconsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		c, err := New([]core.IconEntry{
			{Name: "acorn"},
			{Name: "anchor"},
			{Name: "airplane"},
		})
		require.NoError(t, err)
		require.Equal(t, 3, c.Len())

		entries := c.Entries()
		assert.Equal(t, "acorn", entries[0].Name)
		assert.Equal(t, "anchor", entries[1].Name)
		assert.Equal(t, "airplane", entries[2].Name)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := New([]core.IconEntry{{Name: "acorn"}, {Name: "acorn"}})
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		_, err := New([]core.IconEntry{{Name: ""}})
		assert.ErrorIs(t, err, core.ErrInvalidIconEntry)
	})

	t.Run("empty catalog is valid", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})
}

func TestLoad(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		data := `[
			{"name": "cat", "tags": ["animal"], "categories": ["animals"]},
			{"name": "car", "tags": ["vehicle"], "categories": ["transport"]}
		]`
		c, err := Load(strings.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())

		cat, ok := c.Lookup("cat")
		require.True(t, ok)
		assert.Equal(t, []string{"animal"}, cat.Tags)
		assert.Equal(t, []string{"animals"}, cat.Categories)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := Load(strings.NewReader("{not json"))
		assert.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	c, err := New([]core.IconEntry{{Name: "acorn"}})
	require.NoError(t, err)

	t.Run("present", func(t *testing.T) {
		entry, ok := c.Lookup("acorn")
		require.True(t, ok)
		assert.Equal(t, "acorn", entry.Name)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := c.Lookup("missing")
		assert.False(t, ok)
	})
}

func TestEntries_CopyIsIndependent(t *testing.T) {
	c, err := New([]core.IconEntry{{Name: "acorn"}, {Name: "anchor"}})
	require.NoError(t, err)

	entries := c.Entries()
	entries[0] = nil

	fresh := c.Entries()
	require.NotNil(t, fresh[0])
	assert.Equal(t, "acorn", fresh[0].Name)
}

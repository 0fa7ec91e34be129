package mdview_test

import (
	"testing"

	"github.com/fwojciec/mdview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mdview.Errorf(mdview.ENOTFOUND, "document %q not found", "a.md")

	assert.Equal(t, mdview.ENOTFOUND, mdview.ErrorCode(err))
	assert.Equal(t, "document \"a.md\" not found", mdview.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdview.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdview.ErrorMessage(nil))
}

func TestBreadcrumb(t *testing.T) {
	t.Parallel()

	t.Run("splits nested path into labels", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"a", "b", "c"}, mdview.Breadcrumb("a/b/c.md"))
	})

	t.Run("replaces underscores with spaces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"hospitality tourism", "key terms"}, mdview.Breadcrumb("hospitality_tourism/key_terms.md"))
	})

	t.Run("keeps single segment", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"readme"}, mdview.Breadcrumb("readme.md"))
	})

	t.Run("strips the extension regardless of case", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"guides", "NOTES"}, mdview.Breadcrumb("guides/NOTES.MD"))
		assert.Equal(t, []string{"notes.txt"}, mdview.Breadcrumb("notes.txt"))
	})
}

func TestTheme_Opposite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mdview.ThemeDark, mdview.ThemeLight.Opposite())
	assert.Equal(t, mdview.ThemeLight, mdview.ThemeDark.Opposite())
	assert.Equal(t, mdview.ThemeLight, mdview.ThemeLight.Opposite().Opposite())
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	theme, err := mdview.ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, mdview.ThemeDark, theme)

	_, err = mdview.ParseTheme("sepia")
	assert.Equal(t, mdview.EINVALID, mdview.ErrorCode(err))
}

func TestTreeNode_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts nested listing", func(t *testing.T) {
		t.Parallel()

		n := &mdview.TreeNode{Type: mdview.NodeDirectory, Name: "A", Children: []*mdview.TreeNode{
			{Type: mdview.NodeFile, Name: "B", Path: "a/b.md"},
		}}
		assert.NoError(t, n.Validate())
	})

	t.Run("rejects file without path", func(t *testing.T) {
		t.Parallel()

		n := &mdview.TreeNode{Type: mdview.NodeFile, Name: "B"}
		assert.Equal(t, mdview.EINVALID, mdview.ErrorCode(n.Validate()))
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		t.Parallel()

		n := &mdview.TreeNode{Type: "symlink", Name: "B"}
		assert.Equal(t, mdview.EINVALID, mdview.ErrorCode(n.Validate()))
	})
}

func TestCountNodes(t *testing.T) {
	t.Parallel()

	tree := []*mdview.TreeNode{
		{Type: mdview.NodeDirectory, Name: "A", Children: []*mdview.TreeNode{
			{Type: mdview.NodeDirectory, Name: "B", Children: []*mdview.TreeNode{
				{Type: mdview.NodeFile, Name: "C", Path: "a/b/c.md"},
			}},
			{Type: mdview.NodeFile, Name: "D", Path: "a/d.md"},
		}},
	}

	dirs, files := mdview.CountNodes(tree)
	assert.Equal(t, 2, dirs)
	assert.Equal(t, 2, files)
	assert.Equal(t, "D", mdview.FindFile(tree, "a/d.md").Name)
	assert.Nil(t, mdview.FindFile(tree, "missing.md"))
}

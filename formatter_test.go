package mdview_test

import (
	"testing"

	"github.com/fwojciec/mdview"
	"github.com/stretchr/testify/assert"
)

func TestFormatTree(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for empty listing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mdview.FormatTree(nil))
	})

	t.Run("indents nested directories", func(t *testing.T) {
		t.Parallel()

		tree := []*mdview.TreeNode{
			{Type: mdview.NodeDirectory, Name: "Marketing", Children: []*mdview.TreeNode{
				{Type: mdview.NodeFile, Name: "Pricing", Path: "marketing/pricing.md"},
			}},
			{Type: mdview.NodeFile, Name: "Intro", Path: "intro.md"},
		}

		expected := "Marketing/\n  Pricing (marketing/pricing.md)\nIntro (intro.md)\n"
		assert.Equal(t, expected, mdview.FormatTree(tree))
	})
}

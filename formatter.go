package mdview

import "strings"

// FormatTree renders the listing as an indented outline for terminals.
// Directories end with a slash; files show their path in parentheses.
func FormatTree(nodes []*TreeNode) string {
	if len(nodes) == 0 {
		return ""
	}

	var b strings.Builder
	formatTree(&b, nodes, 0)
	return b.String()
}

func formatTree(b *strings.Builder, nodes []*TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		b.WriteString(indent)
		if n.IsDir() {
			b.WriteString(n.Name)
			b.WriteString("/\n")
			formatTree(b, n.Children, depth+1)
			continue
		}
		b.WriteString(n.Name)
		b.WriteString(" (")
		b.WriteString(n.Path)
		b.WriteString(")\n")
	}
}

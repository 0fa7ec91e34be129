package mdview

import (
	"path"
	"strings"
)

// DocumentExt is the extension of document files.
const DocumentExt = ".md"

// Breadcrumb returns the human-readable labels for p: one per path
// segment, with the document extension stripped and underscores shown as
// spaces.
func Breadcrumb(p string) []string {
	parts := strings.Split(p, "/")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		name := part
		if ext := path.Ext(part); strings.EqualFold(ext, DocumentExt) {
			name = strings.TrimSuffix(part, ext)
		}
		labels = append(labels, strings.ReplaceAll(name, "_", " "))
	}
	return labels
}

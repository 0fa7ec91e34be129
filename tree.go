package mdview

import "context"

// NodeType discriminates the variants of a TreeNode.
type NodeType string

// NodeType constants.
const (
	NodeDirectory NodeType = "directory"
	NodeFile      NodeType = "file"
)

// TreeNode is one entry of the tree listing. Directory nodes hold their
// children in listing order; file nodes carry the path used to fetch their
// content, which is unique across the tree.
type TreeNode struct {
	Type     NodeType    `json:"type"`
	Name     string      `json:"name"`
	Path     string      `json:"path,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

// IsDir reports whether the node is a directory.
func (n *TreeNode) IsDir() bool {
	return n.Type == NodeDirectory
}

// Validate returns an error if the node or any of its descendants is malformed.
func (n *TreeNode) Validate() error {
	switch n.Type {
	case NodeDirectory:
		for _, child := range n.Children {
			if child == nil {
				return Errorf(EINVALID, "directory %q has nil child", n.Name)
			}
			if err := child.Validate(); err != nil {
				return err
			}
		}
	case NodeFile:
		if n.Path == "" {
			return Errorf(EINVALID, "file %q path required", n.Name)
		}
	default:
		return Errorf(EINVALID, "unknown node type %q", n.Type)
	}
	return nil
}

// CountNodes returns the number of directory and file nodes in the listing.
func CountNodes(nodes []*TreeNode) (dirs, files int) {
	for _, n := range nodes {
		if n.IsDir() {
			dirs++
			d, f := CountNodes(n.Children)
			dirs += d
			files += f
			continue
		}
		files++
	}
	return dirs, files
}

// FindFile returns the file node with the given path, or nil.
func FindFile(nodes []*TreeNode, path string) *TreeNode {
	for _, n := range nodes {
		if n.IsDir() {
			if found := FindFile(n.Children, path); found != nil {
				return found
			}
			continue
		}
		if n.Path == path {
			return n
		}
	}
	return nil
}

// WalkFiles calls fn for every file node in listing order.
func WalkFiles(nodes []*TreeNode, fn func(*TreeNode)) {
	for _, n := range nodes {
		if n.IsDir() {
			WalkFiles(n.Children, fn)
			continue
		}
		fn(n)
	}
}

// TreeService provides the tree listing of available documents.
type TreeService interface {
	// FetchTree returns the top-level nodes of the listing.
	// An empty listing is valid and means there is no content yet.
	FetchTree(ctx context.Context) ([]*TreeNode, error)
}

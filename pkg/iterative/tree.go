package iterative

import "fmt"

// Branch characters matching the tree(1) command.
const (
	treeBranch     = "├── "
	treeLastBranch = "└── "
	treePipe       = "│   "
	treeSpace      = "    "
)

// MakeTree renders a nested list of strings the way tree(1) renders a
// directory. A string entry is a node; a []any entry holds the children of
// the node before it.
func MakeTree(tree []any) ([]string, error) {
	return makeTree(tree, "")
}

func makeTree(tree []any, prefix string) ([]string, error) {
	var lines []string
	for i, entry := range tree {
		last := !nodeAfter(tree, i)
		switch v := entry.(type) {
		case string:
			connector := treeBranch
			if last {
				connector = treeLastBranch
			}
			lines = append(lines, prefix+connector+v)
		case []any:
			childPrefix := prefix + treePipe
			if last {
				childPrefix = prefix + treeSpace
			}
			sub, err := makeTree(v, childPrefix)
			if err != nil {
				return nil, err
			}
			lines = append(lines, sub...)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedElement, entry)
		}
	}
	return lines, nil
}

// nodeAfter reports whether another node follows index i at this level.
func nodeAfter(tree []any, i int) bool {
	for j := i + 1; j < len(tree); j++ {
		if _, ok := tree[j].(string); ok {
			return true
		}
	}
	return false
}

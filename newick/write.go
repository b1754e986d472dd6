package newick

import (
	"strings"

	"github.com/arborlex/gainloss/tree"
)

// Write renders t as a Newick string terminated by ';'. Node names are
// written verbatim with no branch lengths, since package tree carries only
// topology.
func Write(t *tree.Tree) (string, error) {
	var sb strings.Builder
	if err := writeNode(&sb, t, t.Root()); err != nil {
		return "", err
	}
	sb.WriteByte(';')
	return sb.String(), nil
}

func writeNode(sb *strings.Builder, t *tree.Tree, name string) error {
	children, err := t.Children(name)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		sb.WriteByte('(')
		for i, child := range children {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeNode(sb, t, child); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	}
	sb.WriteString(name)
	return nil
}

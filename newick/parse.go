// Package newick implements a hand-written reader and writer for the
// Newick tree format of spec §6. evolbioinfo/gotree and js-arias/timetree
// are referenced only as indirect manifest entries elsewhere in the
// retrieved corpus with no retrievable source to ground an accurate API
// call against (see DESIGN.md), so the grammar — a small, fixed,
// well-documented format — is parsed directly instead.
package newick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arborlex/gainloss/tree"
)

// ErrSyntax indicates malformed Newick input.
var ErrSyntax = errors.New("newick: syntax error")

// Parse reads a single Newick tree (terminated by ';') into a tree.Tree.
// Branch lengths (":<number>") are accepted and discarded — the tree model
// of package tree carries only topology, not branch lengths. Unnamed
// internal nodes are assigned synthetic names "n0", "n1", ... in the order
// they close, so every node the tree model requires a name for has one.
func Parse(s string) (*tree.Tree, error) {
	p := &parser{input: strings.TrimSpace(s)}
	b := tree.NewBuilder()

	rootName, err := p.parseSubtree(b)
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos < len(p.input) && p.input[p.pos] == ';' {
		p.pos++
	}
	p.skipWhitespace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("%w: trailing input at offset %d", ErrSyntax, p.pos)
	}

	return b.Build(rootName)
}

type parser struct {
	input    string
	pos      int
	nextAnon int
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// parseSubtree parses "(child,child,...)name:length" or a bare
// "name:length" leaf, registers parent->child edges for every child onto b,
// and returns this node's own name.
func (p *parser) parseSubtree(b *tree.Builder) (string, error) {
	var children []string

	ch, ok := p.peek()
	if !ok {
		return "", fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	if ch == '(' {
		p.pos++
		for {
			childName, err := p.parseSubtree(b)
			if err != nil {
				return "", err
			}
			children = append(children, childName)

			sep, ok := p.peek()
			if !ok {
				return "", fmt.Errorf("%w: unterminated subtree", ErrSyntax)
			}
			if sep == ',' {
				p.pos++
				continue
			}
			if sep == ')' {
				p.pos++
				break
			}
			return "", fmt.Errorf("%w: expected ',' or ')' at offset %d", ErrSyntax, p.pos)
		}
	}

	name, err := p.parseLabel()
	if err != nil {
		return "", err
	}
	if name == "" {
		name = p.anonName()
	}
	if err := p.skipBranchLength(); err != nil {
		return "", err
	}

	for _, child := range children {
		if err := b.AddEdge(name, child); err != nil {
			return "", err
		}
	}

	return name, nil
}

// parseLabel reads an unquoted node label: any run of characters other
// than the Newick structural tokens.
func (p *parser) parseLabel() (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '(', ')', ',', ':', ';':
			return p.input[start:p.pos], nil
		}
		p.pos++
	}
	return p.input[start:p.pos], nil
}

// skipBranchLength consumes an optional ":<number>" branch length.
func (p *parser) skipBranchLength() error {
	if p.pos >= len(p.input) || p.input[p.pos] != ':' {
		return nil
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '(', ')', ',', ';':
			goto done
		}
		p.pos++
	}
done:
	if _, err := strconv.ParseFloat(p.input[start:p.pos], 64); err != nil {
		return fmt.Errorf("%w: invalid branch length %q", ErrSyntax, p.input[start:p.pos])
	}
	return nil
}

func (p *parser) anonName() string {
	name := fmt.Sprintf("n%d", p.nextAnon)
	p.nextAnon++
	return name
}

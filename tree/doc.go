// Package tree implements the rooted-tree model of spec §3: a tree with
// distinct names on every node (tips and internals, including a
// distinguished root), supporting children(node), tips(node), lca(set of
// tips), and nontips() over a subtree.
//
// A Tree is backed by a directed, unweighted, loop-free, non-multi
// *core.Graph rooted at a single node with edges parent→child. Two index
// structures are built once at construction and never mutated afterward:
//
//   - an Euler-tour (tin/tout) numbering, giving O(1) "is u in the subtree
//     rooted at v" tests; subtree enumeration (Tips, NonTips) scans every
//     node once with that test, O(n) plus sorting;
//   - a binary-lifting ancestor table, giving O(log n) pairwise LCA so that
//     lca() over an arbitrary tip set folds pairwise queries instead of
//     walking parent chains per query.
//
// Node names are the public vocabulary; internally, every index is keyed by
// a small integer ID assigned at build time (design note in SPEC_FULL.md:
// "intern node names to small integer IDs for the duration of a run").
// Names are only translated back at the edges of this package's API.
package tree

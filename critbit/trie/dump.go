package trie

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

func nodeLabel(n *Node) string {
	return fmt.Sprintf("NODE off=%v mask=%08b", n.off, ^n.otherbits)
}

func leafLabel(e *Entry) string {
	return fmt.Sprintf("LEAF key=%q val=%v", e.Key, e.Val)
}

// Tree renders the smallest subtree holding the keys with a given prefix. The
// result is nil if there are no such keys. For a prefix ending in zero bytes
// the subtree may also hold the prefix without those zeros.
func (t *Trie) Tree(prefix []byte) treeprint.Tree {
	t.enter("Tree")

	top, _, ok := t.subtree(prefix)
	if !ok {
		return nil
	}
	if top.leaf != nil {
		return treeprint.NewWithRoot(leafLabel(top.leaf))
	}

	type pending struct {
		ref    ref
		branch treeprint.Tree
	}
	root := treeprint.NewWithRoot(nodeLabel(top.node))
	toVisit := []pending{{top, root}}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		p := toVisit[l-1]
		toVisit = toVisit[:l-1]

		n := p.ref.node
		var subs [2]treeprint.Tree
		for dir, child := range n.child {
			if child.node != nil {
				subs[dir] = p.branch.AddBranch(nodeLabel(child.node))
			} else {
				p.branch.AddNode(leafLabel(child.leaf))
			}
		}
		for dir := 1; dir >= 0; dir-- {
			if subs[dir] != nil {
				toVisit = append(toVisit, pending{n.child[dir], subs[dir]})
			}
		}
	}
	return root
}

// Dump writes the rendered subtree holding the keys with a given prefix.
func (t *Trie) Dump(w io.Writer, prefix []byte) error {
	tree := t.Tree(prefix)
	if tree == nil {
		return nil
	}
	_, err := io.WriteString(w, tree.String())
	return err
}

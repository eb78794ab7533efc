package seqtrie

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a hierarchical tree diagram of the trie to w. Children are
// shown in insertion order and nodes holding a value are annotated with it:
//
//	▼
//	├─ usr
//	│  └─ local
//	│     └─ bin
//	│        └─ ruby (executable)
//	└─ bin
//	   └─ bash (executable)
func (t *Trie[S, V]) Fprint(w io.Writer) error {
	root := "▼"
	if t.root.hasValue {
		root = fmt.Sprintf("▼ (%v)", t.root.value)
	}
	if _, err := fmt.Fprintln(w, root); err != nil {
		return err
	}
	return t.root.fprintRec(w, "")
}

// String returns the Fprint diagram, just a wrapper for Fprint. If Fprint
// returns an error, String panics; a strings.Builder writer cannot fail.
func (t *Trie[S, V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

func (n *node[S, V]) fprintRec(w io.Writer, pad string) error {
	for i, seg := range n.order {
		child := n.children[seg]
		glyph, childPad := "├─ ", pad+"│  "
		if i == len(n.order)-1 {
			glyph, childPad = "└─ ", pad+"   "
		}
		label := fmt.Sprintf("%v", seg)
		if child.hasValue {
			label = fmt.Sprintf("%v (%v)", seg, child.value)
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", pad, glyph, label); err != nil {
			return err
		}
		if err := child.fprintRec(w, childPad); err != nil {
			return err
		}
	}
	return nil
}

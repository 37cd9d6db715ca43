package wildcard

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func dumpf(w io.Writer, indentLevel int, typ string, properties ...string) error {
	indent := strings.Repeat("    ", indentLevel)
	if _, err := fmt.Fprintf(w, "%s- *%s*\n", indent, typ); err != nil {
		return err
	}
	for i := 0; i < len(properties); i += 2 {
		key, value := properties[i], ""
		if i+1 < len(properties) {
			value = properties[i+1]
		}
		value = strconv.Quote(value)
		value = value[1 : len(value)-1]
		if _, err := fmt.Fprintf(w, "%s    - %s: `%s`\n", indent, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) dump(w io.Writer, indentLevel, id int) error {
	n := t.nodes[id]
	switch n.kind {
	case kindRoot:
		if err := dumpf(w, indentLevel, "Root"); err != nil {
			return err
		}
	case kindPath:
		if err := dumpf(w, indentLevel, "Path", "Elem", n.elem.String()); err != nil {
			return err
		}
	case kindLeaf:
		if err := dumpf(w, indentLevel, "Leaf", "Active", fmt.Sprintf("%v", n.active)); err != nil {
			return err
		}
	}
	for _, childID := range n.children {
		if err := t.dump(w, indentLevel+1, childID); err != nil {
			return err
		}
	}
	return nil
}

// Dump prints a textual representation of the tree's current shape to
// w, one bulleted line per node with its properties indented beneath
// it. It is a diagnostic aid, not part of Space's operational path.
func (t *Tree) Dump(w io.Writer) error {
	return t.dump(w, 0, t.root)
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/purc-go/ejson/vcm"
)

// renderTree writes an indented, one-node-per-line rendering of root,
// the --format=tree output fmt exists to produce.
func renderTree(w io.Writer, root *vcm.Node) {
	writeNode(w, root, 0)
}

func writeNode(w io.Writer, n *vcm.Node, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.String())
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeNode(w, c, depth+1)
	}
}

package wbb

import (
	"bytes"
	"fmt"
	"io"
)

// Render writes HTML document for the page node.
func Render(w io.Writer, node *Node) error {
	return render(w, node, 0)
}

// Generate returns HTML for the subtree rooted at node, every line of it is indented by
// the given number of spaces.
func Generate(node *Node, level int) string {
	buffer := bytes.NewBuffer(nil)

	// writes to bytes.Buffer do not fail
	_ = render(buffer, node, level)

	return buffer.String()
}

func render(w io.Writer, node *Node, level int) error {
	switch node.Kind {
	case PageKind:
		return renderPage(w, node, level)
	default:
		return renderElement(w, node, level)
	}
}

func renderChildren(w io.Writer, node *Node, level int) error {
	for _, child := range node.Children {
		if err := render(w, child, level); err != nil {
			return err
		}
	}

	return nil
}

func renderPage(w io.Writer, node *Node, level int) error {
	prefix := indent(level)

	if _, err := fmt.Fprint(w, prefix, "<html>\n", prefix, "  <head><title>", Escape(node.Text), "</title></head>\n", prefix, "  <body>\n"); err != nil {
		return err
	}

	if err := renderChildren(w, node, level+4); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, prefix, "  </body>\n", prefix, "</html>\n")
	return err
}

// renderElement writes header, footer or generic tag, children follow the text on the same
// line as the opening tag and the closing tag comes right after the last child.
func renderElement(w io.Writer, node *Node, level int) error {
	if _, err := fmt.Fprint(w, indent(level), "<", node.Name, ">", Escape(node.Text)); err != nil {
		return err
	}

	if err := renderChildren(w, node, level+2); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</", node.Name, ">\n")
	return err
}

// Package dump prints document tree in a machine-readable form.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/eolymp/go-wbb"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Element is a serializable copy of wbb.Node.
type Element struct {
	Kind     string     `yaml:"kind" json:"kind"`
	Name     string     `yaml:"name" json:"name"`
	Text     string     `yaml:"text,omitempty" json:"text,omitempty"`
	Children []*Element `yaml:"children,omitempty" json:"children,omitempty"`
}

func FromNode(node *wbb.Node) *Element {
	e := &Element{Kind: node.Kind.String(), Name: node.Name, Text: node.Text}
	for _, child := range node.Children {
		e.Children = append(e.Children, FromNode(child))
	}

	return e
}

// Write writes the tree rooted at node in the requested format.
func Write(w io.Writer, node *wbb.Node, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(FromNode(node)); err != nil {
			return err
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(FromNode(node))
	default:
		return fmt.Errorf("unsupported format %q, use %q or %q", format, FormatYAML, FormatJSON)
	}
}

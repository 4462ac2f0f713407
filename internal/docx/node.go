package docx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is a generic XML element preserved verbatim between load and save.
// Character data is stored as a child node with an empty Name and Text set,
// so mixed content round-trips unchanged.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
	Text     string
}

// IsText reports whether the node is a character-data node.
func (n *Node) IsText() bool {
	return n.Name.Local == ""
}

// Elem returns the first child element with the given namespace/local name,
// or nil.
func (n *Node) Elem(space, local string) *Node {
	for _, c := range n.Children {
		if c.Name.Space == space && c.Name.Local == local {
			return c
		}
	}
	return nil
}

// Elems returns all child elements with the given namespace/local name.
func (n *Node) Elems(space, local string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name.Space == space && c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// text concatenates the character data of the node and its descendants.
func (n *Node) text(sb *strings.Builder) {
	if n.IsText() {
		sb.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.text(sb)
	}
}

// parseXML reads an XML document into a Node tree. Comments and processing
// instructions are dropped; element structure, attributes, and character data
// are kept.
func parseXML(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name, Attrs: copyAttrs(t.Attr)}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse xml: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("parse xml: unbalanced end element %s", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Node{Text: string(t)})
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse xml: empty document")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("parse xml: unclosed elements")
	}
	return root, nil
}

func copyAttrs(attrs []xml.Attr) []xml.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]xml.Attr, len(attrs))
	copy(out, attrs)
	return out
}

// nsPrefixes builds a namespace-URI → prefix map from every xmlns declaration
// in the tree. Word emits all declarations on the root element, but nested
// declarations are honored too.
func nsPrefixes(root *Node) map[string]string {
	prefixes := make(map[string]string)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsText() {
			return
		}
		for _, a := range n.Attrs {
			if a.Name.Space == "xmlns" {
				if _, ok := prefixes[a.Value]; !ok {
					prefixes[a.Value] = a.Name.Local
				}
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return prefixes
}

// serializeXML writes the tree back out with the original namespace prefixes.
// Go's xml.Encoder rewrites prefixed names into default-namespace form, which
// Word rejects, so serialization is done by hand.
func serializeXML(w io.Writer, root *Node, prefixes map[string]string) error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	writeNode(&sb, root, prefixes)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeNode(sb *strings.Builder, n *Node, prefixes map[string]string) {
	if n.IsText() {
		sb.WriteString(escapeXML(n.Text))
		return
	}

	name := qualifiedName(n.Name, prefixes)
	sb.WriteByte('<')
	sb.WriteString(name)
	for _, a := range n.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(attrName(a.Name, prefixes))
		sb.WriteString(`="`)
		sb.WriteString(escapeXML(a.Value))
		sb.WriteByte('"')
	}

	if len(n.Children) == 0 {
		sb.WriteString("/>")
		return
	}

	sb.WriteByte('>')
	for _, c := range n.Children {
		writeNode(sb, c, prefixes)
	}
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteByte('>')
}

func qualifiedName(name xml.Name, prefixes map[string]string) string {
	if name.Space == "" {
		return name.Local
	}
	if p, ok := prefixes[name.Space]; ok && p != "" {
		return p + ":" + name.Local
	}
	return name.Local
}

func attrName(name xml.Name, prefixes map[string]string) string {
	switch name.Space {
	case "":
		return name.Local
	case "xmlns":
		return "xmlns:" + name.Local
	case "xml":
		return "xml:" + name.Local
	}
	if p, ok := prefixes[name.Space]; ok && p != "" {
		return p + ":" + name.Local
	}
	return name.Local
}

func escapeXML(s string) string {
	var sb strings.Builder
	// EscapeText never fails when writing to a strings.Builder.
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

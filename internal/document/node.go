// Package document defines the renderer-agnostic tree describing a
// contract and its invoice. Nodes carry display data only; every
// business rule runs before the tree is built.
package document

type NodeType string

const (
	NodeHeader     NodeType = "header"
	NodeParagraph  NodeType = "paragraph"
	NodeList       NodeType = "list"
	NodeClause     NodeType = "clause"
	NodeSummary    NodeType = "summary"
	NodeSignatures NodeType = "signatures"
	NodeSpacer     NodeType = "spacer"
	NodeTable      NodeType = "table"
)

// TextPart is one styled run inside a paragraph.
type TextPart struct {
	Text      string
	Bold      bool
	Italic    bool
	LineBreak bool
}

// Detail is one label/value pair of a summary or signature block.
type Detail struct {
	Label string
	Value string
}

// Node is the tagged variant the renderers consume. Only the fields
// relevant to its Type are populated.
type Node struct {
	Type     NodeType
	Title    string
	Subtitle string
	Parts    []TextPart
	Number   int
	Content  []Node
	Items    []Node
	Details  []Detail
	Headers  []string
	Rows     [][]string
}

// Document bundles the two sections produced by one build. Clause
// numbers live in the contract only.
type Document struct {
	Contract []Node
	Invoice  []Node
}

func paragraph(parts ...TextPart) Node {
	return Node{Type: NodeParagraph, Parts: parts}
}

func plain(text string) TextPart {
	return TextPart{Text: text}
}

func bold(text string) TextPart {
	return TextPart{Text: text, Bold: true}
}

func spacer() Node {
	return Node{Type: NodeSpacer}
}

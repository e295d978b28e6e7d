package render

import "github.com/dshowevents/contratia/internal/document"

// Artifact is one rendered output ready to be served or posted.
type Artifact struct {
	ContentType string
	FileName    string
	Data        []byte
}

// Renderer turns a document tree into a concrete format. Renderers are
// stateless; the same tree must produce the same bytes.
type Renderer interface {
	Render(doc document.Document, baseName string) (Artifact, error)
}

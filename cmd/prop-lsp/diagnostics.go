package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is a .prop file: one formula per line.  Blank lines and
// lines starting with '#' are ignored.
type document struct {
	uri     string
	content string
	version int32
	lines   []*docLine
}

// docLine is one line of a document.  node and err are nil on blank
// and comment lines; err is set when the line did not parse.
type docLine struct {
	n         int
	text      string
	node      *ast.Node
	err       error
	positions map[*ast.Node]*token.Pos
}

func blankLine(text string) bool {
	return strings.TrimSpace(text) == ""
}

func commentLine(text string) bool {
	t := strings.TrimSpace(text)
	return t != "" && t[0] == '#'
}

// vars is the union of the variables of every formula line, comments
// excluded, whether or not the line parses.
func (d *document) vars() []token.Variable {
	var set [26]bool
	for _, ln := range d.lines {
		if blankLine(ln.text) || commentLine(ln.text) {
			continue
		}
		for _, v := range token.Variables([]byte(ln.text)) {
			set[v-'A'] = true
		}
	}
	var vs []token.Variable
	for i, ok := range set {
		if ok {
			vs = append(vs, token.Variable('A'+i))
		}
	}
	return vs
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc := &document{uri: uri, content: content, version: version}
	for i, text := range strings.Split(content, "\n") {
		ln := &docLine{n: i, text: text}
		if !blankLine(text) && !commentLine(text) {
			// Lines parse independently, so error and node
			// positions are columns within the line.
			positions := make(map[*ast.Node]*token.Pos)
			y, err := parse.Parse([]byte(text), parse.ParsePositions(positions))
			ln.node, ln.err, ln.positions = y, err, positions
		}
		doc.lines = append(doc.lines, ln)
	}
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, ln := range doc.lines {
		if ln.err == nil {
			continue
		}
		diagnostics = append(diagnostics, lineDiagnostic(ln))
	}
	return diagnostics
}

func lineDiagnostic(ln *docLine) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(ln.n), Character: 0},
			End:   protocol.Position{Line: uint32(ln.n), Character: uint32(len(ln.text))},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  ln.err.Error(),
		Source:   "prop",
	}
	perr := &parse.ParseErr{}
	if errors.As(ln.err, &perr) && perr.Pos != nil {
		start := uint32(perr.Pos.I)
		end := start + uint32(max(len(perr.Fragment), 1))
		d.Range = protocol.Range{
			Start: protocol.Position{Line: uint32(ln.n), Character: start},
			End:   protocol.Position{Line: uint32(ln.n), Character: end},
		}
	}
	return d
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		// A zero Range means full document replacement.
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
		} else {
			start := rangeVal.Start
			end := rangeVal.End
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
			endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
			if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}

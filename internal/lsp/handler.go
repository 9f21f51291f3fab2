package lsp

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"izinoir/internal/ast"
	"izinoir/internal/parser"
	"izinoir/internal/transpiler"
)

var log = commonlog.GetLogger("izinoir.lsp")

// Define the set of supported semantic token types advertised in the legend
var SemanticTokenTypes = []string{
	"function",
	"method",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"string",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// document is the last known state of an open file. Result is nil when the
// text failed to transpile; Function is nil when it failed to parse.
type document struct {
	function *ast.Function
	result   *transpiler.Result
	err      error
}

// Handler implements the LSP server handlers for circuit sources
type Handler struct {
	mu     sync.RWMutex
	docs   map[protocol.DocumentUri]*document
	strict bool
}

// NewHandler creates a handler; strict enables assignment checking in the analyzer
func NewHandler(strict bool) *Handler {
	return &Handler{
		docs:   make(map[protocol.DocumentUri]*document),
		strict: strict,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Debug("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: ptrBool(true),
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Notice("izinoir LSP initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Notice("izinoir LSP shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen transpiles the opened text and publishes its diagnostics
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened file: %s", params.TextDocument.URI)

	diagnostics, err := h.update(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return err
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidChange re-transpiles the document with the latest full text
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed file: %s", params.TextDocument.URI)

	var text string
	var found bool
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, found = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			// only full sync is advertised, so a ranged event still carries the whole text
			text, found = c.Text, true
		}
	}
	if !found {
		return nil
	}

	diagnostics, err := h.update(params.TextDocument.URI, text)
	if err != nil {
		return err
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed file: %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentHover shows the generated Noir for the whole document
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := h.document(params.TextDocument.URI)
	if doc == nil || doc.result == nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: "```noir\n" + doc.result.Noir + "```",
		},
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := h.document(params.TextDocument.URI)
	if doc == nil {
		return nil, fmt.Errorf("document %s is not open", params.TextDocument.URI)
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.function)),
	}, nil
}

func (h *Handler) document(uri protocol.DocumentUri) *document {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.docs[uri]
}

// update transpiles text and stores the outcome. Transpilation failures
// become diagnostics; only an unusable URI is returned as an error.
func (h *Handler) update(uri protocol.DocumentUri, text string) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	doc := &document{}
	doc.result, doc.err = transpiler.Transpile(text, transpiler.Options{Filename: path, Strict: h.strict})
	if doc.result != nil {
		doc.function = doc.result.Function
	} else {
		// analysis failures still leave a tree to highlight
		doc.function, _ = parser.ParseSource(path, text)
	}

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()

	diagnostics := ConvertError(doc.err)
	diagnostics = append(diagnostics, ConvertWarnings(doc.result)...)
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	return diagnostics, nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if path == "" {
		path = u.Opaque
	}

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	if diagnosticsJSON, err := json.Marshal(diagnostics); err == nil {
		log.Debugf("sending diagnostics for %s: %s", uri, diagnosticsJSON)
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

package codebase

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/cpplyzer/cpp/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "cpplyzer"

type LSPServer struct {
	codebase    *Codebase
	watcher     *FileWatcher
	definitions parser.Definitions
	handler     protocol.Handler
	server      *server.Server
	version     string
}

func NewLSPServer(version string, definitions parser.Definitions) *LSPServer {
	ls := &LSPServer{
		version:     version,
		definitions: definitions,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentHover:          ls.textDocumentHover,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir, ls.definitions)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

// initialized scans the workspace once, then hands ongoing updates to
// the polling watcher so out-of-editor changes are picked up too.
func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.codebase.ScanAll()
	ls.watcher = NewFileWatcher(ls.codebase)
	ls.watcher.Start()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.codebase.UpdateFile(path, []byte(textChange.Text))
			ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.codebase.UpdateFile(path, []byte(*params.Text))
	} else {
		ls.codebase.ScanFile(path)
	}
	ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	line := int(params.Position.Line) + 1
	column := int(params.Position.Character) + 1

	text := ls.codebase.HoverText(path, line, column)
	if text == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: text,
		},
	}, nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	symbols := ls.codebase.DocumentSymbols(path)
	if len(symbols) == 0 {
		return nil, nil
	}
	return toProtocolSymbols(symbols), nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri string, path string) {
	diagnostics := ls.codebase.Diagnostics(path)

	// An explicit empty list clears stale squiggles on the client.
	items := make([]protocol.Diagnostic, 0, len(diagnostics))
	severity := protocol.DiagnosticSeverityError
	for _, d := range diagnostics {
		pos := toProtocolPosition(d.Line, d.Column)
		items = append(items, protocol.Diagnostic{
			Range:    protocol.Range{Start: pos, End: pos},
			Severity: &severity,
			Message:  d.Message,
		})
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: items,
	})
}

func toProtocolSymbols(symbols []Symbol) []protocol.DocumentSymbol {
	var result []protocol.DocumentSymbol
	for _, sym := range symbols {
		r := toProtocolRange(sym.Span)
		result = append(result, protocol.DocumentSymbol{
			Name:           symbolName(sym),
			Kind:           toProtocolSymbolKind(sym.Kind),
			Range:          r,
			SelectionRange: r,
			Children:       toProtocolSymbols(sym.Children),
		})
	}
	return result
}

func symbolName(sym Symbol) string {
	if sym.Name != "" {
		return sym.Name
	}
	return "(anonymous)"
}

func toProtocolSymbolKind(kind parser.NodeKind) protocol.SymbolKind {
	switch kind {
	case parser.KindFunctionDeclaration, parser.KindFunctionDefinition:
		return protocol.SymbolKindFunction
	case parser.KindVariableDeclaration:
		return protocol.SymbolKindVariable
	case parser.KindEnumDeclaration:
		return protocol.SymbolKindEnum
	case parser.KindClassDeclaration:
		return protocol.SymbolKindClass
	case parser.KindNamespaceDeclaration:
		return protocol.SymbolKindNamespace
	case parser.KindConstructor, parser.KindDestructor:
		return protocol.SymbolKindConstructor
	default:
		return protocol.SymbolKindObject
	}
}

func toProtocolPosition(line, column int) protocol.Position {
	if line > 0 {
		line--
	}
	if column > 0 {
		column--
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(column),
	}
}

func toProtocolRange(span parser.Span) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(span.Start.Line, span.Start.Column),
		End:   toProtocolPosition(span.End.Line, span.End.Column),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}

package codebase

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/dhamidi/cpplyzer/cpp/parser"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cpplyzer.codebase")

// Codebase tracks the parsed state of every C++ file under a root
// directory. Files are re-parsed whole on every update; the parser is
// cheap enough that incremental reuse is not worth the bookkeeping.
type Codebase struct {
	mu          sync.RWMutex
	rootDir     string
	definitions parser.Definitions
	files       map[string]*FileInfo
}

type FileInfo struct {
	Path        string
	Content     []byte
	Parser      *parser.Parser
	AST         *parser.Node
	Diagnostics []Diagnostic
}

// Diagnostic is a parse error split back into its position parts, so
// tooling does not have to re-parse the formatted message.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

var cppExtensions = map[string]bool{
	".cpp": true,
	".cc":  true,
	".cxx": true,
	".h":   true,
	".hpp": true,
	".hh":  true,
}

func IsCppFile(path string) bool {
	return cppExtensions[filepath.Ext(path)]
}

func New(rootDir string, definitions parser.Definitions) *Codebase {
	if definitions == nil {
		definitions = parser.Definitions{}
	}
	return &Codebase{
		rootDir:     rootDir,
		definitions: definitions,
		files:       make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if IsCppFile(path) {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

func (c *Codebase) UpdateFile(path string, content []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := parser.New(content,
		parser.WithFile(filepath.Base(path)),
		parser.WithDefinitions(c.definitions))
	ast := p.Parse()

	diagnostics := make([]Diagnostic, 0, len(p.Errors()))
	for _, err := range p.Errors() {
		diagnostics = append(diagnostics, splitDiagnostic(err))
	}

	c.files[path] = &FileInfo{
		Path:        path,
		Content:     content,
		Parser:      p,
		AST:         ast,
		Diagnostics: diagnostics,
	}

	log.Debugf("parsed %s: %d nodes, %d diagnostics", path, len(p.Nodes()), len(diagnostics))
	return nil
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

func (c *Codebase) Diagnostics(path string) []Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if f := c.files[path]; f != nil {
		return f.Diagnostics
	}
	return nil
}

// NodeAt returns the innermost node at a 1-based line and column in
// the given file, or nil when the file is unknown or nothing covers
// the position.
func (c *Codebase) NodeAt(path string, line, column int) *parser.Node {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f := c.files[path]
	if f == nil {
		return nil
	}
	return f.Parser.NodeAt(parser.Position{Line: line, Column: column})
}

// HoverText describes the node under the cursor: its kind, its name
// when it has one, and the source text it covers.
func (c *Codebase) HoverText(path string, line, column int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f := c.files[path]
	if f == nil {
		return ""
	}
	node := f.Parser.NodeAt(parser.Position{Line: line, Column: column})
	if node == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(node.Kind.String())
	if node.Name != "" {
		b.WriteString(" ")
		b.WriteString(node.Name)
	}
	text := f.Parser.TextOfNode(node)
	if text != "" && text != node.Name {
		b.WriteString("\n\n```cpp\n")
		b.WriteString(text)
		b.WriteString("\n```")
	}
	return b.String()
}

// Symbol is a declaration extracted from a file's tree, with nesting
// preserved for classes and namespaces.
type Symbol struct {
	Name     string
	Kind     parser.NodeKind
	Span     parser.Span
	Children []Symbol
}

func (c *Codebase) DocumentSymbols(path string) []Symbol {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f := c.files[path]
	if f == nil || f.AST == nil {
		return nil
	}
	return symbolsIn(f.AST)
}

func symbolsIn(node *parser.Node) []Symbol {
	var symbols []Symbol
	for _, child := range node.Children {
		if !child.IsDeclaration() {
			continue
		}
		sym := Symbol{
			Name: child.Name,
			Kind: child.Kind,
			Span: child.Span,
		}
		switch child.Kind {
		case parser.KindClassDeclaration, parser.KindNamespaceDeclaration:
			sym.Children = symbolsIn(child)
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

// TodoEntries collects the TODO markers of every tracked file.
func (c *Codebase) TodoEntries() []parser.TodoEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var entries []parser.TodoEntry
	for _, f := range c.files {
		entries = append(entries, f.Parser.TodoEntries()...)
	}
	return entries
}

// splitDiagnostic takes a "file:line:col: message" string apart. A
// message that does not match the shape comes back with zero positions.
func splitDiagnostic(formatted string) Diagnostic {
	parts := strings.SplitN(formatted, ":", 4)
	if len(parts) < 4 {
		return Diagnostic{Message: formatted}
	}
	line, err1 := strconv.Atoi(parts[1])
	column, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return Diagnostic{Message: formatted}
	}
	return Diagnostic{
		Line:    line,
		Column:  column,
		Message: strings.TrimSpace(parts[3]),
	}
}

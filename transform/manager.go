// Package transform applies one instruction to a parsed Ruby source file and
// writes the result as source text, a unified diff or an exported constant map.
package transform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/internal/comment"
	"github.com/rubywriter/rubywriter/internal/rubyparse"
	"github.com/rubywriter/rubywriter/transform/combine"
	"github.com/rubywriter/rubywriter/transform/constants"
	"github.com/rubywriter/rubywriter/transform/marker"
	"github.com/rubywriter/rubywriter/transform/rename"
	"github.com/rubywriter/rubywriter/writer"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// Instruction names a transformation of the syntax tree.
type Instruction string

const (
	Write            Instruction = "write"
	EditMethod       Instruction = "edit_method"
	ExploreConstants Instruction = "explore_constants"
	CombineModules   Instruction = "combine_modules"
	InsertMarker     Instruction = "insert_marker"
)

// Instructions lists every supported instruction in the order they are
// documented.
func Instructions() []Instruction {
	return []Instruction{Write, EditMethod, ExploreConstants, CombineModules, InsertMarker}
}

// Format selects how an explored constant map is written.
type Format string

const (
	FormatDebug Format = "debug"
	FormatYAML  Format = "yaml"
	FormatGo    Format = "go"
)

const (
	DefaultMarker    = "test"
	DefaultGoPackage = "constants"
)

var (
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrUnknownFormat      = errors.New("unknown constants format")
	ErrNoDiff             = errors.New("explored constants can not be written as a diff")
)

// ParseInstruction returns the instruction named s.
func ParseInstruction(s string) (Instruction, error) {
	for _, i := range Instructions() {
		if string(i) == s {
			return i, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInstruction, s)
}

// Config holds the options of a Manager. The zero value writes plain text.
type Config struct {
	Format         Format
	Documentation  bool
	SignaturesOnly bool
	Marker         string
	GoPackage      string
	Resolver       constants.Resolver
}

// Manager owns the source text and syntax tree of one file. It applies a
// single instruction to the tree in place and renders the result.
type Manager struct {
	fileName  string
	source    []byte
	root      ast.Node
	comments  []ast.Comment
	config    Config
	applied   Instruction
	constants constants.Map
}

// NewManager creates a Manager for a tree parsed from source. Diagnostics
// are reported against fileName.
func NewManager(fileName string, source []byte, root ast.Node, comments []ast.Comment, config Config) *Manager {
	comment.EnableConsolePrinter(fileName, source)

	if config.Format == "" {
		config.Format = FormatDebug
	}
	if config.Marker == "" {
		config.Marker = DefaultMarker
	}
	if config.GoPackage == "" {
		config.GoPackage = DefaultGoPackage
	}

	return &Manager{
		fileName: fileName,
		source:   source,
		root:     root,
		comments: comments,
		config:   config,
		applied:  Write,
	}
}

// Load reads and parses the Ruby file at path.
func Load(ctx context.Context, path string, config Config) (*Manager, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	result, err := rubyparse.Parse(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return NewManager(path, source, result.Root, result.Comments, config), nil
}

// Root returns the current syntax tree.
func (m *Manager) Root() ast.Node {
	return m.root
}

// Constants returns the map built by ExploreConstants, or nil if that
// instruction has not been applied.
func (m *Manager) Constants() constants.Map {
	return m.constants
}

// Apply runs instruction over the tree. Only the last applied instruction
// decides what Render writes.
func (m *Manager) Apply(instruction Instruction) error {
	switch instruction {
	case Write:
	case EditMethod:
		rename.Methods(m.root)
	case CombineModules:
		before := countDeclarations(m.root)
		m.root = combine.Modules(m.root)
		if merged := before - countDeclarations(m.root); merged > 0 {
			comment.Info(-1, fmt.Sprintf("combined %d repeated class or module declarations", merged))
		}
	case InsertMarker:
		m.root = marker.InsertInModule(m.root, m.config.Marker)
	case ExploreConstants:
		m.constants = constants.NewMap()
		constants.Explore(m.constants, m.root, m.config.Resolver)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInstruction, instruction)
	}
	m.applied = instruction
	return nil
}

func countDeclarations(root ast.Node) int {
	count := 0
	ast.Inspect(root, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.Class, *ast.Module:
			count++
		}
		return true
	})
	return count
}

// Render writes the result of the last applied instruction to w: the
// constant map in the configured format after ExploreConstants, Ruby source
// text otherwise.
func (m *Manager) Render(w io.Writer) error {
	if m.applied == ExploreConstants {
		return m.writeConstants(w)
	}
	return m.writeSource(w)
}

func (m *Manager) writeSource(w io.Writer) error {
	opts := []writer.Option{writer.WithUnsupportedHandler(m.reportUnsupported)}
	if m.config.Documentation {
		opts = append(opts, writer.WithDocumentation(writer.NewDocumentationContext(m.source, m.comments)))
	}
	if m.config.SignaturesOnly {
		opts = append(opts, writer.WithoutMethodBodies())
	}
	if err := writer.WriteCode(w, m.root, opts...); err != nil {
		return fmt.Errorf("failed to write source: %w", err)
	}
	return nil
}

func (m *Manager) reportUnsupported(n ast.Node) {
	comment.Warn(-1, fmt.Sprintf("unsupported %s node written as %q", n.Kind(), writer.UnsupportedPlaceholder))
}

func (m *Manager) writeConstants(w io.Writer) error {
	var out []byte
	var err error
	switch m.config.Format {
	case FormatDebug:
		out = []byte(m.constants.String() + "\n")
	case FormatYAML:
		out, err = constants.ToYAML(m.constants)
	case FormatGo:
		out, err = constants.ToGo(m.constants, m.config.GoPackage)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, m.config.Format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// WriteDiff writes a unified diff from the original source to the rendered
// tree.
func (m *Manager) WriteDiff(w io.Writer) error {
	if m.applied == ExploreConstants {
		return ErrNoDiff
	}

	modified := bytes.NewBuffer([]byte{})
	if err := m.writeSource(modified); err != nil {
		return err
	}

	patch := godiffpatch.GeneratePatch(filepath.Base(m.fileName), string(m.source), modified.String())
	if _, err := io.WriteString(w, patch); err != nil {
		return fmt.Errorf("failed to write diff: %w", err)
	}
	return nil
}

// WriteFile renders the result to the file at path, or writes a diff there
// when diff is set.
func (m *Manager) WriteFile(path string, diff bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if diff {
		err = m.WriteDiff(f)
	} else {
		err = m.Render(f)
	}
	if err != nil {
		return errors.Join(err, os.Remove(path))
	}
	log.Printf("changes written to %s", path)
	return nil
}

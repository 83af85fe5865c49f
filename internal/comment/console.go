package comment

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var headerStyles = map[string]lipgloss.Style{
	InfoHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4")),
	WarnHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D03F")),
}

type ConsolePrinter struct {
	fileName string
	source   []byte
	styled   bool
	comments []string
}

// initialize this if you want to use it at the start of the program
var printer *ConsolePrinter

// EnableConsolePrinter starts collecting diagnostics for the file at path.
// Headers are styled when the log output is a terminal.
func EnableConsolePrinter(path string, source []byte) {
	fd := os.Stderr.Fd()
	printer = &ConsolePrinter{
		fileName: filepath.Base(path),
		source:   source,
		styled:   isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func WriteAll() {
	if printer != nil {
		printer.Flush()
	}
}

// Pending returns the diagnostics collected since the last flush.
func Pending() []string {
	if printer == nil {
		return nil
	}
	return append([]string(nil), printer.comments...)
}

// Add appends a new diagnostic to the pending list.
// The message is the main line, and additionalInfo is a list of optional
// lines that will be printed below the main one.
func (p *ConsolePrinter) Add(offset int, header, message string, additionalInfo ...string) {
	if p == nil {
		return
	}

	pos := getPosition(p.source, offset, p.fileName)

	b := strings.Builder{}
	if style, ok := headerStyles[header]; ok && p.styled {
		b.WriteString(style.Render(header))
	} else {
		b.WriteString(header)
	}
	b.WriteByte(':')
	b.WriteByte(' ')

	if pos != "" {
		b.WriteString(pos)
		b.WriteByte(' ')
	}
	b.WriteString(message)
	for _, info := range additionalInfo {
		b.WriteString("\n\t")
		b.WriteString(info)
	}

	p.comments = append(p.comments, b.String())
}

// Flush logs all pending diagnostics.
func (p *ConsolePrinter) Flush() {
	if p == nil {
		return
	}

	for _, c := range p.comments {
		log.Println(c)
	}
	p.comments = []string{}
}

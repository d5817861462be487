package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer is the sink for formatted statistics output. The statistics
// types produce lines; the sink decides where they go.
type Printer interface {
	Print(line string)
}

// WriterPrinter prints each line to an io.Writer.
type WriterPrinter struct {
	w io.Writer
}

// NewWriterPrinter creates a printer for the given writer.
func NewWriterPrinter(w io.Writer) *WriterPrinter {
	return &WriterPrinter{w}
}

// NewStdoutPrinter creates a printer for the standard output.
func NewStdoutPrinter() *WriterPrinter {
	return &WriterPrinter{os.Stdout}
}

func (p *WriterPrinter) Print(line string) {
	fmt.Fprintln(p.w, line)
}

// FilePrinter appends each line to a file, creating it on first use.
type FilePrinter struct {
	filepath string
}

// NewFilePrinter creates a printer appending to the given file path.
func NewFilePrinter(filepath string) *FilePrinter {
	return &FilePrinter{filepath}
}

func (p *FilePrinter) Print(line string) {
	file, err := os.OpenFile(p.filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to print to file %s - %v\n", p.filepath, err)
		return
	}
	defer file.Close()
	fmt.Fprintln(file, line)
}

// english formats numbers with comma separators.
var english = message.NewPrinter(language.English)

// CommasU64 renders an unsigned integer with comma separators.
func CommasU64(value uint64) string {
	return english.Sprintf("%d", value)
}

// CommasI64 renders a signed integer with comma separators.
func CommasI64(value int64) string {
	return english.Sprintf("%d", value)
}

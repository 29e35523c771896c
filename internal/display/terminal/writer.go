// Package terminal renders the game into an ANSI terminal using half-block
// characters, locally or over SSH.
package terminal

import (
	"bufio"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize keeps single writes below a typical MTU for smooth SSH flow.
const maxChunkSize = 1400

// frameWriter accumulates one frame of terminal output and writes it in
// chunks. Cursor positions passed to writeAt are 0-based canvas cells; the
// centering offset is applied here.
type frameWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
	offCol int
	offRow int
}

func newFrameWriter(w io.Writer) *frameWriter {
	return &frameWriter{bufw: bufio.NewWriterSize(w, 8192)}
}

func (fw *frameWriter) setOffset(col, row int) {
	fw.offCol = col
	fw.offRow = row
}

// Write implements io.Writer so the canvas can render into the frame.
func (fw *frameWriter) Write(p []byte) (int, error) {
	return fw.buf.Write(p)
}

func (fw *frameWriter) writeString(s string) {
	fw.buf.WriteString(s)
}

func (fw *frameWriter) moveCursor(col, row int) {
	fw.buf.WriteString("\033[")
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(row+1+fw.offRow), 10))
	fw.buf.WriteByte(';')
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(col+1+fw.offCol), 10))
	fw.buf.WriteByte('H')
}

// writeAt writes s in color c on a black background starting at the cell.
func (fw *frameWriter) writeAt(col, row int, s string, c color.RGBA) {
	fw.moveCursor(col, row)
	fw.buf.WriteString("\033[38;2;")
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(c.R), 10))
	fw.buf.WriteByte(';')
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(c.G), 10))
	fw.buf.WriteByte(';')
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(c.B), 10))
	fw.buf.WriteString("m\033[48;2;0;0;0m")
	fw.buf.WriteString(s)
	fw.buf.WriteString("\033[0m")
}

// flush writes the accumulated frame to the underlying writer and resets it.
func (fw *frameWriter) flush() error {
	data := fw.buf.String()
	fw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := fw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return fw.bufw.Flush()
}

// SizeFunc returns the terminal dimensions in columns and rows.
type SizeFunc func() (width, height int, err error)

// StdoutSize reports the size of the terminal attached to os.Stdout.
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

const (
	seqClearScreen = "\033[0m\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
)

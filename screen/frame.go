//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"github.com/timburks/ned/editor"
	ned "github.com/timburks/ned/types"
)

// VT100 sequences
const (
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	cursorHome     = "\x1b[H"
	clearLine      = "\x1b[K"
	clearScreen    = "\x1b[2J"
	reverseVideo   = "\x1b[7m"
	resetAttrs     = "\x1b[m"
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	newline        = "\r\n"
)

// RenderFrame returns the bytes that draw one frame of e on a terminal of
// the given size. The editor's viewport must already be up to date.
func RenderFrame(e ned.Editor, size ned.Size, opts Options) []byte {
	var f bytes.Buffer
	area := editor.TextArea(size)
	f.WriteString(hideCursor)
	f.WriteString(cursorHome)
	renderRows(&f, e, area, opts)
	// the message bar is always the last line; the info bar needs a line of its own
	if size.Rows >= editor.ReservedRows {
		renderInfoBar(&f, e, area.Cols, opts)
	}
	renderMessageBar(&f, e, area.Cols)

	cursor := e.GetCursor()
	offset := e.GetOffset()
	row := cursor.Row - offset.Rows + 1
	col := cursor.Col - offset.Cols + 1
	if row < 1 {
		row = 1
	}
	if col < 1 {
		col = 1
	}
	fmt.Fprintf(&f, "\x1b[%d;%dH", row, col)
	f.WriteString(showCursor)
	return f.Bytes()
}

func renderRows(f *bytes.Buffer, e ned.Editor, area ned.Size, opts Options) {
	b := e.GetBuffer()
	offset := e.GetOffset()
	for i := 0; i < area.Rows; i++ {
		if i+offset.Rows >= b.GetRowCount() {
			f.WriteString(opts.Placeholder)
		} else {
			f.Write(slice(b.GetRow(i+offset.Rows), offset.Cols, area.Cols))
		}
		f.WriteString(clearLine)
		f.WriteString(newline)
	}
}

// Compute the text to display on the info bar.
func infoBarText(e ned.Editor, width int, opts Options) string {
	b := e.GetBuffer()
	text := opts.UnnamedLabel
	if name := b.GetFileName(); name != "" {
		text = "[" + name + "]"
	}
	if b.GetModified() {
		text += " " + opts.ModifiedGlyph
	}
	finalText := fmt.Sprintf(" %d/%d ", e.GetCursor().Row+1, b.GetRowCount())
	if len(text)+len(finalText) > width {
		finalText = ""
	}
	if len(text) > width {
		text = text[:width]
	}
	for len(text) < width-len(finalText) {
		text = text + " "
	}
	return text + finalText
}

func renderInfoBar(f *bytes.Buffer, e ned.Editor, width int, opts Options) {
	f.WriteString(reverseVideo)
	f.WriteString(infoBarText(e, width, opts))
	f.WriteString(resetAttrs)
	f.WriteString(newline)
}

func renderMessageBar(f *bytes.Buffer, e ned.Editor, width int) {
	f.WriteString(clearLine)
	line := e.GetMessage()
	if len(line) > width {
		line = line[:width]
	}
	f.WriteString(line)
}

func slice(text []byte, from, n int) []byte {
	if from < 0 || from >= len(text) || n <= 0 {
		return nil
	}
	if from+n > len(text) {
		return text[from:]
	}
	return text[from : from+n]
}

// writeFrame writes all of frame, retrying after partial and interrupted writes.
func writeFrame(w io.Writer, frame []byte) error {
	for len(frame) > 0 {
		n, err := w.Write(frame)
		frame = frame[n:]
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}

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
package editor

import (
	"errors"
	"fmt"
	"os"

	ned "github.com/timburks/ned/types"
)

var ErrNoFileName = errors.New("no filename")

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Cursor  ned.Point // cursor position
	Buffer  *Buffer   // buffer being edited
	view    Viewport  // visible part of the buffer
	size    ned.Size  // terminal size
	message string    // status message
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

// ReadFile loads path into the buffer. A file that can't be read leaves
// an empty buffer with that name, so the returned error is informational.
func (e *Editor) ReadFile(path string) error {
	e.Buffer = NewBuffer()
	e.Buffer.SetFileName(path)
	e.Cursor = ned.Point{}
	e.view = Viewport{}
	err := e.Buffer.ReadFile(path)
	switch {
	case err == nil:
		e.SetMessage("Opened: %s", path)
	case errors.Is(err, os.ErrNotExist):
		e.SetMessage("New file: %s", path)
	default:
		e.SetMessage("New file: %s (%v)", path, err)
	}
	return err
}

// Save writes the buffer to its file and reports the result on the message bar.
func (e *Editor) Save() error {
	name := e.Buffer.GetFileName()
	if name == "" {
		e.SetMessage("ERROR: No filename")
		return ErrNoFileName
	}
	if err := e.Buffer.WriteFile(name); err != nil {
		e.SetMessage("I/O error: %v", unwrapPathError(err))
		return fmt.Errorf("saving %s: %w", name, err)
	}
	e.SetMessage("Saved: %s", name)
	return nil
}

func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

func (e *Editor) GetCursor() ned.Point {
	return e.Cursor
}

func (e *Editor) GetOffset() ned.Size {
	return e.view.Offset
}

func (e *Editor) GetBuffer() ned.Buffer {
	return e.Buffer
}

func (e *Editor) GetMessage() string {
	return e.message
}

func (e *Editor) SetMessage(format string, args ...interface{}) {
	e.message = fmt.Sprintf(format, args...)
}

// SetSize records the size of the terminal.
func (e *Editor) SetSize(s ned.Size) {
	e.size = s
}

// Scroll recomputes the viewport so the cursor is visible.
func (e *Editor) Scroll() {
	e.view = e.view.Follow(e.Cursor, TextArea(e.size))
}

func (e *Editor) MoveCursor(direction int) {
	rowCount := e.Buffer.GetRowCount()
	if rowCount == 0 {
		return
	}
	switch direction {
	case ned.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case ned.MoveDown:
		if e.Cursor.Row < rowCount-1 {
			e.Cursor.Row++
		}
	case ned.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
		}
	case ned.MoveRight:
		if e.Cursor.Row < rowCount && e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		} else if e.Cursor.Row < rowCount-1 {
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	}
	e.KeepCursorInBounds()
}

// KeepCursorInBounds clamps the cursor to the buffer. The row may be one
// past the last row; there the column is always 0.
func (e *Editor) KeepCursorInBounds() {
	rowCount := e.Buffer.GetRowCount()
	e.Cursor.Row = clipToRange(e.Cursor.Row, 0, rowCount)
	if e.Cursor.Row == rowCount {
		e.Cursor.Col = 0
	} else {
		e.Cursor.Col = clipToRange(e.Cursor.Col, 0, e.Buffer.GetRowLength(e.Cursor.Row))
	}
}

// InsertChar types c at the cursor, creating a row first if there is
// none under the cursor.
func (e *Editor) InsertChar(c byte) {
	e.KeepCursorInBounds()
	if e.Buffer.GetRowCount() == 0 {
		e.Buffer.InsertRow(0, nil)
	}
	if e.Cursor.Row == e.Buffer.GetRowCount() {
		e.Buffer.InsertRow(e.Cursor.Row, nil)
	}
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// InsertNewline splits the row at the cursor.
func (e *Editor) InsertNewline() {
	e.KeepCursorInBounds()
	rowCount := e.Buffer.GetRowCount()
	switch {
	case rowCount == 0:
		e.Buffer.InsertRow(0, nil)
		e.Buffer.InsertRow(1, nil)
		e.Cursor = ned.Point{Row: 1, Col: 0}
	case e.Cursor.Row >= rowCount:
		e.Buffer.InsertRow(rowCount, nil)
		e.Cursor = ned.Point{Row: rowCount, Col: 0}
	case e.Cursor.Col == 0:
		// the current row moves down unchanged
		e.Buffer.InsertRow(e.Cursor.Row, nil)
		e.Cursor = ned.Point{Row: e.Cursor.Row + 1, Col: 0}
	default:
		e.Buffer.SplitRow(e.Cursor.Row, e.Cursor.Col)
		e.Cursor = ned.Point{Row: e.Cursor.Row + 1, Col: 0}
	}
}

// BackspaceChar deletes the character before the cursor, joining the
// current row to the previous one at the start of a row.
func (e *Editor) BackspaceChar() {
	e.KeepCursorInBounds()
	row := e.Cursor.Row
	if row >= e.Buffer.GetRowCount() {
		return
	}
	if e.Cursor.Col > 0 {
		e.Buffer.DeleteCharacter(row, e.Cursor.Col-1)
		e.Cursor.Col--
		return
	}
	if row == 0 {
		return
	}
	previousLength := e.Buffer.GetRowLength(row - 1)
	e.Buffer.AppendString(row-1, e.Buffer.GetRow(row))
	e.DeleteRow(row)
	e.Cursor = ned.Point{Row: row - 1, Col: previousLength}
}

// DeleteRow removes a row and keeps the cursor on an existing row.
func (e *Editor) DeleteRow(at int) {
	if !e.Buffer.DeleteRow(at) {
		return
	}
	rowCount := e.Buffer.GetRowCount()
	if e.Cursor.Row >= rowCount {
		e.Cursor.Row = rowCount - 1
		if e.Cursor.Row < 0 {
			e.Cursor.Row = 0
		}
	}
	e.KeepCursorInBounds()
}

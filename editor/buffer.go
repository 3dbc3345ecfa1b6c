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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// A Buffer represents a file being edited.
// A Buffer may have no rows at all; that is not the same as one empty row.
type Buffer struct {
	rows     []*Row
	fileName string
	modified bool
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) GetModified() bool {
	return b.modified
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	} else {
		return 0
	}
}

// GetRow returns the text of row i, or nil if there is no such row.
// The returned slice must not be modified.
func (b *Buffer) GetRow(i int) []byte {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Text
	}
	return nil
}

// InsertRow inserts a new row containing text at position at, 0 <= at <= count.
// Other positions are ignored.
func (b *Buffer) InsertRow(at int, text []byte) bool {
	if at < 0 || at > len(b.rows) {
		return false
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = NewRow(text)
	b.modified = true
	return true
}

func (b *Buffer) DeleteRow(at int) bool {
	if at < 0 || at >= len(b.rows) {
		return false
	}
	copy(b.rows[at:], b.rows[at+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	b.modified = true
	return true
}

func (b *Buffer) InsertCharacter(row, col int, c byte) bool {
	if row < 0 || row >= len(b.rows) {
		return false
	}
	b.rows[row].InsertChar(col, c)
	b.modified = true
	return true
}

// DeleteCharacter removes the character at col in row.
func (b *Buffer) DeleteCharacter(row, col int) bool {
	if row < 0 || row >= len(b.rows) {
		return false
	}
	if col < 0 || col >= b.rows[row].Length() {
		return false
	}
	b.rows[row].DeleteChar(col)
	b.modified = true
	return true
}

func (b *Buffer) AppendString(row int, text []byte) bool {
	if row < 0 || row >= len(b.rows) {
		return false
	}
	b.rows[row].Append(text)
	b.modified = true
	return true
}

// SplitRow moves the text after col into a new row below row.
func (b *Buffer) SplitRow(row, col int) bool {
	if row < 0 || row >= len(b.rows) {
		return false
	}
	tail := b.rows[row].Split(col)
	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = tail
	b.modified = true
	return true
}

// LoadLines replaces the contents of the buffer with lines read from r.
// Line terminators, including carriage returns, are stripped.
func (b *Buffer) LoadLines(r io.Reader) error {
	rows := make([]*Row, 0)
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			rows = append(rows, NewRow(bytes.TrimRight(line, "\r\n")))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	b.rows = rows
	b.modified = false
	return nil
}

func (b *Buffer) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = b.LoadLines(f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	b.fileName = path
	return nil
}

// Bytes returns the contents of the buffer with every row followed by a newline.
func (b *Buffer) Bytes() []byte {
	var out bytes.Buffer
	for _, row := range b.rows {
		out.Write(row.Text)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func (b *Buffer) WriteFile(path string) error {
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		return err
	}
	b.modified = false
	return nil
}

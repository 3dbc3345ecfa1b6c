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

// A row of text in the editor, without its line terminator.
type Row struct {
	Text []byte
}

func NewRow(text []byte) *Row {
	r := &Row{}
	r.Text = append(make([]byte, 0, len(text)), text...)
	return r
}

func (r *Row) Length() int {
	return len(r.Text)
}

// inserts c at col; col is clamped to the row
func (r *Row) InsertChar(col int, c byte) {
	col = clipToRange(col, 0, len(r.Text))
	r.Text = append(r.Text, 0)
	copy(r.Text[col+1:], r.Text[col:])
	r.Text[col] = c
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) byte {
	if col < 0 || col >= len(r.Text) {
		return 0
	}
	c := r.Text[col]
	r.Text = append(r.Text[:col], r.Text[col+1:]...)
	return c
}

// appends text to the end of the row
func (r *Row) Append(text []byte) {
	r.Text = append(r.Text, text...)
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	col = clipToRange(col, 0, len(r.Text))
	after := NewRow(r.Text[col:])
	r.Text = r.Text[:col]
	return after
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}

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
	ned "github.com/timburks/ned/types"
)

// Rows at the bottom of the terminal used by the status and message bars.
const ReservedRows = 2

// A Viewport is the part of a buffer that is visible on the terminal.
type Viewport struct {
	Offset ned.Size // first visible row and column
	Size   ned.Size // number of visible rows and columns
}

// TextArea returns the size of the text area of a terminal. A terminal
// too short for any text gets zero rows; the width is at least 1.
func TextArea(terminal ned.Size) ned.Size {
	size := ned.Size{Rows: terminal.Rows - ReservedRows, Cols: terminal.Cols}
	if size.Rows < 0 {
		size.Rows = 0
	}
	if size.Cols < 1 {
		size.Cols = 1
	}
	return size
}

// Follow returns the viewport with its offsets moved the minimum amount
// needed to keep cursor visible in a text area of the given size.
func (v Viewport) Follow(cursor ned.Point, size ned.Size) Viewport {
	v.Size = size
	if v.Size.Rows < 1 {
		v.Offset.Rows = cursor.Row
	} else if cursor.Row < v.Offset.Rows {
		// scroll up
		v.Offset.Rows = cursor.Row
	} else if cursor.Row >= v.Offset.Rows+v.Size.Rows {
		// scroll down
		v.Offset.Rows = cursor.Row - v.Size.Rows + 1
	}
	if cursor.Col < v.Offset.Cols {
		// scroll left
		v.Offset.Cols = cursor.Col
	}
	if cursor.Col >= v.Offset.Cols+v.Size.Cols {
		// scroll right
		v.Offset.Cols = cursor.Col - v.Size.Cols + 1
	}
	return v
}

// Contains reports whether p is inside the viewport.
func (v Viewport) Contains(p ned.Point) bool {
	return p.Row >= v.Offset.Rows && p.Row < v.Offset.Rows+v.Size.Rows &&
		p.Col >= v.Offset.Cols && p.Col < v.Offset.Cols+v.Size.Cols
}

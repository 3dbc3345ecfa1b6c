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
package types

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// An Editor owns a buffer, a cursor and the display offset.
type Editor interface {
	GetCursor() Point
	GetOffset() Size
	GetBuffer() Buffer
	GetMessage() string
	SetMessage(format string, args ...interface{})

	SetSize(size Size)
	Scroll()

	MoveCursor(direction int)
	InsertChar(c byte)
	InsertNewline()
	BackspaceChar()
	Save() error
}

type Buffer interface {
	GetRowCount() int
	GetRow(i int) []byte
	GetFileName() string
	GetModified() bool
}

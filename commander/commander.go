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

// Package commander converts user input into commands for the editor.
package commander

import (
	"github.com/nsf/termbox-go"

	ned "github.com/timburks/ned/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor  ned.Editor
	running bool
}

func NewCommander(e ned.Editor) *Commander {
	return &Commander{editor: e, running: true}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) ProcessEvent(event termbox.Event) error {
	switch event.Type {
	case termbox.EventKey:
		return c.ProcessKey(event)
	default:
		// resizes are picked up when the next frame is drawn
		return nil
	}
}

func (c *Commander) ProcessKey(event termbox.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case termbox.KeyCtrlQ:
			c.running = false
		case termbox.KeyCtrlS:
			return e.Save()
		case termbox.KeyEnter:
			e.InsertNewline()
		case termbox.KeyBackspace, termbox.KeyBackspace2:
			e.BackspaceChar()
		case termbox.KeyArrowUp:
			e.MoveCursor(ned.MoveUp)
		case termbox.KeyArrowDown:
			e.MoveCursor(ned.MoveDown)
		case termbox.KeyArrowLeft:
			e.MoveCursor(ned.MoveLeft)
		case termbox.KeyArrowRight:
			e.MoveCursor(ned.MoveRight)
		}
		return nil
	}
	// text is byte oriented
	if ch >= 32 && ch < 127 {
		e.InsertChar(byte(ch))
	}
	return nil
}

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
	"io"

	"github.com/nsf/termbox-go"
)

// A Decoder converts raw terminal input into key events.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// readByte returns false when no byte is available before the read times out.
func (d *Decoder) readByte() (byte, bool, error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	if err == nil || err == io.EOF {
		return 0, false, nil
	}
	return 0, false, err
}

func none() termbox.Event {
	return termbox.Event{Type: termbox.EventNone}
}

func keyEvent(k termbox.Key) termbox.Event {
	return termbox.Event{Type: termbox.EventKey, Key: k}
}

// Next reads one key. Input that isn't a known key decodes to EventNone.
//
// Events use termbox's Key constants for control keys. Every printable
// byte, space included, is reported in Ch with a zero Key; termbox itself
// reports space as KeySpace.
func (d *Decoder) Next() (termbox.Event, error) {
	c, ok, err := d.readByte()
	if err != nil || !ok {
		return none(), err
	}
	switch c {
	case 0x1b:
		return d.escape()
	case '\r':
		return keyEvent(termbox.KeyEnter), nil
	case 0x7f:
		return keyEvent(termbox.KeyBackspace2), nil
	case 0x08:
		return keyEvent(termbox.KeyBackspace), nil
	case 0x11:
		return keyEvent(termbox.KeyCtrlQ), nil
	case 0x13:
		return keyEvent(termbox.KeyCtrlS), nil
	}
	if c >= 32 && c < 127 {
		return termbox.Event{Type: termbox.EventKey, Ch: rune(c)}, nil
	}
	return none(), nil
}

func arrow(c byte) (termbox.Event, bool) {
	switch c {
	case 'A':
		return keyEvent(termbox.KeyArrowUp), true
	case 'B':
		return keyEvent(termbox.KeyArrowDown), true
	case 'C':
		return keyEvent(termbox.KeyArrowRight), true
	case 'D':
		return keyEvent(termbox.KeyArrowLeft), true
	}
	return none(), false
}

// escape decodes the rest of a sequence that started with ESC.
func (d *Decoder) escape() (termbox.Event, error) {
	s1, ok, err := d.readByte()
	if err != nil || !ok {
		return none(), err
	}
	if s1 != '[' && s1 != 'O' {
		return none(), nil
	}
	s2, ok, err := d.readByte()
	if err != nil || !ok {
		return none(), err
	}
	if event, ok := arrow(s2); ok {
		return event, nil
	}
	if s1 == '[' && s2 >= 0x30 && s2 <= 0x3f {
		// skip parameters up to the final byte, as in ESC [ 3 ~,
		// or until the input goes idle
		for {
			c, ok, err := d.readByte()
			if err != nil || !ok {
				return none(), err
			}
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
	}
	return none(), nil
}

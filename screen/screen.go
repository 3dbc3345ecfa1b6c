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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/nsf/termbox-go"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	ned "github.com/timburks/ned/types"
)

var ErrNotTerminal = errors.New("standard input is not a terminal")

// Options control the appearance and timing of a Screen.
type Options struct {
	Placeholder   string   // drawn on rows past the end of the buffer
	UnnamedLabel  string   // shown on the info bar for a buffer without a file
	ModifiedGlyph string   // shown on the info bar when the buffer is modified
	Fallback      ned.Size // used when the terminal size is unavailable
	InputTimeout  int      // tenths of a second to wait for a key
}

// The Screen draws the state of an Editor.
type Screen struct {
	opts    Options
	in      int // input file descriptor
	out     io.Writer
	sizeFd  int
	restore func() error
	size    ned.Size
	resize  chan os.Signal
	decoder *Decoder
	closed  bool
}

// NewScreen puts the terminal in raw mode and switches to the alternate screen.
// Callers must defer Close to restore the terminal.
func NewScreen(opts Options) (*Screen, error) {
	s := &Screen{
		opts:   opts,
		in:     int(os.Stdin.Fd()),
		out:    os.Stdout,
		sizeFd: int(os.Stdout.Fd()),
	}
	if !term.IsTerminal(s.in) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(s.in)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	s.restore = func() error { return term.Restore(s.in, state) }
	if err = setReadTimeout(s.in, opts.InputTimeout); err != nil {
		s.restore()
		return nil, fmt.Errorf("setting read timeout: %w", err)
	}
	s.resize = make(chan os.Signal, 1)
	signal.Notify(s.resize, unix.SIGWINCH)
	s.decoder = NewDecoder(ttyReader(s.in))
	s.size = s.querySize()
	if err = writeFrame(s.out, []byte(enterAltScreen+clearScreen+cursorHome+hideCursor)); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// setReadTimeout makes reads return after timeout tenths of a second
// even when no key has been pressed.
func setReadTimeout(fd int, timeout int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	if timeout < 1 {
		timeout = 1
	}
	if timeout > 255 {
		timeout = 255
	}
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = uint8(timeout)
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	signal.Stop(s.resize)
	werr := writeFrame(s.out, []byte(showCursor+resetAttrs+leaveAltScreen))
	if err := s.restore(); err != nil {
		return err
	}
	return werr
}

func (s *Screen) querySize() ned.Size {
	cols, rows, err := term.GetSize(s.sizeFd)
	if err != nil || cols == 0 || rows == 0 {
		return s.opts.Fallback
	}
	return ned.Size{Rows: rows, Cols: cols}
}

// Size returns the terminal size as of the last resize.
func (s *Screen) Size() ned.Size {
	return s.size
}

// Resized reports whether the terminal was resized since the last call,
// and if so, updates the size.
func (s *Screen) Resized() bool {
	resized := false
	for {
		select {
		case <-s.resize:
			resized = true
		default:
			if resized {
				s.size = s.querySize()
			}
			return resized
		}
	}
}

// Render draws a frame with a single write.
func (s *Screen) Render(e ned.Editor) error {
	e.SetSize(s.size)
	e.Scroll()
	return writeFrame(s.out, RenderFrame(e, s.size, s.opts))
}

// GetNextEvent waits for the next key. It returns an EventNone event when
// no key arrives before the input timeout.
func (s *Screen) GetNextEvent() (termbox.Event, error) {
	return s.decoder.Next()
}

// ttyReader reads directly from a terminal in raw mode. A read that times
// out returns no bytes and no error.
type ttyReader int

func (fd ttyReader) Read(p []byte) (int, error) {
	n, err := unix.Read(int(fd), p)
	if err == unix.EINTR || err == unix.EAGAIN {
		return 0, nil
	}
	if n < 0 {
		n = 0
	}
	return n, err
}

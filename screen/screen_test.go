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
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestCloseRestoresOnce(t *testing.T) {
	var out bytes.Buffer
	restored := 0
	s := &Screen{
		out:     &out,
		resize:  make(chan os.Signal, 1),
		restore: func() error { restored++; return nil },
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if out.String() != showCursor+resetAttrs+leaveAltScreen {
		t.Errorf("Unexpected restore sequence: %q", out.String())
	}
	out.Reset()
	if err := s.Close(); err != nil {
		t.Errorf("Second Close failed: %v", err)
	}
	if out.Len() != 0 || restored != 1 {
		t.Errorf("Second Close wrote %q and restored %d times", out.String(), restored)
	}
}

func TestCloseReportsRestoreFailure(t *testing.T) {
	var out bytes.Buffer
	s := &Screen{
		out:     &out,
		resize:  make(chan os.Signal, 1),
		restore: func() error { return unix.EIO },
	}
	if err := s.Close(); !errors.Is(err, unix.EIO) {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Second Close returned %v", err)
	}
}

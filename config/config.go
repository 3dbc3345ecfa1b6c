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

// Package config holds the settings of ned. Settings are read from a
// startup file written in Lisp; see LoadFile.
package config

import (
	"os"
	"path/filepath"

	ned "github.com/timburks/ned/types"
)

// Name of the startup file in the home directory.
const StartupFileName = ".nedrc"

type Config struct {
	Fallback      ned.Size // terminal size when it can't be queried
	Placeholder   string   // drawn on rows past the end of the buffer
	UnnamedLabel  string   // info bar label of a buffer without a file
	ModifiedGlyph string   // info bar mark of a modified buffer
	InputTimeout  int      // tenths of a second to wait for a key
	HelpMessage   string   // shown at startup when no file is given
}

func Default() *Config {
	return &Config{
		Fallback:      ned.Size{Rows: 24, Cols: 80},
		Placeholder:   "~",
		UnnamedLabel:  "[No Name]",
		ModifiedGlyph: "*",
		InputTimeout:  1,
		HelpMessage:   "Help: Ctrl+S=Save | Ctrl+Q=Quit",
	}
}

// DefaultPath returns the path of the startup file, or "" if there is no
// home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, StartupFileName)
}

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
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/timburks/ned/commander"
	"github.com/timburks/ned/config"
	"github.com/timburks/ned/editor"
	"github.com/timburks/ned/screen"
)

const logFileName = ".nedlog"

type arguments struct {
	filename   string
	configPath string
	script     string
}

func parseArguments(args []string) (*arguments, error) {
	a := &arguments{configPath: config.DefaultPath()}
	for i := 0; i < len(args); i++ {
		argi := args[i]
		switch argi {
		case "--config": // startup file
			i++
			if i == len(args) {
				return nil, errors.New("no file specified for --config option")
			}
			a.configPath = args[i]
		case "--eval": // expressions evaluated after the startup file
			i++
			if i == len(args) {
				return nil, errors.New("no expression specified for --eval option")
			}
			a.script = args[i]
		default:
			if a.filename != "" {
				return nil, fmt.Errorf("only one file can be edited, got %s and %s", a.filename, argi)
			}
			a.filename = argi
		}
	}
	return a, nil
}

// Open a log file in the home directory; without one, logs are discarded
// so they never reach the terminal.
func openLog() io.Closer {
	log.SetOutput(io.Discard)
	home, err := os.UserHomeDir()
	if err != nil {
		return io.NopCloser(nil)
	}
	f, err := os.OpenFile(filepath.Join(home, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return io.NopCloser(nil)
	}
	log.SetOutput(f)
	return f
}

func run(args []string) error {
	a, err := parseArguments(args)
	if err != nil {
		return err
	}

	f := openLog()
	defer f.Close()

	c := config.Default()
	if err = c.LoadFile(a.configPath); err != nil {
		log.Printf("config: %v", err)
	}
	if a.script != "" {
		if err = c.Eval(a.script); err != nil {
			log.Printf("--eval: %v", err)
		}
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	if a.filename != "" {
		if err = e.ReadFile(a.filename); err != nil {
			log.Output(1, err.Error())
		} else {
			log.Printf("opened %s (%d rows)", a.filename, e.Buffer.GetRowCount())
		}
	} else {
		e.SetMessage("%s", c.HelpMessage)
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen(screen.Options{
		Placeholder:   c.Placeholder,
		UnnamedLabel:  c.UnnamedLabel,
		ModifiedGlyph: c.ModifiedGlyph,
		Fallback:      c.Fallback,
		InputTimeout:  c.InputTimeout,
	})
	if err != nil {
		log.Printf("screen: %v", err)
		return err
	}
	// The terminal is restored on every return and on panics.
	defer s.Close()

	terminate := make(chan os.Signal, 1)
	signal.Notify(terminate, unix.SIGTERM, unix.SIGHUP)
	defer signal.Stop(terminate)

	// The commander converts user inputs into commands for the editor.
	cmd := commander.NewCommander(e)

	// Run the main event loop.
	for cmd.IsRunning() {
		select {
		case sig := <-terminate:
			log.Printf("exiting on %v", sig)
			return nil
		default:
		}
		if s.Resized() {
			log.Printf("resized to %+v", s.Size())
		}
		if err = s.Render(e); err != nil {
			return err
		}
		event, err := s.GetNextEvent()
		if err != nil {
			return err
		}
		if err = cmd.ProcessEvent(event); err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ned: %v\n", err)
		os.Exit(1)
	}
}

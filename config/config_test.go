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
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ned "github.com/timburks/ned/types"
)

func TestSplitExpressions(t *testing.T) {
	source := `; ned startup file
(set-placeholder "~") ; the usual
(set-help-message "a ; (not a comment)")

(set-fallback-size
   30 100)
42
`
	expressions, err := splitExpressions(source)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	expected := []string{
		`(set-placeholder "~")`,
		`(set-help-message "a ; (not a comment)")`,
		"(set-fallback-size\n   30 100)",
		"42",
	}
	if strings.Join(expressions, "|") != strings.Join(expected, "|") {
		t.Errorf("Unexpected expressions: %q", expressions)
	}
}

func TestSplitExpressionsErrors(t *testing.T) {
	for _, source := range []string{
		"(set-placeholder \"~\"",
		"(a))",
		"(set-placeholder \"~)",
	} {
		if _, err := splitExpressions(source); err == nil {
			t.Errorf("Expected an error for %q", source)
		}
	}
}

func TestEval(t *testing.T) {
	c := Default()
	err := c.Eval(`(set-placeholder ".")
(set-unnamed-label "<new>")
(set-modified-glyph "+")
(set-help-message "Ctrl+Q quits")
(set-fallback-size 30 100)
(set-input-timeout 3)`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if c.Placeholder != "." || c.UnnamedLabel != "<new>" || c.ModifiedGlyph != "+" || c.HelpMessage != "Ctrl+Q quits" {
		t.Errorf("Unexpected strings: %+v", c)
	}
	if c.Fallback != (ned.Size{Rows: 30, Cols: 100}) || c.InputTimeout != 3 {
		t.Errorf("Unexpected numbers: %+v", c)
	}
}

func TestEvalRejectsBadArguments(t *testing.T) {
	for _, source := range []string{
		"(set-placeholder 3)",
		"(set-fallback-size 1 80)",
		"(set-input-timeout 0)",
		"(set-input-timeout \"fast\")",
	} {
		c := Default()
		if err := c.Eval(source); err == nil {
			t.Errorf("Expected an error for %s", source)
		}
		if *c != *Default() {
			t.Errorf("%s changed the config: %+v", source, c)
		}
	}
}

func TestLoadFile(t *testing.T) {
	c := Default()
	if err := c.LoadFile(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Errorf("Missing startup file: %v", err)
	}
	if err := c.LoadFile(""); err != nil {
		t.Errorf("Empty path: %v", err)
	}
	path := filepath.Join(t.TempDir(), StartupFileName)
	if err := os.WriteFile(path, []byte("; placeholder\n(set-placeholder \"#\")\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.Placeholder != "#" {
		t.Errorf("Unexpected placeholder: %s", c.Placeholder)
	}
}

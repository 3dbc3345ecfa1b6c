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
	"errors"
	"fmt"
	"os"
	"unicode"

	"github.com/steelseries/golisp"
)

// The config that primitives modify while Eval is running.
// Eval is not safe for concurrent use.
var current *Config

func init() {
	golisp.MakePrimitiveFunction("set-placeholder", "1", SetPlaceholderImpl)
	golisp.MakePrimitiveFunction("set-unnamed-label", "1", SetUnnamedLabelImpl)
	golisp.MakePrimitiveFunction("set-modified-glyph", "1", SetModifiedGlyphImpl)
	golisp.MakePrimitiveFunction("set-help-message", "1", SetHelpMessageImpl)
	golisp.MakePrimitiveFunction("set-fallback-size", "2", SetFallbackSizeImpl)
	golisp.MakePrimitiveFunction("set-input-timeout", "1", SetInputTimeoutImpl)
}

func stringArg(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func intArg(name string, val *golisp.Data) (int, error) {
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), nil
	}
	return 0, fmt.Errorf("%s requires numeric arguments", name)
}

func SetPlaceholderImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	s, err := stringArg("set-placeholder", args)
	if err != nil {
		return nil, err
	}
	current.Placeholder = s
	return golisp.Car(args), nil
}

func SetUnnamedLabelImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	s, err := stringArg("set-unnamed-label", args)
	if err != nil {
		return nil, err
	}
	current.UnnamedLabel = s
	return golisp.Car(args), nil
}

func SetModifiedGlyphImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	s, err := stringArg("set-modified-glyph", args)
	if err != nil {
		return nil, err
	}
	current.ModifiedGlyph = s
	return golisp.Car(args), nil
}

func SetHelpMessageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	s, err := stringArg("set-help-message", args)
	if err != nil {
		return nil, err
	}
	current.HelpMessage = s
	return golisp.Car(args), nil
}

func SetFallbackSizeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	rows, err := intArg("set-fallback-size", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	cols, err := intArg("set-fallback-size", golisp.Car(golisp.Cdr(args)))
	if err != nil {
		return nil, err
	}
	if rows < 3 || cols < 1 {
		return nil, errors.New("set-fallback-size requires at least 3 rows and 1 column")
	}
	current.Fallback.Rows = rows
	current.Fallback.Cols = cols
	return args, nil
}

func SetInputTimeoutImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	tenths, err := intArg("set-input-timeout", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	if tenths < 1 || tenths > 255 {
		return nil, errors.New("set-input-timeout requires a value from 1 to 255")
	}
	current.InputTimeout = tenths
	return golisp.Car(args), nil
}

// Eval evaluates each top-level expression in source against c.
// Evaluation stops at the first error.
func (c *Config) Eval(source string) error {
	expressions, err := splitExpressions(source)
	if err != nil {
		return err
	}
	current = c
	defer func() { current = nil }()
	for _, expression := range expressions {
		if _, err := golisp.ParseAndEval(expression); err != nil {
			return fmt.Errorf("evaluating %s: %w", expression, err)
		}
	}
	return nil
}

// LoadFile evaluates a startup file. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	source, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err = c.Eval(string(source)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// stripComments blanks out comments that aren't inside strings.
func stripComments(source string) string {
	out := []byte(source)
	inString := false
	for i := 0; i < len(out); i++ {
		switch {
		case inString && out[i] == '\\':
			i++
		case out[i] == '"':
			inString = !inString
		case !inString && out[i] == ';':
			for ; i < len(out) && out[i] != '\n'; i++ {
				out[i] = ' '
			}
		}
	}
	return string(out)
}

// splitExpressions breaks source into its top-level expressions.
func splitExpressions(source string) ([]string, error) {
	source = stripComments(source)
	expressions := make([]string, 0)
	depth := 0
	start := -1
	inString := false
	for i := 0; i < len(source); i++ {
		ch := source[i]
		if inString {
			switch ch {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch {
		case ch == '"':
			if start < 0 {
				start = i
			}
			inString = true
		case ch == '(':
			if start < 0 {
				start = i
			}
			depth++
		case ch == ')':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced parentheses")
			}
			if depth == 0 {
				expressions = append(expressions, source[start:i+1])
				start = -1
			}
		case unicode.IsSpace(rune(ch)):
			if depth == 0 && start >= 0 {
				expressions = append(expressions, source[start:i])
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if inString {
		return nil, errors.New("unterminated string")
	}
	if depth != 0 {
		return nil, errors.New("unbalanced parentheses")
	}
	if start >= 0 {
		expressions = append(expressions, source[start:])
	}
	return expressions, nil
}

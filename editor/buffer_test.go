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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const source = "testdata/gettysburg-address.txt"

func rowsOf(b *Buffer) []string {
	rows := make([]string, 0, b.GetRowCount())
	for i := 0; i < b.GetRowCount(); i++ {
		rows = append(rows, string(b.GetRow(i)))
	}
	return rows
}

func bufferWithRows(rows ...string) *Buffer {
	b := NewBuffer()
	for i, row := range rows {
		b.InsertRow(i, []byte(row))
	}
	b.modified = false
	return b
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	b := NewBuffer()
	if err := b.ReadFile(source); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if b.GetModified() {
		t.Errorf("Buffer is modified after reading")
	}
	if b.GetFileName() != source {
		t.Errorf("Unexpected file name: %s", b.GetFileName())
	}
	final := filepath.Join(t.TempDir(), "test-final.txt")
	if err := b.WriteFile(final); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	expected, _ := os.ReadFile(source)
	actual, _ := os.ReadFile(final)
	if string(expected) != string(actual) {
		t.Errorf("Written file differs from %s", source)
	}
}

func TestSaveAndReopen(t *testing.T) {
	for _, rows := range [][]string{
		{},
		{""},
		{"first", "", "third", "", ""},
		{"  indented", "trailing  ", "x"},
	} {
		b := bufferWithRows(rows...)
		path := filepath.Join(t.TempDir(), "roundtrip.txt")
		if err := b.WriteFile(path); err != nil {
			t.Fatalf("Write failed: %+v", err)
		}
		reopened := NewBuffer()
		if err := reopened.ReadFile(path); err != nil {
			t.Fatalf("Read failed: %+v", err)
		}
		if got := rowsOf(reopened); strings.Join(got, "|") != strings.Join(rows, "|") || len(got) != len(rows) {
			t.Errorf("Round trip of %q produced %q", rows, got)
		}
	}
}

func TestLoadLinesStripsTerminators(t *testing.T) {
	b := NewBuffer()
	if err := b.LoadLines(strings.NewReader("dos\r\nunix\n\nlast")); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	expected := []string{"dos", "unix", "", "last"}
	if got := rowsOf(b); strings.Join(got, "|") != strings.Join(expected, "|") {
		t.Errorf("Unexpected rows: %q", got)
	}
}

func TestLoadEmptyFileHasNoRows(t *testing.T) {
	b := NewBuffer()
	if err := b.LoadLines(strings.NewReader("")); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if b.GetRowCount() != 0 {
		t.Errorf("Empty file produced %d rows", b.GetRowCount())
	}
	if len(b.Bytes()) != 0 {
		t.Errorf("Empty buffer serialized to %q", b.Bytes())
	}
}

func TestBytesTerminatesEveryRow(t *testing.T) {
	b := bufferWithRows("a", "")
	if got := string(b.Bytes()); got != "a\n\n" {
		t.Errorf("Unexpected bytes: %q", got)
	}
}

func TestInsertRowBounds(t *testing.T) {
	b := bufferWithRows("a", "b")
	if b.InsertRow(3, []byte("x")) || b.InsertRow(-1, []byte("x")) {
		t.Errorf("InsertRow accepted an invalid position")
	}
	if b.GetModified() {
		t.Errorf("Rejected insertion marked the buffer modified")
	}
	b.InsertRow(2, []byte("c"))
	b.InsertRow(0, []byte("z"))
	if got := strings.Join(rowsOf(b), ""); got != "zabc" {
		t.Errorf("Unexpected rows: %s", got)
	}
	if !b.GetModified() {
		t.Errorf("Insertion didn't mark the buffer modified")
	}
}

func TestDeleteRowBounds(t *testing.T) {
	b := bufferWithRows("a", "b", "c")
	if b.DeleteRow(3) || b.DeleteRow(-1) {
		t.Errorf("DeleteRow accepted an invalid position")
	}
	b.DeleteRow(1)
	if got := strings.Join(rowsOf(b), ""); got != "ac" {
		t.Errorf("Unexpected rows: %s", got)
	}
}

func TestSplitRowAndAppendString(t *testing.T) {
	b := bufferWithRows("hello world", "next")
	b.SplitRow(0, 5)
	if got := strings.Join(rowsOf(b), "|"); got != "hello| world|next" {
		t.Errorf("Unexpected rows after split: %s", got)
	}
	b.AppendString(0, b.GetRow(1))
	b.DeleteRow(1)
	if got := strings.Join(rowsOf(b), "|"); got != "hello world|next" {
		t.Errorf("Unexpected rows after join: %s", got)
	}
}

func TestDeleteCharacterBounds(t *testing.T) {
	b := bufferWithRows("abc")
	if b.DeleteCharacter(0, 3) || b.DeleteCharacter(1, 0) {
		t.Errorf("DeleteCharacter accepted an invalid position")
	}
	if b.GetModified() {
		t.Errorf("Rejected deletion marked the buffer modified")
	}
	b.DeleteCharacter(0, 0)
	if got := string(b.GetRow(0)); got != "bc" {
		t.Errorf("Unexpected text: %s", got)
	}
}

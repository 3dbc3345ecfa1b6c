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

// Package editor implements the text model of ned.
// A Buffer holds the rows of a single file. The Editor owns the buffer,
// the cursor and the viewport, and keeps the cursor valid across every
// edit so that rendering never has to check it. An empty buffer has no
// rows at all, and the cursor may sit one row past the last row.
package editor

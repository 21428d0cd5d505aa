// Package input loads Advent of Code puzzle inputs.
//
// A day's input is either read whole or split into lines on '\n'. Nothing is
// trimmed: a trailing newline stays on the text and shows up as a final empty
// line. A missing file is reported once on the logger and reads as empty.
package input

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/cp"
)

// DefaultDir is where inputs live relative to the working directory.
const DefaultDir = "textfiles"

const openFailed = "An error occurred, the file cannot be opened."

// A Dir reads inputs from files named DD.txt (zero-padded day) in a directory.
type Dir struct {
	Path string
	Log  *log.Logger // nil means plain messages on stderr
}

// Filename returns the path of the input file for day.
func (d Dir) Filename(day int) string {
	dir := d.Path
	if dir == "" {
		dir = DefaultDir
	}
	return filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
}

// Text returns the whole input for day.
func (d Dir) Text(day int) string {
	b, err := os.ReadFile(d.Filename(day))
	if err != nil {
		d.logger().Println(openFailed)
		return ""
	}
	return string(b)
}

// Lines returns the input for day split on '\n'.
func (d Dir) Lines(day int) []string {
	b, err := os.ReadFile(d.Filename(day))
	if err != nil {
		d.logger().Println(openFailed)
		return nil
	}
	return strings.Split(string(b), "\n")
}

// Size reports the size in bytes of the input file for day.
func (d Dir) Size(day int) (int64, error) {
	fi, err := os.Stat(d.Filename(day))
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// Install copies the file at src into place as the input for day,
// creating the directory if needed.
func (d Dir) Install(day int, src string) error {
	if day < 1 {
		return fmt.Errorf("bad day %d", day)
	}
	dst := d.Filename(day)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	if err := cp.CopyFile(dst, src); err != nil {
		return fmt.Errorf("cannot install input for day %d: %s", day, err)
	}
	return nil
}

func (d Dir) logger() *log.Logger {
	if d.Log != nil {
		return d.Log
	}
	return stderr
}

// stderr writes bare messages, with no timestamp or prefix.
var stderr = log.New(os.Stderr, "", 0)

// Memory holds inputs in memory, keyed by day.
// A day with no entry reads as empty.
type Memory map[int]string

// Text returns the input for day as stored.
func (m Memory) Text(day int) string {
	return m[day]
}

// Lines returns the input for day split on '\n', or nil if there is none.
func (m Memory) Lines(day int) []string {
	s, ok := m[day]
	if !ok {
		return nil
	}
	return strings.Split(s, "\n")
}

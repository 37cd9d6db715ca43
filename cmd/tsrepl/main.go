// Command tsrepl is a line-oriented demonstration client for the
// tuplespace core: each input line is a verb (out, in, or rd) followed
// by a tuple literal.
//
// An optional argument names a directory to record the session
// into: every accepted line is appended to a transcript file there, and
// the directory is snapshotted into a local git history on exit, so a
// session can be replayed or diffed later.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"

	"github.com/linda-space/tuplespace/internal/fixtures"
	"github.com/linda-space/tuplespace/internal/literal"
	"github.com/linda-space/tuplespace/space"
	"github.com/linda-space/tuplespace/store"
)

func _main(args []string) error {
	if len(args) > 2 {
		return errors.New("tsrepl: usage: tsrepl [record-dir]")
	}

	var recordDir string
	var transcript *os.File
	if len(args) == 2 {
		recordDir = args[1]
		if err := os.MkdirAll(recordDir, 0o755); err != nil {
			return fmt.Errorf("tsrepl: preparing record directory: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(recordDir, "session.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("tsrepl: opening transcript: %w", err)
		}
		defer f.Close()
		transcript = f
	}

	sp := space.New(store.New())
	out := colorable.NewColorableStdout()
	verbColor := color.New(color.FgHiCyan).SprintFunc()
	okColor := color.New(color.FgHiGreen).SprintFunc()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := eval(sp, line, out, verbColor, okColor); err != nil {
			fmt.Fprintf(out, "%s\n", literal.FormatError(err, true))
			continue
		}
		if transcript != nil {
			fmt.Fprintln(transcript, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if recordDir != "" {
		if _, err := fixtures.Snapshot(recordDir, "tsrepl session"); err != nil {
			return fmt.Errorf("tsrepl: snapshotting session: %w", err)
		}
	}
	return nil
}

func eval(sp *space.Space, line string, out io.Writer, verbColor, okColor func(...interface{}) string) error {
	verb, arg, ok := strings.Cut(line, " ")
	if !ok {
		return fmt.Errorf("tsrepl: expected a verb and a tuple, got %q", line)
	}
	tup, err := literal.Parse(strings.TrimSpace(arg))
	if err != nil {
		return err
	}

	switch verb {
	case "out":
		if err := sp.TupleOut(tup); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", verbColor("out"), okColor(tup.String()))
		return nil
	case "in", "rd":
		var match *space.Match
		if verb == "in" {
			match = sp.TupleIn(tup)
		} else {
			match = sp.TupleRd(tup)
		}
		got, delivered, err := match.Wait(context.Background())
		if err != nil {
			return err
		}
		if !delivered {
			fmt.Fprintf(out, "%s (no match)\n", verbColor(verb))
			return nil
		}
		fmt.Fprintf(out, "%s %s\n", verbColor(verb), okColor(got.String()))
		return nil
	default:
		return fmt.Errorf("tsrepl: unknown verb %q (want out, in, or rd)", verb)
	}
}

func main() {
	if err := _main(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", literal.FormatError(err, true))
		os.Exit(1)
	}
}

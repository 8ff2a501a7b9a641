package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"ft-go/internal/ft"
)

// App is the application surface the interactive session drives.
type App interface {
	// Resolve validates a raw path, requiring an existing regular file.
	Resolve(rawPath string) (*ft.Path, error)
	// ChangeTimestamps executes one update request and returns the fields
	// actually written.
	ChangeTimestamps(req *ft.Request) (ft.Selection, error)
	// CanSetCreation reports whether this platform can write creation times.
	CanSetCreation() bool
}

// errAbort abandons the current operation and returns to the
// another-operation prompt. Raised after failures that re-prompting the
// same question cannot fix.
var errAbort = errors.New("operation abandoned")

// Session runs the interactive prompt loop: one timestamp update per
// iteration until the operator declines to continue or input ends.
// Failures inside an operation are reported and never terminate the
// session, let alone the process.
type Session struct {
	prompter   *Prompter
	app        App
	out        io.Writer
	timeFormat string

	// Banner enables the greeting line. The CLI turns it off when stdin is
	// not a terminal so scripted input sees only prompts and reports.
	Banner bool
}

// NewSession creates a Session that prompts on out, reads answers from in,
// and renders timestamps with timeFormat.
func NewSession(app App, in io.Reader, out io.Writer, timeFormat string) *Session {
	return &Session{
		prompter:   New(in, out),
		app:        app,
		out:        out,
		timeFormat: timeFormat,
	}
}

// Run drives prompt iterations until the operator stops. Exhausted input
// ends the session cleanly; only console I/O failures surface as errors.
func (s *Session) Run() error {
	if s.Banner {
		fmt.Fprintln(s.out, "File timestamp changer (interactive mode)")
	}

	for {
		if err := s.runOnce(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		again, err := s.prompter.Confirm("Perform another operation? [y/N]: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
	}
}

// runOnce walks the operator through a single update: target, time source,
// field selection, then a summary with a final confirmation.
func (s *Session) runOnce() error {
	target, err := s.askExistingFile("Target file: ")
	if err != nil {
		if errors.Is(err, errAbort) {
			return nil
		}
		return err
	}

	src, err := s.askSource()
	if err != nil {
		if errors.Is(err, errAbort) {
			return nil
		}
		return err
	}

	sel, err := s.askFields()
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nTarget file: %s\n", target)
	fmt.Fprintf(s.out, "New time:    %s\n", src.Describe(s.timeFormat))
	fmt.Fprintf(s.out, "Fields:      %s\n", s.fieldNames(sel))

	proceed, err := s.prompter.Confirm("Proceed? [y/N]: ")
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Fprintln(s.out, "Operation cancelled.")
		return nil
	}

	written, err := s.app.ChangeTimestamps(&ft.Request{
		Target: target,
		Source: src,
		Fields: sel,
	})
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}

	fmt.Fprintln(s.out, ft.SuccessMessage(target, written, src, s.timeFormat))
	return nil
}

// askExistingFile prompts until the operator names an existing regular
// file. Failures that a different answer cannot fix abandon the operation.
func (s *Session) askExistingFile(question string) (string, error) {
	for {
		answer, err := s.prompter.Ask(question)
		if err != nil {
			return "", err
		}
		if answer == "" {
			fmt.Fprintln(s.out, "A file path is required.")
			continue
		}

		if _, err := s.app.Resolve(answer); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			switch ft.CategoryOf(err) {
			case ft.CategoryNotFound, ft.CategoryInvalidInput:
				continue
			default:
				return "", errAbort
			}
		}
		return answer, nil
	}
}

// askSource prompts for the origin of the new timestamp values: an
// explicit date/time or another file to copy from.
func (s *Session) askSource() (ft.TimeSource, error) {
	for {
		answer, err := s.prompter.Ask("Set timestamps from an explicit (d)ate or (c)opy them from another file? [d/c]: ")
		if err != nil {
			return ft.TimeSource{}, err
		}

		switch strings.ToLower(answer) {
		case "d", "date":
			return s.askDate()
		case "c", "copy":
			path, err := s.askExistingFile("Copy timestamps from file: ")
			if err != nil {
				return ft.TimeSource{}, err
			}
			return ft.CopyFrom(path), nil
		}
		fmt.Fprintln(s.out, "Please answer 'd' or 'c'.")
	}
}

// askDate prompts until the operator enters a recognizable date/time.
func (s *Session) askDate() (ft.TimeSource, error) {
	for {
		answer, err := s.prompter.Ask("New date/time: ")
		if err != nil {
			return ft.TimeSource{}, err
		}

		if t, ok := ft.ParseDate(answer); ok {
			return ft.ExplicitInstant(t), nil
		}
		fmt.Fprintf(s.out, "Unrecognized date. Accepted formats: %s.\n", strings.Join(ft.DateFormats, ", "))
	}
}

// askFields prompts for the timestamp fields to change. Answering yes to
// the first question, or no to every per-field question, leaves the
// selection empty, which the engine expands to every settable field.
func (s *Session) askFields() (ft.Selection, error) {
	all, err := s.prompter.Confirm("Change all timestamps? [y/N]: ")
	if err != nil {
		return ft.Selection{}, err
	}
	if all {
		return ft.Selection{}, nil
	}

	var sel ft.Selection
	if s.app.CanSetCreation() {
		sel.Creation, err = s.prompter.Confirm("Change creation time? [y/N]: ")
		if err != nil {
			return ft.Selection{}, err
		}
	}
	sel.Access, err = s.prompter.Confirm("Change access time? [y/N]: ")
	if err != nil {
		return ft.Selection{}, err
	}
	sel.Modified, err = s.prompter.Confirm("Change modification time? [y/N]: ")
	if err != nil {
		return ft.Selection{}, err
	}
	return sel, nil
}

// fieldNames renders a selection for the summary, spelling out what an
// empty selection will change on this platform.
func (s *Session) fieldNames(sel ft.Selection) string {
	if sel.IsEmpty() {
		return ft.DefaultSelection(s.app.CanSetCreation()).String() + " (all)"
	}
	return sel.String()
}

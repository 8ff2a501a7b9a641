package prompt_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"ft-go/internal/ft"
	"ft-go/internal/prompt"
	"ft-go/internal/testutil"
)

var (
	preCreation = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	preAccess   = time.Date(2020, 2, 2, 12, 0, 0, 0, time.UTC)
	preModified = time.Date(2020, 3, 3, 18, 30, 0, 0, time.UTC)
)

// scriptApp wires the real engine to the mock filesystem, the same way the
// CLI wires its application layer.
type scriptApp struct {
	fsmgr *testutil.MockFilesystemManager
	svc   *ft.TimeService
}

func (a *scriptApp) Resolve(rawPath string) (*ft.Path, error) {
	return a.fsmgr.Resolve(rawPath)
}

func (a *scriptApp) ChangeTimestamps(req *ft.Request) (ft.Selection, error) {
	p, err := a.fsmgr.Resolve(req.Target)
	if err != nil {
		return ft.Selection{}, err
	}
	return a.svc.WriteTimestamps(p, req.Fields, req.Source)
}

func (a *scriptApp) CanSetCreation() bool {
	return a.fsmgr.CanSetCreation()
}

func newScriptApp(t *testing.T) *scriptApp {
	t.Helper()
	fsmgr := testutil.NewMockFilesystemManager()
	fsmgr.AddFile("/home/user/a.txt", ft.Timestamps{
		Creation: preCreation,
		Access:   preAccess,
		Modified: preModified,
	})
	return &scriptApp{
		fsmgr: fsmgr,
		svc:   ft.NewTimeService(fsmgr, ft.NewNopLogger()),
	}
}

// runSession feeds scripted answers to a session and returns its console output.
func runSession(t *testing.T, app prompt.App, answers ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	var out bytes.Buffer

	s := prompt.NewSession(app, in, &out, "2006-01-02 15:04:05")
	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestSession_ExplicitDate(t *testing.T) {
	t.Run("changes all fields", func(t *testing.T) {
		app := newScriptApp(t)

		out := runSession(t, app,
			"/home/user/a.txt",
			"d",
			"2021-06-15 10:00:00",
			"y", // all fields
			"y", // proceed
			"n", // another operation
		)

		want := "Successfully changed creation, access, modification timestamp(s) of '/home/user/a.txt' to 2021-06-15 10:00:00."
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}

		instant := time.Date(2021, 6, 15, 10, 0, 0, 0, time.Local)
		got := app.fsmgr.File("/home/user/a.txt").Times
		if !got.Creation.Equal(instant) || !got.Access.Equal(instant) || !got.Modified.Equal(instant) {
			t.Errorf("Times = %+v, want all %v", got, instant)
		}
	})

	t.Run("changes only the selected field", func(t *testing.T) {
		app := newScriptApp(t)

		out := runSession(t, app,
			"/home/user/a.txt",
			"d",
			"2021-06-15 10:00:00",
			"n", // not all fields
			"n", // creation
			"y", // access
			"n", // modification
			"y", // proceed
			"n",
		)

		if !strings.Contains(out, "Fields:      access\n") {
			t.Errorf("summary missing selected field:\n%s", out)
		}
		if !strings.Contains(out, "Successfully changed access timestamp(s) of '/home/user/a.txt'") {
			t.Errorf("output missing success line:\n%s", out)
		}

		got := app.fsmgr.File("/home/user/a.txt").Times
		if !got.Access.Equal(time.Date(2021, 6, 15, 10, 0, 0, 0, time.Local)) {
			t.Errorf("Access = %v, want the entered date", got.Access)
		}
		if !got.Creation.Equal(preCreation) || !got.Modified.Equal(preModified) {
			t.Errorf("unselected fields changed: %+v", got)
		}
	})

	t.Run("declining every field falls back to all settable fields", func(t *testing.T) {
		app := newScriptApp(t)

		out := runSession(t, app,
			"/home/user/a.txt",
			"d",
			"2021-06-15 10:00:00",
			"n", "n", "n", "n", // not all, then no to each field
			"y", // proceed
			"n",
		)

		if !strings.Contains(out, "Fields:      creation, access, modification (all)\n") {
			t.Errorf("summary should spell out the default selection:\n%s", out)
		}

		instant := time.Date(2021, 6, 15, 10, 0, 0, 0, time.Local)
		got := app.fsmgr.File("/home/user/a.txt").Times
		if !got.Creation.Equal(instant) || !got.Access.Equal(instant) || !got.Modified.Equal(instant) {
			t.Errorf("Times = %+v, want all %v", got, instant)
		}
	})

	t.Run("skips the creation question where unsupported", func(t *testing.T) {
		app := newScriptApp(t)
		app.fsmgr.CreationSettable = false

		out := runSession(t, app,
			"/home/user/a.txt",
			"d",
			"2021-06-15 10:00:00",
			"n", // not all fields
			"y", // access
			"n", // modification
			"y", // proceed
			"n",
		)

		if strings.Contains(out, "Change creation time?") {
			t.Errorf("creation question should be skipped:\n%s", out)
		}
		if !strings.Contains(out, "Successfully changed access timestamp(s)") {
			t.Errorf("output missing success line:\n%s", out)
		}
	})
}

func TestSession_CopySource(t *testing.T) {
	srcTimes := ft.Timestamps{
		Creation: time.Date(2019, 5, 5, 5, 5, 5, 0, time.UTC),
		Access:   time.Date(2019, 6, 6, 6, 6, 6, 0, time.UTC),
		Modified: time.Date(2019, 7, 7, 7, 7, 7, 0, time.UTC),
	}

	app := newScriptApp(t)
	app.fsmgr.AddFile("/home/user/b.txt", srcTimes)

	out := runSession(t, app,
		"/home/user/a.txt",
		"c",
		"/home/user/b.txt",
		"y", // all fields
		"y", // proceed
		"n",
	)

	want := "Successfully changed creation, access, modification timestamp(s) of '/home/user/a.txt' to match '/home/user/b.txt'."
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}

	if got := app.fsmgr.File("/home/user/a.txt").Times; got != srcTimes {
		t.Errorf("Times = %+v, want source triple %+v", got, srcTimes)
	}
}

func TestSession_Reprompts(t *testing.T) {
	t.Run("missing target", func(t *testing.T) {
		app := newScriptApp(t)

		out := runSession(t, app,
			"/home/user/nope.txt",
			"/home/user/a.txt",
			"d",
			"2021-06-15 10:00:00",
			"y", "y", "n",
		)

		if !strings.Contains(out, "Error: file '/home/user/nope.txt' does not exist") {
			t.Errorf("output missing not-found report:\n%s", out)
		}
		if !strings.Contains(out, "Successfully changed") {
			t.Errorf("session should recover and complete:\n%s", out)
		}
	})

	t.Run("empty target path", func(t *testing.T) {
		app := newScriptApp(t)

		out := runSession(t, app,
			"",
			"/home/user/a.txt",
			"d",
			"2021-06-15 10:00:00",
			"y", "y", "n",
		)

		if !strings.Contains(out, "A file path is required.") {
			t.Errorf("output missing empty-path notice:\n%s", out)
		}
		if !strings.Contains(out, "Successfully changed") {
			t.Errorf("session should recover and complete:\n%s", out)
		}
	})

	t.Run("unrecognized date", func(t *testing.T) {
		app := newScriptApp(t)

		out := runSession(t, app,
			"/home/user/a.txt",
			"d",
			"not-a-date",
			"2021-06-15 10:00:00",
			"y", "y", "n",
		)

		if !strings.Contains(out, "Unrecognized date. Accepted formats: YYYY-MM-DD [HH:MM[:SS]]") {
			t.Errorf("output missing date formats:\n%s", out)
		}
		if !strings.Contains(out, "Successfully changed") {
			t.Errorf("session should recover and complete:\n%s", out)
		}
	})

	t.Run("unrecognized source kind", func(t *testing.T) {
		app := newScriptApp(t)

		out := runSession(t, app,
			"/home/user/a.txt",
			"x",
			"d",
			"2021-06-15 10:00:00",
			"y", "y", "n",
		)

		if !strings.Contains(out, "Please answer 'd' or 'c'.") {
			t.Errorf("output missing source-kind notice:\n%s", out)
		}
		if !strings.Contains(out, "Successfully changed") {
			t.Errorf("session should recover and complete:\n%s", out)
		}
	})
}

func TestSession_Cancel(t *testing.T) {
	app := newScriptApp(t)

	out := runSession(t, app,
		"/home/user/a.txt",
		"d",
		"2021-06-15 10:00:00",
		"y", // all fields
		"n", // do not proceed
		"n",
	)

	if !strings.Contains(out, "Operation cancelled.") {
		t.Errorf("output missing cancellation notice:\n%s", out)
	}
	if len(app.fsmgr.Writes) != 0 {
		t.Errorf("Writes = %d, want none after cancellation", len(app.fsmgr.Writes))
	}

	got := app.fsmgr.File("/home/user/a.txt").Times
	if !got.Creation.Equal(preCreation) || !got.Access.Equal(preAccess) || !got.Modified.Equal(preModified) {
		t.Errorf("Times = %+v, want untouched", got)
	}
}

func TestSession_EngineFailureKeepsSessionAlive(t *testing.T) {
	app := newScriptApp(t)
	app.fsmgr.WriteErr = &ft.OpError{
		Category: ft.CategoryOSFailure,
		Err:      errors.New("device not ready"),
	}

	out := runSession(t, app,
		"/home/user/a.txt",
		"d",
		"2021-06-15 10:00:00",
		"y", // all fields
		"y", // proceed
		"n",
	)

	if !strings.Contains(out, "Error: writing timestamps: device not ready") {
		t.Errorf("output missing engine failure:\n%s", out)
	}
	if !strings.Contains(out, "Perform another operation?") {
		t.Errorf("session should continue after engine failure:\n%s", out)
	}
	if strings.Contains(out, "Successfully changed") {
		t.Errorf("no success line expected:\n%s", out)
	}
}

func TestSession_UnrecoverablePromptFailureAbandonsOperation(t *testing.T) {
	app := newScriptApp(t)
	app.fsmgr.ResolveErr = &ft.OpError{
		Category: ft.CategoryAccessDenied,
		Err:      errors.New("permission denied"),
	}

	out := runSession(t, app,
		"/home/user/a.txt", // rejected, operation abandoned
		"n",
	)

	if !strings.Contains(out, "Error: permission denied") {
		t.Errorf("output missing access-denied report:\n%s", out)
	}
	if !strings.Contains(out, "Perform another operation?") {
		t.Errorf("session should fall through to the continue prompt:\n%s", out)
	}
	if len(app.fsmgr.Writes) != 0 {
		t.Errorf("Writes = %d, want none", len(app.fsmgr.Writes))
	}
}

func TestSession_MultipleOperations(t *testing.T) {
	app := newScriptApp(t)
	app.fsmgr.AddFile("/home/user/b.txt", ft.Timestamps{
		Creation: preCreation,
		Access:   preAccess,
		Modified: preModified,
	})

	out := runSession(t, app,
		"/home/user/a.txt",
		"d",
		"2021-06-15 10:00:00",
		"y", "y",
		"y", // another operation
		"/home/user/b.txt",
		"d",
		"2022-01-01",
		"y", "y",
		"n",
	)

	if got := strings.Count(out, "Successfully changed"); got != 2 {
		t.Errorf("success lines = %d, want 2:\n%s", got, out)
	}
	if len(app.fsmgr.Writes) != 2 {
		t.Errorf("Writes = %d, want 2", len(app.fsmgr.Writes))
	}
}

func TestSession_EOFEndsCleanly(t *testing.T) {
	app := newScriptApp(t)

	// Input dries up in the middle of an operation.
	out := runSession(t, app,
		"/home/user/a.txt",
	)

	if strings.Contains(out, "Successfully changed") {
		t.Errorf("no operation should have completed:\n%s", out)
	}
	if len(app.fsmgr.Writes) != 0 {
		t.Errorf("Writes = %d, want none", len(app.fsmgr.Writes))
	}
}

func TestSession_Banner(t *testing.T) {
	app := newScriptApp(t)
	in := strings.NewReader("n\n")
	var out bytes.Buffer

	s := prompt.NewSession(app, in, &out, "2006-01-02 15:04:05")
	s.Banner = true
	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.HasPrefix(out.String(), "File timestamp changer (interactive mode)\n") {
		t.Errorf("banner missing:\n%s", out.String())
	}
}

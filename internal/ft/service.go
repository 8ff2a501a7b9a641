package ft

import (
	"errors"
	"fmt"
)

// TimeService is the engine behind every timestamp operation: it reads a
// file's timestamp triple and writes selected fields of it from an explicit
// instant or from another file's triple.
type TimeService struct {
	fsmgr  FilesystemManager
	logger Logger
}

// NewTimeService creates a new TimeService with the provided dependencies.
func NewTimeService(fsmgr FilesystemManager, logger Logger) *TimeService {
	return &TimeService{
		fsmgr:  fsmgr,
		logger: logger,
	}
}

// ReadTimestamps returns the current timestamp triple of the file.
func (s *TimeService) ReadTimestamps(path *Path) (Timestamps, error) {
	s.logger.Debug("reading timestamps", "path", path.String())
	return s.fsmgr.ReadTimes(path)
}

// WriteTimestamps changes the selected timestamp fields of the file to
// values taken from src, preserving every unselected field. An empty
// selection means all fields the platform can set. The file's current
// triple is read first and merged with the new values, so the write is
// always a full, consistent triple; on any error the file is untouched.
// Returns the selection actually written.
func (s *TimeService) WriteTimestamps(path *Path, sel Selection, src TimeSource) (Selection, error) {
	current, err := s.fsmgr.ReadTimes(path)
	if err != nil {
		return Selection{}, fmt.Errorf("reading current timestamps: %w", err)
	}

	sel, err = s.effectiveSelection(sel)
	if err != nil {
		return Selection{}, err
	}

	values, err := s.sourceTimes(src)
	if err != nil {
		return Selection{}, err
	}

	resolved := current
	if sel.Creation {
		resolved.Creation = values.Creation
	}
	if sel.Access {
		resolved.Access = values.Access
	}
	if sel.Modified {
		resolved.Modified = values.Modified
	}

	if err := s.fsmgr.WriteTimes(path, resolved); err != nil {
		return Selection{}, fmt.Errorf("writing timestamps: %w", err)
	}

	s.logger.Info("timestamps changed", "path", path.String(), "fields", sel.String(), "source", src.Describe("2006-01-02 15:04:05"))
	return sel, nil
}

// effectiveSelection normalizes the requested selection. An empty selection
// expands to every field the platform can set. Explicitly selecting the
// creation field where it cannot be written is an input error rather than a
// silent no-op.
func (s *TimeService) effectiveSelection(sel Selection) (Selection, error) {
	if sel.IsEmpty() {
		return DefaultSelection(s.fsmgr.CanSetCreation()), nil
	}
	if sel.Creation && !s.fsmgr.CanSetCreation() {
		return Selection{}, &OpError{
			Category: CategoryInvalidInput,
			Err:      errors.New("creation time cannot be changed on this platform"),
		}
	}
	return sel, nil
}

// sourceTimes resolves a TimeSource into the triple of candidate values.
// An explicit instant fills all three fields; a copy source contributes the
// source file's current triple, read fresh here.
func (s *TimeService) sourceTimes(src TimeSource) (Timestamps, error) {
	if t, ok := src.Instant(); ok {
		return Timestamps{Creation: t, Access: t, Modified: t}, nil
	}
	if srcPath, ok := src.SourceFile(); ok {
		p, err := s.fsmgr.Resolve(srcPath)
		if err != nil {
			return Timestamps{}, fmt.Errorf("resolving source file: %w", err)
		}
		ts, err := s.fsmgr.ReadTimes(p)
		if err != nil {
			return Timestamps{}, fmt.Errorf("reading source timestamps: %w", err)
		}
		return ts, nil
	}
	return Timestamps{}, &OpError{
		Category: CategoryInvalidInput,
		Err:      errors.New("no time source given"),
	}
}

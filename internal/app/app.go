package app

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"ft-go/internal/config"
	"ft-go/internal/fs"
	"ft-go/internal/ft"
)

// FTApp is the application layer between the CLI and TimeService.
// It constructs all dependencies from config, exposes high-level operations
// that accept raw string paths, and closes the run log on Close.
type FTApp struct {
	cfg     *config.Config
	fsmgr   ft.FilesystemManager
	service *ft.TimeService
	logger  ft.Logger
	logFile *os.File
	op      *Operation
}

// NewFTApp creates a fully wired FTApp from the given config.
// operation identifies the CLI command being run (e.g. "ChangeTimestamps",
// "Interactive"). The caller must call Close when done.
func NewFTApp(cfg *config.Config, operation string) (*FTApp, error) {
	fsmgr := fs.NewOSFilesystemManager()

	var logger ft.Logger = ft.NewNopLogger()
	var logFile *os.File
	if cfg.LogDir != "" {
		runID := uuid.New().String()
		slogger, f, err := newLogger(cfg.LogDir, runID)
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
		logger = &slogAdapter{l: slogger}
		logFile = f
	}

	svc := ft.NewTimeService(fsmgr, logger)
	op := NewOperation(operation, "")
	logger.Info("run started", "operation", op.Name)

	return &FTApp{
		cfg:     cfg,
		fsmgr:   fsmgr,
		service: svc,
		logger:  logger,
		logFile: logFile,
		op:      op,
	}, nil
}

// DisplayFormat returns the layout for rendering timestamps on the console.
func (a *FTApp) DisplayFormat() string {
	if a.cfg.DisplayFormat == "" {
		return config.DefaultDisplayFormat
	}
	return a.cfg.DisplayFormat
}

// CanSetCreation reports whether this platform can write creation times.
func (a *FTApp) CanSetCreation() bool {
	return a.fsmgr.CanSetCreation()
}

// Resolve validates a raw path, requiring an existing regular file.
func (a *FTApp) Resolve(rawPath string) (*ft.Path, error) {
	return a.fsmgr.Resolve(rawPath)
}

// ShowTimestamps resolves the given path and reads its current triple.
func (a *FTApp) ShowTimestamps(rawPath string) (*ft.Path, ft.Timestamps, error) {
	p, err := a.fsmgr.Resolve(rawPath)
	if err != nil {
		a.op.Fail()
		return nil, ft.Timestamps{}, err
	}
	ts, err := a.service.ReadTimestamps(p)
	if err != nil {
		a.op.Fail()
		return nil, ft.Timestamps{}, err
	}
	return p, ts, nil
}

// ChangeTimestamps executes one update request and returns the fields
// actually written. Failures are logged as well as returned; the caller
// owns the console reporting.
func (a *FTApp) ChangeTimestamps(req *ft.Request) (ft.Selection, error) {
	p, err := a.fsmgr.Resolve(req.Target)
	if err != nil {
		a.op.Fail()
		a.logger.Error("target rejected", "path", req.Target, "error", err)
		return ft.Selection{}, err
	}

	written, err := a.service.WriteTimestamps(p, req.Fields, req.Source)
	if err != nil {
		a.op.Fail()
		a.logger.Error("update failed", "path", p.String(), "error", err)
		return ft.Selection{}, err
	}
	return written, nil
}

// Close finalizes the operation record in the run log and releases the
// run's resources.
func (a *FTApp) Close() error {
	a.logger.Info("run finished", "operation", a.op.Name, "status", a.op.Status)
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

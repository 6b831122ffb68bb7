package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/planner/internal/codec"
	"github.com/roach88/planner/internal/config"
	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/journal"
	"github.com/roach88/planner/internal/schedule"
)

// app is the per-invocation state shared by every command: effective
// configuration, the loaded schedule, the journal and the output formatter.
type app struct {
	cfg     *config.Config
	loc     *time.Location
	sched   *schedule.Schedule
	journal *journal.Journal // nil when journaling is disabled or unavailable
	session string
	logger  *slog.Logger
	now     func() time.Time
	out     *OutputFormatter

	loaded  codec.Report // outcome of the startup load
	loadErr error        // set when the data file could not be read
}

// loadConfig resolves the effective configuration: file, then environment,
// then command-line overrides.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg.ApplyEnv(lookup)

	if opts.DataFile != "" {
		cfg.DataFile = opts.DataFile
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openApp builds the app for one command run and loads the schedule.
//
// A data file that cannot be read is logged and the command continues with
// an empty, read-only schedule. A journal that cannot be opened is logged and the
// command continues without one.
func openApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	sessions := opts.Sessions
	if sessions == nil {
		sessions = UUIDv7Generator{}
	}
	session := sessions.Generate()

	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
		Session:   session,
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, out.FailWith(ExitCommandError, ErrCodeConfig, err.Error(), nil, err)
	}

	// Validate already resolved the zone once.
	loc, _ := cfg.Location()

	logOut := opts.LogOutput
	if logOut == nil {
		logOut = os.Stderr
	}
	logger := newLogger(logOut, cfg.Level()).With("session", session)
	slog.SetDefault(logger)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := &app{
		cfg:     cfg,
		loc:     loc,
		sched:   schedule.New(cfg.Capacity),
		session: session,
		logger:  logger,
		now:     now,
		out:     out,
	}
	a.load()

	if cfg.JournalFile != "" {
		j, err := journal.Open(cfg.JournalFile)
		if err != nil {
			logger.Warn("journal unavailable, continuing without it", "path", cfg.JournalFile, "error", err)
		} else {
			a.journal = j
		}
	}

	return a, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// load reads the data file into the schedule, logging anything skipped.
func (a *app) load() {
	path := a.cfg.DataFile
	rep, err := codec.LoadInto(path, a.sched)
	a.loaded, a.loadErr = rep, err
	switch {
	case err != nil:
		a.logger.Warn("could not load schedule, starting empty", "path", path, "error", err)
		return
	case rep.Missing:
		a.logger.Info("no existing schedule file found", "path", path)
		return
	}

	for _, sk := range rep.Skipped {
		msg := "skipped unreadable event record"
		if event.IsMalformedRecord(sk.Err) {
			msg = "skipped malformed event record"
		}
		a.logger.Warn(msg, "path", path, "record", sk.Index, "error", sk.Err)
	}
	if missing := rep.Declared - rep.Loaded - len(rep.Skipped); missing > 0 {
		a.logger.Warn("schedule file ended early", "path", path, "declared", rep.Declared, "missing", missing)
	}
	for _, id := range rep.Restore.Duplicates {
		a.logger.Warn("dropped duplicate event id", "path", path, "id", id)
	}
	for _, id := range rep.Restore.Invalid {
		a.logger.Warn("dropped invalid event", "path", path, "id", id)
	}
	if rep.Restore.Overflow > 0 {
		a.logger.Warn("schedule over capacity, events dropped", "path", path, "dropped", rep.Restore.Overflow)
	}
	a.logger.Info("schedule loaded", "path", path, "events", a.sched.Len())
}

// close releases the journal.
func (a *app) close() {
	if err := a.journal.Close(); err != nil {
		a.logger.Error("error closing journal", "error", err)
	}
}

// today is the current calendar date in the configured zone.
func (a *app) today() event.Date {
	return event.DateOf(a.now().In(a.loc))
}

// save writes the schedule to the data file. It refuses when the startup
// load failed: the file may still hold events this run never saw.
func (a *app) save() error {
	if a.loadErr != nil {
		return event.NewIO("data file could not be loaded; refusing to overwrite "+a.cfg.DataFile, a.loadErr)
	}
	if err := codec.SaveFrom(a.cfg.DataFile, a.sched); err != nil {
		return err
	}
	a.logger.Info("schedule saved", "path", a.cfg.DataFile, "events", a.sched.Len())
	return nil
}

// record appends journal entries, stamped with this session and the clock.
// Journal failures are logged and never fail the command.
func (a *app) record(ctx context.Context, entries ...journal.Entry) {
	if a.journal == nil {
		return
	}
	for _, e := range entries {
		e.Session = a.session
		e.RecordedAt = a.now()
		if _, err := a.journal.Record(ctx, e); err != nil {
			a.logger.Warn("journal write failed", "op", e.Op, "event_id", e.EventID, "error", err)
		}
	}
}

// commit saves the schedule and then journals the change.
func (a *app) commit(ctx context.Context, entries ...journal.Entry) error {
	if err := a.save(); err != nil {
		return err
	}
	a.record(ctx, entries...)
	return nil
}

// withApp opens the app, runs fn and closes it.
func withApp(opts *RootOptions, cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, a)
}

func eventPtr(e event.Event) *event.Event {
	return &e
}

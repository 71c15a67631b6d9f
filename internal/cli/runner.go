package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/itemdesk/internal/api"
	"github.com/idilsaglam/itemdesk/internal/config"
	"github.com/idilsaglam/itemdesk/internal/controller"
	"github.com/idilsaglam/itemdesk/internal/drafts"
	"github.com/idilsaglam/itemdesk/internal/logging"
	"github.com/idilsaglam/itemdesk/internal/ui"
)

// Options tune the runner from root flags. Empty values leave the loaded
// configuration alone.
type Options struct {
	ConfigPath string
	APIURL     string
	LogFile    string
	Debug      bool
	Theme      string
	NoColor    bool
}

// runner carries what every subcommand needs: configuration, the logger and
// the backend client.
type runner struct {
	cfg      *config.Config
	log      zerolog.Logger
	svc      controller.ItemService
	closeLog func() error
}

func newRunner(opt Options, stderr io.Writer) (*runner, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opt.APIURL != "" {
		cfg.APIURL = opt.APIURL
	}
	if opt.LogFile != "" {
		cfg.LogFile = opt.LogFile
	}
	if opt.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if opt.Theme != "" {
		ui.SetTheme(opt.Theme)
	}
	if opt.NoColor {
		ui.SetColorForcing(false, true)
	}

	logOpts := logging.Options{File: cfg.LogFile, Debug: cfg.Debug}
	if cfg.LogFile == "" && cfg.Debug {
		logOpts.Console = stderr
	}
	log, closeLog, err := logging.New(logOpts)
	if err != nil {
		// logging is diagnostic only
		fmt.Fprintf(stderr, "log file: %v\n", err)
		log, closeLog = zerolog.Nop(), func() error { return nil }
	}
	log.Debug().Str("api", cfg.APIURL).Int("page_size", cfg.PageSize).Msg("config loaded")

	return &runner{
		cfg:      cfg,
		log:      log,
		svc:      api.NewClient(cfg.APIURL, cfg.Timeout, log),
		closeLog: closeLog,
	}, nil
}

func (r *runner) controller(rows *drafts.RowSet) *controller.Controller {
	return controller.New(r.svc, rows,
		controller.WithPageSize(r.cfg.PageSize),
		controller.WithLogger(r.log),
	)
}

func (r *runner) close() {
	if r == nil || r.closeLog == nil {
		return
	}
	closeLog := r.closeLog
	r.closeLog = nil
	if err := closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "close log: %v\n", err)
	}
}

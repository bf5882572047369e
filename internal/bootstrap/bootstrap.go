package bootstrap

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	reportinadapter "timecli/internal/modules/report/adapter/in"
	reportoutadapter "timecli/internal/modules/report/adapter/out"
	reportout "timecli/internal/modules/report/port/out"
	reportservice "timecli/internal/modules/report/service"
	reportusecase "timecli/internal/modules/report/usecase"
	sessioninadapter "timecli/internal/modules/session/adapter/in"
	sessionoutadapter "timecli/internal/modules/session/adapter/out"
	sessionservice "timecli/internal/modules/session/service"
	sessionusecase "timecli/internal/modules/session/usecase"
	slotbankinadapter "timecli/internal/modules/slotbank/adapter/in"
	slotbankoutadapter "timecli/internal/modules/slotbank/adapter/out"
	slotbankservice "timecli/internal/modules/slotbank/service"
	slotbankusecase "timecli/internal/modules/slotbank/usecase"
	"timecli/internal/platform/clock"
	"timecli/internal/platform/config"
	"timecli/internal/platform/id"
	uistudy "timecli/internal/ui/study"
)

// App wires every module onto one database handle for the lifetime of a
// single command invocation.
type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	SlotBankCLI slotbankinadapter.CLIHandler
	ReportCLI   reportinadapter.CLIHandler
	Config      config.Config
	Log         zerolog.Logger

	db *sql.DB
}

func New(cfg config.Config, log zerolog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	sessionStore, err := sessionoutadapter.NewSQLiteSessionStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("new session store: %w", err)
	}
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(clk, ids), sessionStore)

	slotStore, err := slotbankoutadapter.NewSQLiteSlotStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("new slot store: %w", err)
	}
	slotUC := slotbankusecase.NewInteractor(slotbankservice.NewSlotBankService(clk, ids, cfg.SlotTargetMinutes), slotStore)

	var source reportout.ActivitySource
	switch cfg.ReportSource {
	case config.SourceSlots:
		source = reportoutadapter.NewSlotSource(slotStore)
	default:
		source = reportoutadapter.NewSessionSource(sessionUC)
	}
	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(clk, cfg.DailyGoal), source)

	log.Debug().
		Str("data_dir", cfg.DataDir).
		Str("report_source", cfg.ReportSource).
		Msg("app wired")

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		SlotBankCLI: slotbankinadapter.NewCLIHandler(slotUC),
		ReportCLI:   reportinadapter.NewCLIHandler(reportUC),
		Config:      cfg,
		Log:         log,
		db:          db,
	}, nil
}

// Close releases the database handle. Data integrity does not depend on it;
// every mutation commits inside its own transaction.
func (a *App) Close() error {
	return a.db.Close()
}

// RunStudy launches the interactive slot picker.
func RunStudy(app *App) error {
	return uistudy.Run(app.SlotBankCLI, app.Config.SlotTargetMinutes)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/snaphire/internal/client/config"
	"github.com/dmitrijs2005/snaphire/internal/client/repositories"
	"github.com/dmitrijs2005/snaphire/internal/client/repositories/flatfile"
	"github.com/dmitrijs2005/snaphire/internal/client/repositories/memory"
	"github.com/dmitrijs2005/snaphire/internal/client/services"
	"github.com/dmitrijs2005/snaphire/internal/cryptox"
	"github.com/dmitrijs2005/snaphire/internal/keys"
	"github.com/dmitrijs2005/snaphire/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	jobService  services.JobService
	limiter     *rate.Limiter
	log         logging.Logger
	logFile     io.Closer
	console     *console
}

// NewApp wires storage, services and logging according to c. Menus read
// from in and write to out.
func NewApp(c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, logFile, err := openLog(c)
	if err != nil {
		return nil, err
	}

	store, err := openStore(c)
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}

	hasher, err := cryptox.NewHasher(c.SecretScheme)
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}

	as := services.NewAuthService(store, keys.Normalizer{FoldCase: c.FoldUserCase}, hasher, log)
	js := services.NewJobService(store, keys.Normalizer{FoldCase: c.FoldProfessionCase}, log)

	limit := rate.Inf
	if c.LoginInterval > 0 {
		limit = rate.Every(c.LoginInterval)
	}

	return &App{
		config:      c,
		authService: as,
		jobService:  js,
		limiter:     rate.NewLimiter(limit, c.LoginBurst),
		log:         log,
		logFile:     logFile,
		console:     newConsole(in, out, c.ConsoleWidth, c.MenuWidth, c.ClearScreen, c.MaskPassword),
	}, nil
}

func openLog(c *config.Config) (logging.Logger, io.Closer, error) {
	if c.LogFile == "" {
		log, err := logging.New(os.Stderr, c.LogLevel)
		return log, nil, err
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logging.New(f, c.LogLevel)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return log, f, nil
}

func openStore(c *config.Config) (repositories.Store, error) {
	if c.Backend == config.BackendMemory {
		return memory.NewStore(c.ExclusiveCreate), nil
	}
	return flatfile.NewStore(c.StorageDir, flatfile.WithExclusiveCreate(c.ExclusiveCreate))
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

// Run shows the main menu until the user quits or the input ends. Running
// out of input is a normal exit.
func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx, "session started", "backend", a.config.Backend, "storage", a.config.StorageDir)

	err := a.mainLoop(ctx)
	if errors.Is(err, io.EOF) {
		a.log.Info(ctx, "input closed")
		return nil
	}
	return err
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

func (a *App) mainLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.console.clearScreen()
		opt, err := a.console.choose(mainMenu)
		if err != nil {
			return err
		}
		a.console.clearScreen()

		switch opt {
		case mainLogin:
			err = a.Login(ctx)
		case mainSignup:
			err = a.Signup(ctx)
		case mainQuit:
			a.console.println("Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/dspace-utils/internal/adapter"
	"github.com/MKhiriev/dspace-utils/internal/config"
	"github.com/MKhiriev/dspace-utils/internal/converter"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/service"
	"github.com/MKhiriev/dspace-utils/internal/store"
	"github.com/MKhiriev/dspace-utils/internal/utils"
	"github.com/MKhiriev/dspace-utils/models"
	"github.com/spf13/pflag"
)

const (
	flagVerbose    = "verbose"
	defaultVerbose = "info"
)

// App dispatches command lines to the dspace-utils commands.
type App struct {
	buildInfo models.AppBuildInfo
	commands  []*Command
	stdout    io.Writer
	stderr    io.Writer
}

// NewApp builds the application. Results go to stdout; logs, help and
// errors go to stderr.
func NewApp(buildInfo models.AppBuildInfo, stdout, stderr io.Writer) *App {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &App{buildInfo: buildInfo, commands: commands(), stdout: stdout, stderr: stderr}
}

// Execute runs the command line args (without the program name) and returns
// the exit code: 0 on success, 2 for usage errors, 1 for any other failure.
func (a *App) Execute(ctx context.Context, args []string) int {
	if len(args) == 0 {
		printCommands(a.stderr, a.commands)
		return ExitUsage
	}
	if isHelpFlag(args[0]) || args[0] == "help" {
		printCommands(a.stdout, a.commands)
		return ExitOK
	}

	cmd := a.lookup(args[0])
	if cmd == nil {
		fmt.Fprintf(a.stderr, "dspace-utils: unknown command %q\n\n", args[0])
		printCommands(a.stderr, a.commands)
		return ExitUsage
	}

	fs := a.flagSet(cmd)
	err := a.run(ctx, cmd, fs, args[1:])
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, pflag.ErrHelp) {
		cmd.printHelp(a.stdout, fs)
		return ExitOK
	}

	fmt.Fprintf(a.stderr, "dspace-utils %s: %v\n", cmd.Name, err)
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == ExitUsage {
			fmt.Fprintf(a.stderr, "Usage: %s\n", cmd.usage())
		}
		return exitErr.ExitCode()
	}
	return ExitFailure
}

func (a *App) lookup(name string) *Command {
	for _, c := range a.commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (a *App) flagSet(cmd *Command) *pflag.FlagSet {
	fs := pflag.NewFlagSet(cmd.Name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String(flagVerbose, defaultVerbose, "logging level: critical, error, warning, info or debug")
	if cmd.requires != needsNothing {
		config.AddFlags(fs)
	}
	if cmd.Flags != nil {
		cmd.Flags(fs)
	}
	return fs
}

func (a *App) run(ctx context.Context, cmd *Command, fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return usageErrorf("%w", err)
	}

	verbosity, _ := fs.GetString(flagVerbose)
	level, err := logger.ParseVerbosity(verbosity)
	if err != nil {
		return usageErrorf("--%s: %w", flagVerbose, err)
	}
	if err = cmd.checkArgs(fs.Args()); err != nil {
		return err
	}

	log := logger.NewCLILogger(a.stderr, cmd.Name, level)
	env := &Env{Flags: fs, Out: a.stdout, Logger: log, BuildInfo: a.buildInfo}

	if cmd.requires == needsNothing {
		return cmd.Run(ctx, env, fs.Args())
	}

	ctx = utils.WithRunID(ctx, utils.NewUUIDGenerator().Generate())
	ctx = log.WithContext(ctx)

	repos, err := a.connect(ctx, cmd, fs, env)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing databases")
		}
	}()

	return cmd.Run(ctx, env, fs.Args())
}

// connect loads the configuration and fills env with what cmd requires.
func (a *App) connect(ctx context.Context, cmd *Command, fs *pflag.FlagSet, env *Env) (*store.Repositories, error) {
	log := env.Logger

	if cmd.requires == needsStorage {
		cfg, err := config.GetStructuredConfig(fs)
		if err != nil {
			return nil, err
		}
		repos, err := store.NewRepositories(ctx, config.ClientStorage{JournalPath: cfg.Storage.JournalPath}, log)
		if err != nil {
			return nil, err
		}
		env.Journal = repos.Journal
		return repos, nil
	}

	cfg, err := config.GetClientConfig(fs)
	if err != nil {
		return nil, err
	}
	if cfg.FilePath != "" {
		log.Debug().Str("config", cfg.FilePath).Msg("configuration loaded")
	}

	repositoryAdapter, err := adapter.NewDSpaceAdapter(cfg.API, log)
	if err != nil {
		return nil, err
	}

	repos, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	session, err := repositoryAdapter.Authenticate(ctx)
	if err != nil {
		return nil, errors.Join(err, repos.Close())
	}
	event := log.Debug().Str("eperson", session.EPersonID)
	if session.ExpiresAt != nil {
		event = event.Time("expires", session.ExpiresAt.Time)
	}
	event.Msg("authenticated")

	services, err := service.NewServices(repositoryAdapter, repos,
		converter.NewGraphicsMagick(cfg.Thumbnail.Converter, log), cfg.Thumbnail, log)
	if err != nil {
		return nil, errors.Join(err, repos.Close())
	}

	env.Services = services
	env.Journal = repos.Journal
	return repos, nil
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}

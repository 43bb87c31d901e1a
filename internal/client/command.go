package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/service"
	"github.com/MKhiriev/dspace-utils/internal/store"
	"github.com/MKhiriev/dspace-utils/models"
	"github.com/spf13/pflag"
)

// requirement states what a command needs before it runs.
type requirement int

const (
	// needsNothing commands run without configuration.
	needsNothing requirement = iota
	// needsStorage commands read the configuration and open the local
	// databases but never contact DSpace.
	needsStorage
	// needsRepository commands also log in to the REST API.
	needsRepository
)

// Command is one dspace-utils subcommand.
type Command struct {
	// Name is the command name as typed by the user.
	Name string

	// Summary is a one-line description shown in the command listing.
	Summary string

	// Args names the positional arguments, in order.
	Args []string

	// Flags registers command specific flags. --verbose and --config are
	// added to every command.
	Flags func(fs *pflag.FlagSet)

	requires requirement

	// Run executes the command with the positional args.
	Run func(ctx context.Context, env *Env, args []string) error
}

// Env is what a running command can use. Services is nil unless the
// command needs the repository.
type Env struct {
	Services  *service.Services
	Journal   store.JournalRepository
	Flags     *pflag.FlagSet
	Out       io.Writer
	Logger    *logger.Logger
	BuildInfo models.AppBuildInfo
}

func (c *Command) usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dspace-utils %s [flags]", c.Name)
	for _, arg := range c.Args {
		fmt.Fprintf(&b, " %s", arg)
	}
	return b.String()
}

func (c *Command) checkArgs(args []string) error {
	if len(args) != len(c.Args) {
		return usageErrorf("%s expects %d argument(s), got %d", c.Name, len(c.Args), len(args))
	}
	return nil
}

// printHelp writes the usage line, the summary and the flag defaults.
func (c *Command) printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s\n\n%s\n", c.usage(), c.Summary)
	if c.requires != needsNothing {
		fmt.Fprint(w, "\nCredentials are read from the configuration file\n"+
			"$HOME/.config/dspace-utils/dspace.yml or DSPACE_API_* environment variables.\n")
	}
	if fs != nil {
		fmt.Fprintf(w, "\nFlags:\n%s", fs.FlagUsages())
	}
}

// printCommands lists the commands in a table.
func printCommands(w io.Writer, commands []*Command) {
	fmt.Fprint(w, "Usage: dspace-utils <command> [flags] [args]\n\nCommands:\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Name, c.Summary)
	}
	tw.Flush()
	fmt.Fprint(w, "\nRun 'dspace-utils <command> --help' for command flags.\n")
}

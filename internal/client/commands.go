package client

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/dspace-utils/internal/service"
	"github.com/MKhiriev/dspace-utils/internal/store"
	"github.com/MKhiriev/dspace-utils/models"
	"github.com/spf13/pflag"
)

const (
	flagTarget          = "target"
	flagContinueOnError = "continue-on-error"
	flagLimit           = "limit"

	defaultJournalLimit = 20
)

// commands returns the command table in help order.
func commands() []*Command {
	return []*Command{
		{
			Name:     "thumbnail",
			Summary:  "Regenerate an item's thumbnail from a page of its original PDF.",
			Args:     []string{"handle"},
			requires: needsRepository,
			Run:      runThumbnail,
		},
		{
			Name:     "owning-collection",
			Summary:  "Change the owning collection of an item.",
			Args:     []string{"item-handle", "new-collection-handle"},
			requires: needsRepository,
			Run:      runOwningCollection,
		},
		{
			Name:     "license",
			Summary:  "Replace the license of an item with the text of a local file.",
			Args:     []string{"item-handle", "license-file"},
			requires: needsRepository,
			Run:      runLicense,
		},
		{
			Name:     "dump-metadata",
			Summary:  "Print the metadata of an item.",
			Args:     []string{"item-handle"},
			requires: needsRepository,
			Run:      runDumpMetadata,
		},
		{
			Name:     "create-collection",
			Summary:  "Create a collection inside a community given by handle or UUID.",
			Args:     []string{"community", "name"},
			requires: needsRepository,
			Run:      runCreateCollection,
		},
		{
			Name:    "migrate",
			Summary: "Normalize, thumbnail and move every item of a collection into the live collection.",
			Args:    []string{"source-collection-handle"},
			Flags: func(fs *pflag.FlagSet) {
				fs.String(flagTarget, service.DefaultMigrationTarget.String(), "handle of the collection receiving the items")
				fs.Bool(flagContinueOnError, false, "record a failed item and continue with the next one")
			},
			requires: needsRepository,
			Run:      runMigrate,
		},
		{
			Name:    "journal",
			Summary: "Show the most recent entries of the operation journal.",
			Flags: func(fs *pflag.FlagSet) {
				fs.Uint64(flagLimit, defaultJournalLimit, "number of entries to show")
			},
			requires: needsStorage,
			Run:      runJournal,
		},
		{
			Name:    "version",
			Summary: "Print build information.",
			Run:     runVersion,
		},
	}
}

func runThumbnail(ctx context.Context, env *Env, args []string) error {
	handle, err := service.ParseHandle(args[0])
	if err != nil {
		return err
	}

	bitstream, err := env.Services.Thumbnail.Regenerate(ctx, handle)
	if err != nil {
		return err
	}
	env.Logger.Info().Str("bitstream", bitstream.UUID).Msgf("created thumbnail %s for %s", bitstream.Name, handle)
	return nil
}

func runOwningCollection(ctx context.Context, env *Env, args []string) error {
	itemHandle, err := service.ParseHandle(args[0])
	if err != nil {
		return err
	}
	targetHandle, err := service.ParseHandle(args[1])
	if err != nil {
		return err
	}

	_, err = env.Services.OwningCollection.Move(ctx, itemHandle, targetHandle)
	return err
}

func runLicense(ctx context.Context, env *Env, args []string) error {
	handle, err := service.ParseHandle(args[0])
	if err != nil {
		return err
	}

	_, err = env.Services.License.Replace(ctx, handle, args[1])
	return err
}

func runDumpMetadata(ctx context.Context, env *Env, args []string) error {
	handle, err := service.ParseHandle(args[0])
	if err != nil {
		return err
	}

	text, err := env.Services.Metadata.Dump(ctx, handle)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Out, text)
	return err
}

func runCreateCollection(ctx context.Context, env *Env, args []string) error {
	collection, err := env.Services.Collections.Create(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(env.Out, "%s\t%s\n", collection.Handle, collection.UUID)
	return err
}

func runMigrate(ctx context.Context, env *Env, args []string) error {
	source, err := service.ParseHandle(args[0])
	if err != nil {
		return err
	}
	targetFlag, _ := env.Flags.GetString(flagTarget)
	target, err := service.ParseHandle(targetFlag)
	if err != nil {
		return usageErrorf("--%s: %w", flagTarget, err)
	}
	continueOnError, _ := env.Flags.GetBool(flagContinueOnError)

	report, err := env.Services.Migration.Migrate(ctx, source, service.MigrationOptions{
		Target:          target,
		ContinueOnError: continueOnError,
	})
	printReport(env, report)
	return err
}

func printReport(env *Env, report service.MigrationReport) {
	tw := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
	for _, item := range report.Items {
		if item.Err != nil {
			fmt.Fprintf(tw, "%s\tfailed\t%s\t%v\n", item.Handle, item.FailedStep, item.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\tmigrated\t\t\n", item.Handle)
	}
	tw.Flush()
	env.Logger.Info().Msgf("%d migrated, %d failed", report.Succeeded(), report.Failed())
}

func runJournal(ctx context.Context, env *Env, _ []string) error {
	limit, _ := env.Flags.GetUint64(flagLimit)

	entries, err := env.Journal.Recent(ctx, limit)
	if errors.Is(err, store.ErrJournalDisabled) {
		return fmt.Errorf("%w: set journal_path in the configuration", err)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			models.FormatTimestamp(e.CreatedAt), e.Operation, e.Handle, e.Target, e.Status, e.Detail)
	}
	return tw.Flush()
}

func runVersion(_ context.Context, env *Env, _ []string) error {
	_, err := fmt.Fprintln(env.Out, env.BuildInfo)
	return err
}

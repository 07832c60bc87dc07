package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/gedtree/gedsite/internal/iobuild"
	"github.com/gedtree/gedsite/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getBuildCmd returns the build command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBuildCmd() *cobra.Command {
	var (
		output       string
		biosDir      string
		withFamilies bool
		jobs         int
		watch        bool
	)

	buildCmd := &cobra.Command{
		Use:   "build <file.ged>",
		Short: "Build profile documents from a GEDCOM file",
		Long: `Convert a GEDCOM file into cross-linked profile documents.

This command:
  1. Parses the GEDCOM file into a record tree
  2. Resolves cross-reference pointers into a genealogical graph
  3. Merges optional per-person biographies from the bios directory
  4. Writes one markdown profile per person, plus index pages
  5. Reports counts and warnings

All parsing and pointer resolution happen before the first write, so
a malformed file never produces a partially linked document set.

Output file names derive from record ids (I42.md), never from names,
which keeps links stable when a person is renamed. Re-running on an
unchanged file produces byte-identical output.

Examples:
  # Build into the configured output directory
  gedsite build family.ged

  # Build into a specific directory with biographies merged
  gedsite build family.ged -o vault --bios-dir vault/bios

  # Emit family documents too
  gedsite build family.ged --families

  # Keep running and rebuild on changes
  gedsite build family.ged --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBuild(args[0], output, biosDir, withFamilies, jobs, watch)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	buildCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"output directory for documents",
	)
	buildCmd.Flags().StringVarP(
		&biosDir, "bios-dir", "b", "",
		"directory with biography files (I42.md or name-slug.md)",
	)
	buildCmd.Flags().BoolVarP(
		&withFamilies, "families", "f", false,
		"emit one document per family record too",
	)
	buildCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of emission workers (0 = number of CPUs)",
	)
	buildCmd.Flags().BoolVarP(
		&watch, "watch", "w", false,
		"rebuild when the source or biography files change",
	)

	return buildCmd
}

func runBuild(
	source, output, biosDir string,
	withFamilies bool,
	jobs int,
	watch bool,
) error {
	runOpts := []config.Option{config.OptSource(source)}
	if output != "" {
		runOpts = append(runOpts, config.OptSiteOutput(output))
	}
	if biosDir != "" {
		runOpts = append(runOpts, config.OptSiteBiosDir(biosDir))
	}
	if withFamilies {
		runOpts = append(runOpts, config.OptSiteWithFamilies(true))
	}
	if jobs > 0 {
		runOpts = append(runOpts, config.OptJobsNumber(jobs))
	}
	runOpts = append(runOpts, config.OptWatch(watch))
	cfg.Update(runOpts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	builder := iobuild.New(cfg)
	if cfg.Watch {
		return builder.Watch(ctx)
	}
	return builder.Build(ctx)
}

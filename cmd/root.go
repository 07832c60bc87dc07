// Package cmd provides the gedsite command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gedtree/gedsite/internal/iofs"
	"github.com/gedtree/gedsite/internal/iologger"
	"github.com/gedtree/gedsite/pkg/config"
	"github.com/gedtree/gedsite/pkg/gedsite"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			gedsite.Version, gedsite.Build),
		Use:   "gedsite",
		Short: "Convert a GEDCOM file into cross-linked profile documents",
		Long: `gedsite converts a GEDCOM genealogy file into a set of
cross-linked markdown documents: one profile per person, with
relationship links, family diagrams and optional merged biographies.
The documents are ready for ingestion by a wiki-style static site
generator.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GEDSITE_*)
  3. Config file (~/.config/gedsite/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (site.output → GEDSITE_SITE_OUTPUT).

    GEDSITE_SITE_OUTPUT        Output directory
    GEDSITE_SITE_BIOS_DIR      Biography directory
    GEDSITE_SITE_PEOPLE_DIR    Profiles subdirectory
    GEDSITE_SITE_WITH_FAMILIES Emit family documents too
    GEDSITE_LOG_LEVEL          Log level (debug/info/warn/error)
    GEDSITE_JOBS_NUMBER        Emission workers

  See 'go doc github.com/gedtree/gedsite/pkg/config' for the
  complete list.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gedsite version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for gedsite")

	rootCmd.AddCommand(getBuildCmd())
	rootCmd.AddCommand(getPlacesCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsurePlacesFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. These match the fields included in
	// config.ToOptions() - i.e., persistent configuration that can be
	// stored in config.yaml.
	v.SetEnvPrefix("GEDSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Site configuration
	v.BindEnv("site.output", "SITE_OUTPUT")
	v.BindEnv("site.bios_dir", "SITE_BIOS_DIR")
	v.BindEnv("site.people_dir", "SITE_PEOPLE_DIR")
	v.BindEnv("site.with_families", "SITE_WITH_FAMILIES")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}

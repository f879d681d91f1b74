// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/cmd/bp"
	catalogcmd "github.com/rigforge/cli/internal/cmd/catalog"
	configcmd "github.com/rigforge/cli/internal/cmd/config"
	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/output"
	"github.com/rigforge/cli/internal/version"
)

// NewRootCmd creates the root command for the rigc CLI.
func NewRootCmd() *cobra.Command {
	// Resolved during PersistentPreRunE and shared with every sub-command
	// constructor. No package-level mutable state.
	cfg := &config.GlobalConfig{}

	var (
		configFlag     string
		catalogFlag    string
		verboseFlag    bool
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "rigc",
		Short: "rigforge blueprint CLI",
		Long: `rigc assembles character rigs out of reusable, versioned modules.

It provides commands to:
  - Add, remove, rename, and edit rig modules in a blueprint
  - Build a blueprint into an ordered scene node manifest
  - Validate and diff blueprint files
  - Browse and extend the module catalog`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, configFlag, catalogFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: RIGC_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "User module catalog directory (env: RIGC_CATALOG_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewVersionCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(catalogcmd.NewCatalogCmd(cfg))
	rootCmd.AddCommand(bp.NewBlueprintCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, cfg *config.GlobalConfig, configFlag, catalogFlag string, verbose, timestamps bool) error {
	// Load the config file first so its values can steer logging setup.
	// A broken config file must not lock the user out of `rigc config`.
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		loaded = &config.Config{}
	}
	loaded = loaded.WithDefaults()

	configPath, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}
	catalogDir, err := config.ResolveCatalogDir(catalogFlag, loaded.CatalogDir)
	if err != nil {
		return err
	}
	blueprintPath := config.ResolveBlueprint("", loaded.Blueprint)

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.CatalogDir = catalogDir.Value
	cfg.Blueprint = blueprintPath.Value
	cfg.Verbose = verbose

	// Timestamps precedence: flag (when explicitly set) > config > default.
	logCfg := output.LogConfig{Verbose: verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verbose {
		config.LogResolvedValues([]config.ResolvedValue{configPath, catalogDir, blueprintPath})
		info := version.GetInfo()
		output.Debug("rigc started", "version", info.Version, "commit", info.GitCommit)
	}

	return nil
}

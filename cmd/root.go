package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentic-research/yang2proto/internal/pipeline"
	"github.com/agentic-research/yang2proto/internal/yang"
)

var (
	cfgFile          string
	protoOutDir      string
	serverStubOutDir string
	clientOutDir     string
	verbose          bool
)

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "HCL config file with output directories")
	rootCmd.Flags().StringVar(&protoOutDir, "proto-outdir", "", "Output directory for proto schemas")
	rootCmd.Flags().StringVar(&serverStubOutDir, "server-rpc-outdir", "", "Output directory for server stubs")
	rootCmd.Flags().StringVar(&clientOutDir, "client-rpc-outdir", "", "Output directory for the client program")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   "yang2proto [statement-export ...]",
	Short: "Compile YANG modules into proto3 schemas and gNOI stub code",
	Long: "yang2proto consumes statement-tree exports produced by the YANG " +
		"frontend and emits, per module, a proto3 schema and a server-handler " +
		"skeleton, plus one service-registration file and one client dispatch " +
		"program covering the whole module set.",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		cfg := pipeline.Config{}
		if cfgFile != "" {
			loaded, err := pipeline.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			cfg = *loaded
		}
		// Flags override the config file.
		if protoOutDir != "" {
			cfg.ProtoOutDir = protoOutDir
		}
		if serverStubOutDir != "" {
			cfg.ServerStubOutDir = serverStubOutDir
		}
		if clientOutDir != "" {
			cfg.ClientOutDir = clientOutDir
		}
		if err := absolutize(&cfg); err != nil {
			return err
		}

		var modules []*yang.Statement
		for _, path := range args {
			mods, err := yang.DecodeFile(path)
			if err != nil {
				return &pipeline.ConfigError{Msg: err.Error()}
			}
			modules = append(modules, mods...)
		}

		compiler := pipeline.New(cfg, osfs.New("/"), log)
		res, err := compiler.Run(modules)
		if err != nil {
			return err
		}
		log.Info().
			Int("modules", len(res.Modules)).
			Int("files_written", len(res.Written)).
			Msg("compilation finished")
		return nil
	},
}

// absolutize resolves the configured roots against the working directory,
// since the writer's filesystem is rooted at /.
func absolutize(cfg *pipeline.Config) error {
	for _, dir := range []*string{&cfg.ProtoOutDir, &cfg.ServerStubOutDir, &cfg.ClientOutDir} {
		if *dir == "" {
			continue
		}
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return &pipeline.ConfigError{Msg: fmt.Sprintf("resolve %s: %v", *dir, err)}
		}
		*dir = abs
	}
	return nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// Execute runs the root command. Exit code 2 signals a configuration
// error or an unresolved type; 0 is success.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dscforge/dscforge/pkg/config"
	"github.com/dscforge/dscforge/pkg/dsc"
	"github.com/dscforge/dscforge/pkg/engine"
	"github.com/dscforge/dscforge/pkg/stores"
	"github.com/dscforge/dscforge/pkg/telemetry"
)

func newExtractCommand() *cobra.Command {
	var (
		outDir      string
		storePath   string
		demo        bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "extract <manifest>",
		Short: "Render a manifest as DSC configuration documents",
		Long: `Render the resource instances of a manifest as a PowerShell DSC
configuration document and, when the manifest declares data entries, a
configuration data file.

Output goes to the manifest's output directory, overridable with --out.
Without a directory the document is printed to stdout.`,
		Example: `  # Extract to the manifest's configured output
  dscforge extract farm.yaml

  # Extract to a specific directory and persist the run
  dscforge extract --out ./rendered --store runs.db farm.yaml

  # Fill parameters declared only by kind with placeholders
  dscforge extract --demo skeleton.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			m, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if demo {
				fillPlaceholders(m)
			}

			logger, err := buildLogger(m.Logging)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}

			opts := []engine.Option{}
			if metricsAddr != "" {
				metrics, err := telemetry.NewMetrics(telemetry.MetricsConfig{
					Enabled:       true,
					ListenAddress: metricsAddr,
					Path:          "/metrics",
					Namespace:     "dscforge",
				})
				if err != nil {
					return fmt.Errorf("failed to build metrics: %w", err)
				}
				go func() {
					if err := metrics.Serve(); err != nil {
						log.Warn().Err(err).Msg("Metrics endpoint stopped")
					}
				}()
				opts = append(opts, engine.WithMetrics(metrics))
			}
			if path := firstNonEmpty(storePath, m.Store.Path); path != "" {
				store, err := openStore(ctx, path)
				if err != nil {
					return err
				}
				defer store.Close()
				opts = append(opts, engine.WithStore(store))
			}

			result, err := engine.NewExtractor(logger, opts...).Run(ctx, m)
			if err != nil {
				return err
			}

			dir := firstNonEmpty(outDir, m.Output.Directory)
			return writeResult(m, result, dir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides the manifest)")
	cmd.Flags().StringVar(&storePath, "store", "", "SQLite run store path (overrides the manifest)")
	cmd.Flags().BoolVar(&demo, "demo", false, "fill kind-only parameters with placeholder values")
	cmd.Flags().StringVar(&metricsAddr, "metrics", "", "expose prometheus metrics on this address during the run")

	return cmd
}

// fillPlaceholders backfills parameters that are declared by kind but
// carry no value, so skeleton manifests render a reviewable document.
func fillPlaceholders(m *config.Manifest) {
	var gen dsc.PlaceholderGenerator
	for i := range m.Resources {
		r := &m.Resources[i]
		if r.Parameters == nil {
			r.Parameters = make(map[string]any, len(r.Types))
		}
		for name, kindName := range r.Types {
			if _, ok := r.Parameters[name]; ok {
				continue
			}
			kind, ok := dsc.ParseKind(kindName)
			if !ok {
				continue
			}
			r.Parameters[name] = gen.Value(kind, name)
		}
	}
}

// writeResult writes the rendered documents to dir, or prints the
// document to stdout when no directory is configured.
func writeResult(m *config.Manifest, result *engine.Result, dir string) error {
	if dir == "" {
		fmt.Print(result.Document)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	docFile := firstNonEmpty(m.Output.DocumentFile, m.Name+".ps1")
	docPath := filepath.Join(dir, docFile)
	if err := os.WriteFile(docPath, []byte(result.Document), 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	log.Info().Str("path", docPath).Msg("Wrote configuration document")

	if result.Data != "" {
		dataFile := firstNonEmpty(m.Output.DataFile, m.Name+".psd1")
		dataPath := filepath.Join(dir, dataFile)
		if err := os.WriteFile(dataPath, []byte(result.Data), 0644); err != nil {
			return fmt.Errorf("failed to write configuration data: %w", err)
		}
		log.Info().Str("path", dataPath).Msg("Wrote configuration data")
	}

	return nil
}

// buildLogger derives the run logger from the manifest's logging
// section, honoring the global verbosity flag.
func buildLogger(cfg config.LoggingConfig) (*telemetry.Logger, error) {
	level := cfg.Level
	if verbose {
		level = "debug"
	}
	format := cfg.Format
	if format == "" {
		format = "console"
	}
	return telemetry.NewLogger(telemetry.LoggingConfig{
		Level:  level,
		Format: format,
		Output: cfg.Output,
	})
}

// openStore opens, initializes and migrates the run store.
func openStore(ctx context.Context, path string) (stores.Store, error) {
	store, err := stores.NewSQLiteStore(stores.Config{Path: path})
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

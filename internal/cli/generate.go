package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/internal/config"
	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/migrate"
	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/template"
)

func generate() *cobra.Command {
	var (
		fromFile      string
		mainRegion    string
		templatesArg  string
		validateFile  string
		output        string
		format        string
		unifiedModule string
		noComments    bool
		showSkipped   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate baseline_moved_resources blocks from a legacy state listing",
		Long: `Generate baseline_moved_resources blocks from a legacy per-region state
listing. Supplying the unified templates is recommended: without them the
classification falls back to heuristics and results must be reviewed by hand.`,
		Example: `  migrate-moved generate --from-file legacy_state.txt --main-region eu-central-1 --templates ./templates
  cat legacy_state.txt | migrate-moved generate --main-region eu-central-1 --templates 'unified_*.tftpl'
  migrate-moved generate --from-file legacy_state.txt --main-region eu-central-1 --validate-file unified_state.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			// flags explicitly set win over config values
			if !cmd.Flags().Changed("main-region") && cfg.MainRegion != "" {
				mainRegion = cfg.MainRegion
			}
			if !cmd.Flags().Changed("templates") && cfg.Templates != "" {
				templatesArg = cfg.Templates
			}
			if !cmd.Flags().Changed("validate-file") && cfg.ValidateFile != "" {
				validateFile = cfg.ValidateFile
			}
			if !cmd.Flags().Changed("unified-module") && cfg.UnifiedModule != "" {
				unifiedModule = cfg.UnifiedModule
			}
			if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
				format = cfg.Output.Format
			}
			if !cmd.Flags().Changed("no-comments") && cfg.Output.NoComments {
				noComments = true
			}
			if !cmd.Flags().Changed("show-skipped") && cfg.Output.ShowSkipped {
				showSkipped = true
			}
			if mainRegion == "" {
				return fmt.Errorf("main region is required, set --main-region or main_region in the config file")
			}

			runLog := log.WithField("run", uuid.NewString())

			fromLines, err := readAddressFile(fromFile)
			if err != nil {
				return fmt.Errorf("unable to read state addresses: %w", err)
			}
			if len(fromLines) == 0 {
				return fmt.Errorf("no state addresses provided")
			}
			runLog.Infof("read %d state addresses", len(fromLines))

			var lookup *template.Lookup
			if templatesArg != "" {
				files, err := resolveTemplatePaths(templatesArg)
				if err != nil {
					return fmt.Errorf("unable to resolve templates %q: %w", templatesArg, err)
				}
				if len(files) == 0 {
					runLog.Warnf("no unified templates found at %q", templatesArg)
				} else {
					sources, err := readTemplateSources(files)
					if err != nil {
						return err
					}
					runLog.Infof("parsing %d unified templates", len(sources))
					lookup = template.Analyze(sources)
					runLog.Infof("found %d resource declarations in templates", lookup.Len())
				}
			} else {
				runLog.Warn("no templates provided, using heuristic mode; use --templates for accurate results")
			}

			result, err := migrate.Plan(fromLines, lookup, migrate.Options{
				MainRegion:    mainRegion,
				UnifiedModule: unifiedModule,
			})
			if err != nil {
				return err
			}

			var issues []migrate.Issue
			validated := false
			if validateFile != "" {
				actual, err := readAddressFile(validateFile)
				if err != nil {
					return fmt.Errorf("unable to read unified state addresses: %w", err)
				}
				issues = migrate.Validate(result.Pairs, dropDataSources(actual))
				validated = true
			}

			printReport(os.Stderr, result, issues, validated)

			var buf strings.Builder
			switch format {
			case formatHCL:
				writeHCL(&buf, result, !noComments, showSkipped)
			case formatJSON:
				if err := writeJSON(&buf, result); err != nil {
					return err
				}
			default:
				return fmt.Errorf("invalid format: %s (options are: %s, %s)", format, formatHCL, formatJSON)
			}
			if output == "-" {
				fmt.Print(buf.String())
			} else {
				if err := os.WriteFile(output, []byte(buf.String()), 0o644); err != nil {
					return fmt.Errorf("unable to write output file %s: %w", output, err)
				}
				runLog.Infof("output written to %s", output)
			}

			// no error
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "-", "file with legacy state addresses, one per line; use - for stdin")
	cmd.Flags().StringVar(&mainRegion, "main-region", "", "main baseline region, e.g. eu-central-1")
	cmd.Flags().StringVar(&templatesArg, "templates", "", "unified template files: a directory (scans for unified_*.tftpl), a comma-separated file list, or a glob")
	cmd.Flags().StringVar(&validateFile, "validate-file", "", "file with actual unified state addresses to validate against")
	cmd.Flags().StringVar(&output, "output", "-", "output file; use - for stdout")
	cmd.Flags().StringVar(&format, "format", formatHCL, "output format, options are: "+formatHCL+", "+formatJSON)
	cmd.Flags().StringVar(&unifiedModule, "unified-module", migrate.DefaultUnifiedModule, "name of the unified target module")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "omit classification comments in the output")
	cmd.Flags().BoolVar(&showSkipped, "show-skipped", false, "include skipped data sources as comments in the output")
	return cmd
}

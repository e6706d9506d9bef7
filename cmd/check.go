package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/sitelog-check/pkg/config"
	"github.com/user/sitelog-check/pkg/engine"
	"github.com/user/sitelog-check/pkg/export"
	"github.com/user/sitelog-check/pkg/logging"
	"github.com/user/sitelog-check/pkg/review"
	"github.com/user/sitelog-check/pkg/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Evaluate a supervision log or patrol record",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docType, _ := cmd.Flags().GetString("doc-type")
		rulesPath, _ := cmd.Flags().GetString("rules")
		filePath, _ := cmd.Flags().GetString("file")
		asJSON, _ := cmd.Flags().GetBool("json")
		aiFlag, _ := cmd.Flags().GetBool("ai")

		if filePath == "" && len(args) == 1 {
			filePath = args[0]
		}

		text, err := readInput(filePath)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if rulesPath == "" {
			rulesPath = cfg.RulesPath
		}

		catalogue, err := loadCatalogue(rulesPath)
		if err != nil {
			return err
		}

		report := engine.RunChecks(docType, text, catalogue)

		enabled := review.EnvFlag("AI_REVIEW_ENABLED", cfg.Review.Enabled)
		if aiFlag {
			enabled = true
		}
		ctx := context.Background()
		review.Augment(ctx, buildReviewer(ctx, cfg, enabled), docType, text, report, &enabled, cfg.Review.TimeoutMS)

		if asJSON {
			return export.WriteJSON(os.Stdout, report)
		}
		return export.WriteConsole(os.Stdout, report)
	},
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func loadCatalogue(path string) (*rules.Catalogue, error) {
	if path == "" {
		logging.Debugf("using embedded rule catalogue")
		return rules.LoadDefault()
	}
	logging.Debugf("loading rule catalogue from %s", path)
	return rules.Load(path)
}

// buildReviewer constructs the configured review provider. A missing key or
// unknown provider yields nil, which the review pass records as "skipped".
func buildReviewer(ctx context.Context, cfg *config.Config, enabled bool) review.Provider {
	if !enabled {
		return nil
	}
	apiKey := cfg.GetAPIKey(cfg.SelectedProvider)
	if apiKey == "" {
		logging.Debugf("no API key for provider %s", cfg.SelectedProvider)
		return nil
	}
	p, err := review.NewProvider(ctx, cfg.SelectedProvider, apiKey, cfg.SelectedModel)
	if err != nil {
		logging.Debugf("review provider init failed: %v", err)
		return nil
	}
	return p
}

func init() {
	checkCmd.Flags().StringP("doc-type", "t", "日志", "Document type (日志 or 巡视)")
	checkCmd.Flags().StringP("rules", "r", "", "Path to a rule catalogue YAML (default: embedded catalogue)")
	checkCmd.Flags().StringP("file", "f", "", "Input file (default: stdin)")
	checkCmd.Flags().Bool("json", false, "Emit the full report as JSON")
	checkCmd.Flags().Bool("ai", false, "Enable the AI review pass")
	rootCmd.AddCommand(checkCmd)
}

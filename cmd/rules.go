package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate rule catalogues",
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a rule catalogue YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("rules")
		catalogue, err := loadCatalogue(path)
		if err != nil {
			return err
		}
		fmt.Printf("Catalogue OK: required=%d conditional=%d forbidden=%d closure=%d logic=%d\n",
			len(catalogue.Required), len(catalogue.Conditional), len(catalogue.Forbidden),
			len(catalogue.Closure), len(catalogue.Logic))
		return nil
	},
}

func init() {
	rulesValidateCmd.Flags().StringP("rules", "r", "", "Path to a rule catalogue YAML (default: embedded catalogue)")
	rulesCmd.AddCommand(rulesValidateCmd)
	rootCmd.AddCommand(rulesCmd)
}

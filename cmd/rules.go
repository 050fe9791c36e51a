package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mass-rename/regexrename/internal/model"
)

var rulesShowFileFlag string

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the active rule table",
		Long:  rulesLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			specs := m.CleanupSpecs()

			if rulesShowFileFlag != "" {
				var err error

				specs, err = ruleStore.Load(m.Path(rulesShowFileFlag))
				if err != nil {
					return err
				}
			}

			return ui.DisplayRules(specs)
		},
	}
	cmd.Flags().StringVar(&rulesShowFileFlag, "rules", "", "show the rule table from a YAML file instead of the built-in one")

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

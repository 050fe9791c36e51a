// Package cmd provides the root command and CLI setup for regexrename.
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mass-rename/regexrename/internal/adapter"
	"github.com/mass-rename/regexrename/internal/controller"
	"github.com/mass-rename/regexrename/internal/domain"
	m "github.com/mass-rename/regexrename/internal/model"
)

var fsAdapter adapter.DirFS
var ruleStore adapter.RuleStore
var executor domain.Executor
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalDirFS()
	ruleStore = adapter.NewRuleStore()
	executor = domain.NewExecutor(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, executor, ui)
}

var ignoreCaseFlag bool
var dryRunFlag bool
var recursiveFlag bool
var interactiveFlag bool
var cleanupFlag bool
var rulesFileFlag string
var excludeFlags []string
var dirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regexrename [from] [to]",
		Short: "Mass-rename files with regular expressions",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			specs, err := resolveSpecs(args)
			if err != nil {
				return err
			}

			return workflow.Run(domain.RunArgs{
				Dir:         m.Path(dirFlag),
				Specs:       specs,
				IgnoreCase:  ignoreCaseFlag,
				Exclude:     excludeFlags,
				Recursive:   recursiveFlag,
				DryRun:      dryRunFlag,
				Interactive: interactiveFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&ignoreCaseFlag, "ignore-case", "s", false, "invert the default case handling: match case-insensitively")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "only print what would be done")
	cmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "review the plan interactively before applying")
	cmd.Flags().BoolVar(&cleanupFlag, "cleanup", false, "apply the built-in cleanup rule table")
	cmd.Flags().StringVar(&rulesFileFlag, "rules", "", "load the rule table from a YAML file")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude entries matching regex (can be repeated)")
	cmd.Flags().StringVarP(&dirFlag, "dir", "C", ".", "operate on this directory")

	return cmd
}

// resolveSpecs turns the positional arguments and rule-source flags into
// the ordered rule sequence for this run. Exactly one rule source must
// be in play: from/to, --cleanup, or --rules.
func resolveSpecs(args []string) ([]m.RuleSpec, error) {
	switch {
	case cleanupFlag && rulesFileFlag != "":
		return nil, errors.New("--cleanup and --rules are mutually exclusive")
	case (cleanupFlag || rulesFileFlag != "") && len(args) > 0:
		return nil, errors.New("a rule table can not be combined with from and to")
	case cleanupFlag:
		return m.CleanupSpecs(), nil
	case rulesFileFlag != "":
		return ruleStore.Load(m.Path(rulesFileFlag))
	case len(args) == 0:
		return nil, errors.New("too few arguments: supply from and to, or --cleanup")
	case len(args) == 1:
		return nil, errors.New("if from is specified, to must also be")
	default:
		return []m.RuleSpec{{Pattern: args[0], Template: args[1]}}, nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

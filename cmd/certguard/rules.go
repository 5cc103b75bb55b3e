package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"injala/certguard/pkg/cli"
	"injala/certguard/pkg/rules"
)

var rulesFlags struct {
	force  bool
	format string
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage the compliance rules file",
	Long: `Inspect and initialize the compliance rule specification.

Subcommands:
  init - write the built-in default rules to the configured path
  show - print the active rules (after defaults and fallbacks)

Examples:
  # Create the default rules file
  certguard rules init

  # Show the rules the next run would use
  certguard rules show

  # Show them as YAML
  certguard rules show --format yaml`,
}

var rulesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default rules file",
	Long: `Write the built-in default rule specification to the configured rules
path. Refuses to overwrite an existing file unless --force is given.`,
	RunE: initRules,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active rules",
	Long: `Print the rule specification the engine would validate against,
including built-in fallbacks for missing or corrupt rules files.`,
	RunE: showRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesInitCmd, rulesShowCmd)

	rulesInitCmd.Flags().BoolVar(&rulesFlags.force, "force", false, "overwrite an existing rules file")
	rulesShowCmd.Flags().StringVar(&rulesFlags.format, "format", "json", "output format: json, yaml")
}

func initRules(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Rules.Path); err == nil && !rulesFlags.force {
		return cli.NewCommandError("rules init",
			fmt.Errorf("rules file %s already exists (use --force to overwrite)", cfg.Rules.Path))
	}

	data, err := rules.Encode(rules.Default(), cfg.Rules.Path)
	if err != nil {
		return cli.NewCommandError("rules init", err)
	}
	if err := rules.NewFileStore(cfg.Rules.Path).Write(data); err != nil {
		return cli.NewCommandError("rules init", err)
	}

	fmt.Printf("Default rules written to %s\n", cfg.Rules.Path)
	return nil
}

func showRules(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	spec := rulesLoader(cfg).Load()

	name := "rules.json"
	if rulesFlags.format == "yaml" {
		name = "rules.yaml"
	}
	data, err := rules.Encode(spec, name)
	if err != nil {
		return cli.NewCommandError("rules show", err)
	}

	fmt.Println(string(data))
	return nil
}

// Copyright © 2026 The escope authors

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/estools-go/escope/scope"
)

var (
	cfgFile       string
	colorFlag     string
	rulesFile     string
	ecmaVersion   int
	sourceType    string
	nodejsScope   bool
	impliedStrict bool
	noEval        bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "escope",
	Short: "escope — lexical scope analysis for ECMAScript ASTs",
	Long: `escope resolves lexical scopes and references in ECMAScript programs.
It consumes parsed ASTs (ESTree JSON documents, the output format of
acorn, espree, and compatible parsers), builds the full scope graph, and
reports scope-level problems the way "go vet" reports suspect Go.

Getting started:
  escope check app.json            Analyze one parsed program
  escope check src/...             Analyze every .json document under src
  escope check --watch src/...     Re-run checks when documents change
  escope scopes app.json           Print the resolved scope tree
  escope checks                    Describe the available checks

Producing input:
  escope never parses source text. Generate an ESTree document with any
  compliant parser and hand the JSON to escope:

    npx acorn --ecma2022 --locations app.js > app.json
    escope check app.json

  When app.js sits next to app.json, findings are rendered against the
  original source.

Analysis options apply to every command and may also live in the config
file (default $HOME/.escope.yaml, or .escope.yaml in the working
directory):
  --source-type      "script" or "module" (default: follow each document)
  --ecma-version     language edition: 5, 6, or a year like 2022
  --nodejs-scope     wrap programs in a CommonJS-style function scope
  --implied-strict   treat every program as strict code

More information:
  Source code:  https://github.com/estools-go/escope`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.escope.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "",
		"Lint rules file selecting checks, severities, and global names.")
	rootCmd.PersistentFlags().IntVar(&ecmaVersion, "ecma-version", 0,
		"ECMAScript edition to analyze for: 5, 6, or a year like 2022 (0 selects the default).")
	rootCmd.PersistentFlags().StringVar(&sourceType, "source-type", "",
		`Treat programs as "script" or "module" (default: follow each document).`)
	rootCmd.PersistentFlags().BoolVar(&nodejsScope, "nodejs-scope", false,
		"Wrap each program in a CommonJS-style function scope.")
	rootCmd.PersistentFlags().BoolVar(&impliedStrict, "implied-strict", false,
		"Treat every program as strict code.")
	rootCmd.PersistentFlags().BoolVar(&noEval, "no-eval-tracking", false,
		"Do not track direct eval calls.")

	for _, name := range []string{
		"color", "rules", "ecma-version", "source-type",
		"nodejs-scope", "implied-strict", "no-eval-tracking",
	} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in the working directory, then the home
		// directory, with name ".escope" (without extension).
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".escope")
	}

	viper.SetEnvPrefix("escope")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// scopeOptions builds analysis options from the resolved configuration.
func scopeOptions() (*scope.Options, error) {
	opts := &scope.Options{
		EcmaVersion:   viper.GetInt("ecma-version"),
		NodejsScope:   viper.GetBool("nodejs-scope"),
		ImpliedStrict: viper.GetBool("implied-strict"),
		IgnoreEval:    viper.GetBool("no-eval-tracking"),
	}
	switch st := viper.GetString("source-type"); st {
	case "":
	case "script":
		opts.SourceType = scope.SourceScript
	case "module":
		opts.SourceType = scope.SourceModule
	default:
		return nil, fmt.Errorf(`invalid source type %q (want "script" or "module")`, st)
	}
	return opts, nil
}

// Copyright © 2026 The escope authors

package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/estools-go/escope/lint"
)

var (
	checkFormat   string
	checkChecks   string
	checkListAll  bool
	checkExcludes []string
	checkWatch    bool
	checkJobs     int
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [files...]",
	Short: "Run scope analysis checks on parsed programs",
	Long: `Run scope analysis checks on parsed ECMAScript programs.

The checker reports likely scope mistakes: references that resolve to
nothing, accidental globals, unused and shadowed bindings, repeated
declarations, and direct eval. Each check is an independent analyzer
reading the resolved scope graph. Style is out of scope.

With no files, reads one ESTree JSON document from stdin. With files,
analyzes each document and reports all findings.

Exit codes:
  0  No problems found
  1  One or more problems were reported
  2  Bad invocation (invalid flags, unreadable or malformed input)

Available checks (use --checks to select specific ones):
` + lint.AnalyzerDoc() + `Examples:
  escope check app.json                            # Check a single document
  escope check src/...                             # Check every document under src
  escope check --format=json app.json              # Machine-readable findings
  escope check --checks=no-undef,no-shadow app.json  # Run only specific checks
  escope check --rules lint-rules.yaml src/...     # Use a project rule file
  escope check --exclude='vendor' src/...          # Skip paths by pattern
  escope check --watch src/...                     # Re-check on change
  acorn --locations app.js | escope check          # Check parser output directly`,
	Run: func(cmd *cobra.Command, args []string) {
		if checkListAll {
			for _, name := range lint.AnalyzerNames() {
				fmt.Println(name)
			}
			return
		}

		format, err := formatMode()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		l, err := buildLinter()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		if len(args) == 0 {
			if checkWatch {
				fmt.Fprintln(os.Stderr, "escope check: cannot watch standard input")
				os.Exit(2)
			}
			if err := checkStdin(l, format); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			return
		}

		expanded, err := expandArgs(args, checkExcludes)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if len(expanded) == 0 {
			fmt.Fprintln(os.Stderr, "escope check: no documents to check")
			os.Exit(2)
		}

		if checkWatch {
			watchAndCheck(l, expanded, format)
			return
		}

		diags, err := checkFiles(l, expanded)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if len(diags) == 0 {
			return
		}
		if err := writeDiagnostics(diags, format); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		os.Exit(1)
	},
}

// buildLinter assembles the linter from the rules file, the --checks
// selection, and the shared analysis options.
func buildLinter() (*lint.Linter, error) {
	var cfg *lint.Config
	if path := viper.GetString("rules"); path != "" {
		var err error
		cfg, err = lint.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}
	l, err := lint.New(cfg)
	if err != nil {
		return nil, err
	}
	if checkChecks != "" {
		selected := make(map[string]bool)
		for _, name := range strings.Split(checkChecks, ",") {
			selected[strings.TrimSpace(name)] = true
		}
		var filtered []*lint.Analyzer
		for _, a := range l.Analyzers {
			if selected[a.Name] {
				filtered = append(filtered, a)
				delete(selected, a.Name)
			}
		}
		for name := range selected {
			return nil, fmt.Errorf("escope check: unknown check: %s", name)
		}
		l.Analyzers = filtered
	}
	opts, err := scopeOptions()
	if err != nil {
		return nil, err
	}
	l.ScopeOptions = opts
	return l, nil
}

func formatMode() (string, error) {
	switch format := viper.GetString("format"); format {
	case "", "pretty":
		return "pretty", nil
	case "text", "json":
		return format, nil
	default:
		return "", fmt.Errorf(`invalid format %q (want "pretty", "text", or "json")`, format)
	}
}

func checkStdin(l *lint.Linter, format string) error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	diags, err := l.LintSource(src, "-")
	if err != nil {
		return err
	}
	if len(diags) == 0 {
		return nil
	}
	if err := writeDiagnostics(diags, format); err != nil {
		return err
	}
	os.Exit(1)
	return nil
}

// checkFiles analyzes the documents concurrently, bounded by --jobs, and
// returns all findings in input order.
func checkFiles(l *lint.Linter, paths []string) ([]lint.Diagnostic, error) {
	jobs := checkJobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([][]lint.Diagnostic, len(paths))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			diags, err := checkFile(l, path)
			if err != nil {
				return err
			}
			results[i] = diags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var all []lint.Diagnostic
	for _, diags := range results {
		all = append(all, diags...)
	}
	return all, nil
}

func checkFile(l *lint.Linter, path string) ([]lint.Diagnostic, error) {
	src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l.LintSource(src, path)
}

func writeDiagnostics(diags []lint.Diagnostic, format string) error {
	switch format {
	case "json":
		return lint.FormatJSON(os.Stdout, diags)
	case "text":
		lint.FormatText(os.Stdout, diags)
		return nil
	default:
		renderDiagnostics(diags)
		return nil
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFormat, "format", "pretty",
		`Output format: "pretty" (annotated excerpts), "text", or "json".`)
	checkCmd.Flags().StringVar(&checkChecks, "checks", "",
		"Comma-separated list of checks to run (default: all enabled).")
	checkCmd.Flags().BoolVar(&checkListAll, "list", false,
		"List available checks and exit.")
	checkCmd.Flags().StringArrayVar(&checkExcludes, "exclude", nil,
		"Glob pattern for files to exclude (may be repeated).")
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false,
		"Watch the documents and re-run checks when they change.")
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0,
		"Number of documents to check concurrently (0 means one per CPU).")

	_ = viper.BindPFlag("format", checkCmd.Flags().Lookup("format"))
}

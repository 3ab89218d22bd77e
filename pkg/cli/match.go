package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/wildmatch/wildmatch/pkg/document"
	"github.com/wildmatch/wildmatch/pkg/wild"
)

var (
	flagSubmap     bool
	flagSubset     bool
	flagSubvec     bool
	flagNoWildcard bool
	flagWildcard   string
	flagSetKey     string
	flagSchema     string
	flagAt         string
	flagExplain    bool
	flagJSON       bool
)

// valueResult is the per-value outcome in --json output.
type valueResult struct {
	File    string       `json:"file"`
	Matched bool         `json:"matched"`
	Report  *wild.Report `json:"report,omitempty"`
}

// matchOutput is the overall --json output.
type matchOutput struct {
	Matched bool          `json:"matched"`
	Results []valueResult `json:"results"`
}

var matchCmd = &cobra.Command{
	Use:   "match PATTERN_FILE VALUE_FILE...",
	Short: "Match a pattern document against one or more value documents",
	Long: `Match a pattern document against every supplied value document.

The default context enables the wildcard token and disables all
relaxations; --submap, --subset and --subvec loosen individual shapes and
--no-wildcard turns the wildcard into a plain scalar.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd, flagContext(wild.DefaultContext()), args[0], args[1:])
	},
}

var submatchCmd = &cobra.Command{
	Use:   "submatch PATTERN_FILE VALUE_FILE",
	Short: "Check whether the pattern is a structural sub-part of the value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd, flagContext(wild.SubmatchContext()), args[0], args[1:])
	},
}

var setMatchCmd = &cobra.Command{
	Use:   "set-match PATTERN_FILE VALUE_FILE...",
	Short: "Match a set pattern against set values without shape inference",
	Long: `Match a set pattern document against set value documents.

Every document must normalize to a set, i.e. its top level must be the
configured set envelope (default {"$set": [...]}).`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetMatch(cmd, flagContext(wild.DefaultContext()), args[0], args[1:])
	},
}

func init() {
	for _, cmd := range []*cobra.Command{matchCmd, submatchCmd, setMatchCmd} {
		cmd.Flags().BoolVar(&flagSubmap, "submap", false, "Allow extra keys in mapping values")
		cmd.Flags().BoolVar(&flagSubset, "subset", false, "Allow extra elements in set values")
		cmd.Flags().BoolVar(&flagSubvec, "subvec", false, "Check only a prefix of sequence values")
		cmd.Flags().BoolVar(&flagNoWildcard, "no-wildcard", false, "Treat the wildcard token as a plain scalar")
		cmd.Flags().StringVar(&flagWildcard, "wildcard", "*", "Document string rewritten to the wildcard token (empty disables)")
		cmd.Flags().StringVar(&flagSetKey, "set-key", "$set", "Envelope key marking set literals (empty disables)")
		cmd.Flags().BoolVar(&flagJSON, "json", false, "Output results as JSON")
		rootCmd.AddCommand(cmd)
	}
	// Schema validation, divergence reports and JSONPath scoping only apply
	// to shape-inferred matching.
	for _, cmd := range []*cobra.Command{matchCmd, submatchCmd} {
		cmd.Flags().StringVar(&flagSchema, "schema", "", "JSON Schema file to validate value documents against")
		cmd.Flags().BoolVar(&flagExplain, "explain", false, "Report every divergence instead of the first verdict")
		cmd.Flags().StringVar(&flagAt, "at", "", "JSONPath selecting where in each value to match")
	}
}

// flagContext applies the relaxation flags on top of a command's base
// context. Flags the user did not set keep the base values.
func flagContext(base wild.Context) wild.Context {
	ctx := base
	if flagSubmap {
		ctx.SubmapOK = true
	}
	if flagSubset {
		ctx.SubsetOK = true
	}
	if flagSubvec {
		ctx.SubvecOK = true
	}
	if flagNoWildcard {
		ctx.WildcardOK = false
	}
	return ctx
}

func docOptions() document.Options {
	return document.Options{Wildcard: flagWildcard, SetKey: flagSetKey}
}

func loadSchema() (*document.SchemaValidator, error) {
	if flagSchema == "" {
		return nil, nil
	}
	data, err := os.ReadFile(flagSchema)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return document.NewSchemaValidator(data), nil
}

func runMatch(cmd *cobra.Command, ctx wild.Context, patternFile string, valueFiles []string) error {
	opts := docOptions()
	pattern, err := document.Load(patternFile, opts)
	if err != nil {
		return err
	}
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	logger.Debug("loaded pattern", "file", patternFile, "context", fmt.Sprintf("%+v", ctx))

	out := matchOutput{Matched: true}
	var failures *multierror.Error

	for _, file := range valueFiles {
		// A raw decode is kept for schema validation: the schema speaks
		// JSON, not matcher tokens.
		raw, err := document.DecodeFile(file)
		if err != nil {
			return err
		}
		if schema != nil {
			if err := schema.Validate(raw); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		}
		value, err := document.Normalize(raw, opts)
		if err != nil {
			return fmt.Errorf("normalize %s: %w", file, err)
		}

		matched, report, err := matchOne(ctx, pattern, value)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		logger.Debug("matched value", "file", file, "matched", matched)

		out.Results = append(out.Results, valueResult{File: file, Matched: matched, Report: report})
		if !matched {
			out.Matched = false
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", file, ErrNoMatch))
		}
	}

	if err := emit(cmd, out); err != nil {
		return err
	}
	return failures.ErrorOrNil()
}

// matchOne runs a single pattern/value comparison, honoring --at and
// --explain.
func matchOne(ctx wild.Context, pattern, value any) (bool, *wild.Report, error) {
	if flagAt != "" {
		matched, err := wild.MatchAt(ctx, flagAt, pattern, value)
		return matched, nil, err
	}
	if flagExplain {
		report := wild.Explain(ctx, pattern, value)
		return report.Matched, report, nil
	}
	return wild.MatchIn(ctx, pattern, value), nil, nil
}

func runSetMatch(cmd *cobra.Command, ctx wild.Context, patternFile string, valueFiles []string) error {
	opts := docOptions()
	loaded, err := document.Load(patternFile, opts)
	if err != nil {
		return err
	}
	pattern, err := wild.AsSet(loaded)
	if err != nil {
		return fmt.Errorf("%s: %w", patternFile, err)
	}

	out := matchOutput{Matched: true}
	var failures *multierror.Error

	for _, file := range valueFiles {
		loaded, err := document.Load(file, opts)
		if err != nil {
			return err
		}
		value, err := wild.AsSet(loaded)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		matched := wild.SetMatchIn(ctx, pattern, value)
		logger.Debug("matched set", "file", file, "matched", matched)

		out.Results = append(out.Results, valueResult{File: file, Matched: matched})
		if !matched {
			out.Matched = false
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", file, ErrNoMatch))
		}
	}

	if err := emit(cmd, out); err != nil {
		return err
	}
	return failures.ErrorOrNil()
}

// emit prints the outcome, as JSON under --json and as one line per value
// otherwise.
func emit(cmd *cobra.Command, out matchOutput) error {
	w := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, r := range out.Results {
		verdict := "match"
		if !r.Matched {
			verdict = "no match"
		}
		fmt.Fprintf(w, "%s: %s\n", r.File, verdict)
		if r.Report != nil {
			for _, d := range r.Report.Divergences {
				fmt.Fprintf(w, "  %s: %s (pattern %v, value %v)\n", d.Path, d.Reason, d.Pattern, d.Value)
			}
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/msgc/internal/compiler"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Strict bool
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid    bool                       `json:"valid"`
	Messages int                        `json:"messages,omitempty"`
	Findings []compiler.ValidationError `json:"findings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <schema>",
		Short: "Check a schema without generating code",
		Long: `Load, compile and lint a message schema without writing any output.

Every compile error is reported, not only the first. Lint findings are
reported with their code (E201-E205); warnings fail the command only
with --strict.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "treat lint warnings as errors")

	return cmd
}

func runValidate(opts *ValidateOptions, schemaPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, stageErr := loadConfig(opts.RootOptions)
	if stageErr != nil {
		return stageErr.report(formatter)
	}
	cfg.CollectErrors = true

	c, stageErr := compileSchema(schemaPath, cfg)
	if stageErr != nil {
		return stageErr.report(formatter)
	}

	failed := len(c.Fatal()) > 0 || (opts.Strict && len(c.Findings) > 0)
	result := ValidationResult{
		Valid:    !failed,
		Messages: len(c.Program.Messages),
		Findings: c.Findings,
	}
	if failed {
		return outputValidationFailure(formatter, result)
	}
	return outputValidateSuccess(formatter, result)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.JSON() {
		return formatter.Success(result)
	}

	for _, f := range result.Findings {
		fmt.Fprintf(formatter.Writer, "⚠ %s\n", f.Error())
	}
	fmt.Fprintf(formatter.Writer, "✓ Schema valid: %d message(s)\n", result.Messages)
	return nil
}

// outputValidationFailure outputs lint findings that fail validation.
func outputValidationFailure(formatter *OutputFormatter, result ValidationResult) error {
	first := result.Findings[0]
	for _, f := range result.Findings {
		if f.Fatal() {
			first = f
			break
		}
	}

	if formatter.JSON() {
		_ = formatter.Failure(first.Code, first.Message, result)
	} else {
		fmt.Fprintln(formatter.Writer, "✗ Validation failed")
		fmt.Fprintln(formatter.Writer)
		for _, f := range result.Findings {
			fmt.Fprintf(formatter.Writer, "  %s %s: %s (%s)\n", f.Code, f.Field, f.Message, f.Severity)
		}
	}

	// Validation failures = exit code 1
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d finding(s)", len(result.Findings)))
}

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/msgc/internal/compiler"
	"github.com/roach88/msgc/internal/config"
	"github.com/roach88/msgc/internal/loader"
	"github.com/roach88/msgc/internal/schema"
)

// compiled is a schema that loaded and compiled cleanly.
type compiled struct {
	Files    []string
	Schema   *schema.Schema
	Program  *compiler.Program
	Findings []compiler.ValidationError
}

// Fatal returns the findings that block generation.
func (c *compiled) Fatal() []compiler.ValidationError {
	var fatal []compiler.ValidationError
	for _, f := range c.Findings {
		if f.Fatal() {
			fatal = append(fatal, f)
		}
	}
	return fatal
}

// stageError is a failed pipeline stage with its exit code.
type stageError struct {
	Code     int
	Problems []Problem
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
}

// loadConfig resolves msgc.toml from --config or the working directory.
func loadConfig(opts *RootOptions) (config.Config, *stageError) {
	cfg, err := config.Resolve(opts.Config, ".")
	if err != nil {
		return config.Config{}, &stageError{
			Code:     ExitCommandError,
			Problems: []Problem{{Code: ErrCodeGeneric, Message: err.Error()}},
		}
	}
	return cfg, nil
}

// compileSchema loads path, compiles it and lints the result. Missing
// paths are command errors; anything wrong with the schema itself is a
// failure.
func compileSchema(path string, cfg config.Config) (*compiled, *stageError) {
	mode, compileMode := loader.LoadModeFailFast, compiler.FailFast
	if cfg.CollectErrors {
		mode, compileMode = loader.LoadModeCollectAll, compiler.CollectAll
	}

	result, errs := loader.Load(path, mode)
	if result == nil {
		return nil, &stageError{Code: ExitCommandError, Problems: problems(errs...)}
	}
	if len(errs) > 0 {
		return nil, &stageError{Code: ExitFailure, Problems: problems(errs...)}
	}
	slog.Debug("schema loaded", "path", path, "files", len(result.Files), "messages", len(result.Schema.Messages))

	program, err := compiler.Compile(result.Schema, compiler.Options{
		Reserved: cfg.Reserved,
		Mode:     compileMode,
	})
	if err != nil {
		return nil, &stageError{Code: ExitFailure, Problems: problems(err)}
	}

	findings := compiler.Validate(program)
	slog.Debug("schema compiled", "messages", len(program.Messages), "findings", len(findings))

	return &compiled{
		Files:    result.Files,
		Schema:   result.Schema,
		Program:  program,
		Findings: findings,
	}, nil
}

// report writes the problems of a failed stage and returns its ExitError.
func (e *stageError) report(f *OutputFormatter) error {
	first := e.Problems[0]
	if f.JSON() {
		_ = f.Failure(first.Code, first.Message, e.Problems)
	} else {
		for _, p := range e.Problems {
			fmt.Fprintf(f.Writer, "✗ %s\n", p)
		}
	}
	msg := fmt.Sprintf("%s: %s", first.Code, first.Message)
	if n := len(e.Problems); n > 1 {
		msg = fmt.Sprintf("%s (and %d more)", msg, n-1)
	}
	return NewExitError(e.Code, msg)
}

// findingsError reports lint findings that block generation.
func findingsError(f *OutputFormatter, findings []compiler.ValidationError) error {
	first := findings[0]
	if f.JSON() {
		_ = f.Failure(first.Code, first.Message, ValidationResult{Valid: false, Findings: findings})
	} else {
		for _, finding := range findings {
			fmt.Fprintf(f.Writer, "✗ %s\n", finding.Error())
		}
	}
	return NewExitError(ExitFailure, fmt.Sprintf("schema has %d blocking finding(s)", len(findings)))
}

// logWarnings logs non-fatal findings.
func logWarnings(findings []compiler.ValidationError) {
	for _, f := range findings {
		if !f.Fatal() {
			slog.Warn("schema lint", "code", f.Code, "field", f.Field, "message", f.Message)
		}
	}
}

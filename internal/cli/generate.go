package cli

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/msgc/internal/config"
	"github.com/roach88/msgc/internal/emitter"
	"github.com/roach88/msgc/internal/schema"
	"github.com/roach88/msgc/internal/store"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output        string
	Package       string
	RuntimeImport string
	Force         bool
	CollectErrors bool
	NoHistory     bool
}

// GenerateResult describes one generate run.
type GenerateResult struct {
	Output     string `json:"output"`
	Package    string `json:"package"`
	Messages   int    `json:"messages"`
	SchemaHash string `json:"schema_hash"`
	OutputHash string `json:"output_hash"`
	UpToDate   bool   `json:"up_to_date"`
	RunID      string `json:"run_id,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <schema>",
		Short: "Generate Go code from a message schema",
		Long: `Generate the Go encoders and decoders for a message schema.

The schema may be a single file or a directory of .msg, .cue, .yaml/.yml
and .json files. Nothing is written unless the whole schema compiles and
no lint finding blocks generation. The output file is replaced atomically.

Each run is recorded in the history database. When the schema, the options
and the output file are unchanged since the last run, the file is left
alone; --force regenerates it anyway.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default from msgc.toml, then messages_gen.go)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name of the generated file")
	cmd.Flags().StringVar(&opts.RuntimeImport, "runtime-import", "", "import path of the wire runtime")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "regenerate even when up to date")
	cmd.Flags().BoolVar(&opts.CollectErrors, "collect-errors", false, "report every schema error instead of the first")
	cmd.Flags().BoolVar(&opts.NoHistory, "no-history", false, "do not read or record generation history")

	return cmd
}

// apply overlays the flags that were set on cfg.
func (o *GenerateOptions) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = o.Output
	}
	if flags.Changed("package") {
		cfg.Package = o.Package
	}
	if flags.Changed("runtime-import") {
		cfg.RuntimeImport = o.RuntimeImport
	}
	if flags.Changed("collect-errors") {
		cfg.CollectErrors = o.CollectErrors
	}
	if o.NoHistory {
		cfg.Store.Disabled = true
	}
	return cfg
}

func runGenerate(opts *GenerateOptions, schemaPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, stageErr := loadConfig(opts.RootOptions)
	if stageErr != nil {
		return stageErr.report(formatter)
	}
	cfg = opts.apply(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return (&stageError{
			Code:     ExitCommandError,
			Problems: []Problem{{Code: ErrCodeGeneric, Message: err.Error()}},
		}).report(formatter)
	}

	c, stageErr := compileSchema(schemaPath, cfg)
	if stageErr != nil {
		return stageErr.report(formatter)
	}
	if fatal := c.Fatal(); len(fatal) > 0 {
		return findingsError(formatter, fatal)
	}
	logWarnings(c.Findings)

	out := emitter.New(emitter.Options{
		Package:       cfg.Package,
		RuntimeImport: cfg.RuntimeImport,
		Source:        filepath.ToSlash(schemaPath),
	}).Emit(c.Program)
	src, err := out.Format()
	if err != nil {
		return (&stageError{
			Code:     ExitFailure,
			Problems: []Problem{{Code: ErrCodeGeneric, Message: fmt.Sprintf("formatting generated code: %v", err)}},
		}).report(formatter)
	}

	schemaHash, err := schema.Hash(c.Schema,
		cfg.Package, cfg.RuntimeImport, strings.Join(cfg.Reserved, ","), schema.GeneratorVersion)
	if err != nil {
		return WrapExitError(ExitFailure, "hashing schema", err)
	}
	result := GenerateResult{
		Output:     cfg.Output,
		Package:    cfg.Package,
		Messages:   len(c.Program.Messages),
		SchemaHash: schemaHash,
		OutputHash: contentHash(src),
	}

	var history *store.Store
	if !cfg.Store.Disabled {
		history, err = store.Open(cfg.Store.Path)
		if err != nil {
			slog.Warn("history unavailable", "path", cfg.Store.Path, "error", err)
		} else {
			defer history.Close()
		}
	}

	ctx := cmd.Context()
	if history != nil && !opts.Force {
		upToDate, err := isUpToDate(ctx, history, result)
		if err != nil {
			slog.Warn("history lookup failed", "error", err)
		}
		if upToDate {
			slog.Info("output up to date", "output", cfg.Output)
			result.UpToDate = true
			return outputGenerateSuccess(formatter, result)
		}
	}

	if err := writeFileAtomic(cfg.Output, src); err != nil {
		return (&stageError{
			Code:     ExitCommandError,
			Problems: []Problem{{Code: ErrCodeWriteFailed, Message: fmt.Sprintf("writing output file: %v", err), File: cfg.Output}},
		}).report(formatter)
	}
	slog.Info("generated", "output", cfg.Output, "messages", result.Messages)

	if history != nil {
		run, err := history.RecordRun(ctx, newRun(schemaPath, result, c))
		if err != nil {
			slog.Warn("recording history failed", "error", err)
		} else {
			result.RunID = run.ID
			slog.Debug("run recorded", "id", run.ID, "seq", run.Seq)
		}
	}

	return outputGenerateSuccess(formatter, result)
}

// isUpToDate reports whether the last run for the same output used the
// same schema hash and the file still holds what that run wrote.
func isUpToDate(ctx context.Context, history *store.Store, result GenerateResult) (bool, error) {
	last, ok, err := history.LatestRun(ctx, result.Output)
	if err != nil || !ok {
		return false, err
	}
	if last.SchemaHash != result.SchemaHash || last.OutputHash != result.OutputHash {
		return false, nil
	}
	current, err := os.ReadFile(result.Output)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return contentHash(current) == last.OutputHash, nil
}

func newRun(schemaPath string, result GenerateResult, c *compiled) store.Run {
	run := store.Run{
		SchemaPath:       schemaPath,
		SchemaHash:       result.SchemaHash,
		OutputPath:       result.Output,
		OutputHash:       result.OutputHash,
		Package:          result.Package,
		GeneratorVersion: schema.GeneratorVersion,
	}
	for _, m := range c.Program.Messages {
		run.Messages = append(run.Messages, store.RunMessage{
			Name:      m.Name,
			Frequency: m.Frequency.String(),
			Number:    m.MessageNumber(),
		})
	}
	return run
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// outputGenerateSuccess outputs the result of a generate run.
func outputGenerateSuccess(formatter *OutputFormatter, result GenerateResult) error {
	if formatter.JSON() {
		return formatter.Success(result)
	}

	var buf bytes.Buffer
	if result.UpToDate {
		fmt.Fprintf(&buf, "✓ %s is up to date (%d message(s))", result.Output, result.Messages)
	} else {
		fmt.Fprintf(&buf, "✓ Generated %d message(s) into %s (package %s)", result.Messages, result.Output, result.Package)
	}
	return formatter.Success(buf.String())
}

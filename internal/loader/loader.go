// Package loader reads message protocol schemas from disk. Message
// templates (.msg), CUE, YAML and JSON files are supported; a directory
// loads every schema file in it, in lexical order.
package loader

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/msgc/internal/schema"
	"github.com/roach88/msgc/internal/template"
)

//go:embed schema.cue
var schemaCUE string

// LoadMode controls how errors are handled during schema loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Error codes shared with the CLI.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeScanError       = "E002" // Directory scan error
	ErrCodeNoFiles         = "E003" // No schema files found
	ErrCodeLoadFailed      = "E004" // File read or parse failed
	ErrCodeNotFound        = "E005" // Path not found
	ErrCodeBuildFailed     = "E006" // CUE build or validation failed
	ErrCodeVersionMismatch = "E008" // Files declare different versions
)

// LoadError represents an error that occurred during schema loading.
type LoadError struct {
	Code    string
	Message string
	File    string
	Line    int // 0 when unknown
	Column  int
}

func (e *LoadError) Error() string {
	switch {
	case e.File != "" && e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Column, e.Code, e.Message)
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Code, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadResult is the merged schema of every loaded file.
type LoadResult struct {
	Schema *schema.Schema
	Files  []string
}

type decodeFunc func(path string, data []byte) (*schema.Schema, error)

var decoders = map[string]decodeFunc{
	".msg":  decodeTemplate,
	".cue":  decodeCUE,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".json": decodeJSON,
}

// Supported reports whether path has a schema file extension.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads the schema file or directory at path.
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors.
func Load(path string, mode LoadMode) (*LoadResult, []error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("schema path not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing schema path: %v", err)}}
	}

	files := []string{path}
	if info.IsDir() {
		files, err = FindSchemaFiles(path)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
		}
		if len(files) == 0 {
			return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no schema files found in %s", path)}}
		}
	}

	var errs []error
	result := &LoadResult{Schema: &schema.Schema{}, Files: files}
	for _, file := range files {
		s, err := LoadFile(file)
		if err != nil {
			errs = append(errs, err)
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}

		switch {
		case result.Schema.Version == "":
			result.Schema.Version = s.Version
		case s.Version != "" && s.Version != result.Schema.Version:
			errs = append(errs, &LoadError{
				Code:    ErrCodeVersionMismatch,
				File:    file,
				Message: fmt.Sprintf("version %s differs from %s", s.Version, result.Schema.Version),
			})
			if mode == LoadModeFailFast {
				return result, errs
			}
		}
		result.Schema.Messages = append(result.Schema.Messages, s.Messages...)
	}
	return result, errs
}

// LoadFile reads a single schema file, choosing the format by extension.
func LoadFile(path string) (*schema.Schema, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, &LoadError{Code: ErrCodeLoadFailed, File: path, Message: "unsupported file extension"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, File: path, Message: err.Error()}
	}
	return decode(path, data)
}

// FindSchemaFiles walks dir and returns all schema file paths, sorted.
func FindSchemaFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && Supported(path) {
			files = append(files, path)
		}
		return nil
	})
	slices.Sort(files)
	return files, err
}

func decodeTemplate(path string, data []byte) (*schema.Schema, error) {
	s, err := template.Parse(bytes.NewReader(data))
	if err != nil {
		var pe *template.ParseError
		if errors.As(err, &pe) {
			return nil, &LoadError{Code: ErrCodeLoadFailed, File: path, Line: pe.Line, Message: pe.Message}
		}
		return nil, &LoadError{Code: ErrCodeLoadFailed, File: path, Message: err.Error()}
	}
	return s, nil
}

func decodeCUE(path string, data []byte) (*schema.Schema, error) {
	ctx := cuecontext.New()
	def := ctx.CompileString(schemaCUE, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#Schema"))
	if err := def.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building schema definition: %v", err)}
	}

	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err, path, ErrCodeLoadFailed)
	}
	v = def.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err, path, ErrCodeBuildFailed)
	}

	var s schema.Schema
	if err := v.Decode(&s); err != nil {
		return nil, formatCUEError(err, path, ErrCodeBuildFailed)
	}
	return &s, nil
}

// formatCUEError converts the first CUE error to a LoadError with position.
func formatCUEError(err error, path, code string) error {
	le := &LoadError{Code: code, File: path, Message: err.Error()}
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return le
	}
	first := errs[0]
	le.Message = first.Error()
	if positions := cueerrors.Positions(first); len(positions) > 0 && positions[0].IsValid() {
		pos := positions[0]
		if pos.Filename() != "" {
			le.File = pos.Filename()
		}
		le.Line, le.Column = pos.Line(), pos.Column()
	}
	return le
}

func decodeYAML(path string, data []byte) (*schema.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s schema.Schema
	if err := dec.Decode(&s); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, File: path, Message: err.Error()}
	}
	return &s, nil
}

func decodeJSON(path string, data []byte) (*schema.Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s schema.Schema
	if err := dec.Decode(&s); err != nil {
		le := &LoadError{Code: ErrCodeLoadFailed, File: path, Message: err.Error()}
		var syntax *json.SyntaxError
		if errors.As(err, &syntax) {
			le.Line = bytes.Count(data[:syntax.Offset], []byte("\n")) + 1
		}
		return nil, le
	}
	return &s, nil
}

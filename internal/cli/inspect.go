package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/msgc/internal/compiler"
)

// InspectResult describes a compiled schema.
type InspectResult struct {
	Version  string        `json:"version,omitempty"`
	Messages []MessageInfo `json:"messages"`
}

// MessageInfo describes one compiled message.
type MessageInfo struct {
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	Frequency string      `json:"frequency"`
	Number    string      `json:"number"`
	ID        string      `json:"id"`
	Trusted   bool        `json:"trusted"`
	Zerocoded bool        `json:"zerocoded"`
	Flags     []string    `json:"flags,omitempty"`
	Blocks    []BlockInfo `json:"blocks"`
}

// BlockInfo describes one block of a message. Size is -1 when the block
// holds a variable buffer.
type BlockInfo struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Quantity string      `json:"quantity"`
	Size     int         `json:"size"`
	Fields   []FieldInfo `json:"fields"`
}

// FieldInfo describes one field of a block.
type FieldInfo struct {
	Name   string `json:"name"`
	Ident  string `json:"ident"`
	Type   string `json:"type"`
	GoType string `json:"go_type"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <schema>",
		Short: "Show the compiled message table",
		Long: `Compile a schema and print, for every message, its identifier bytes,
dispatch number and blocks with their quantities and field types.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, schemaPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	cfg, stageErr := loadConfig(opts)
	if stageErr != nil {
		return stageErr.report(formatter)
	}
	c, stageErr := compileSchema(schemaPath, cfg)
	if stageErr != nil {
		return stageErr.report(formatter)
	}

	result := describe(c.Program)
	if formatter.JSON() {
		return formatter.Success(result)
	}
	writeInspect(formatter.Writer, result)
	return nil
}

func describe(p *compiler.Program) InspectResult {
	result := InspectResult{Version: p.Version, Messages: []MessageInfo{}}
	for _, m := range p.Messages {
		info := MessageInfo{
			Name:      m.Name,
			Type:      m.Ident,
			Frequency: m.Frequency.String(),
			Number:    fmt.Sprintf("0x%08x", m.MessageNumber()),
			ID:        fmt.Sprintf("% x", m.IDBytes()),
			Trusted:   m.Trusted,
			Zerocoded: m.Zerocoded,
			Flags:     m.Flags,
			Blocks:    []BlockInfo{},
		}
		for _, b := range m.Blocks {
			block := BlockInfo{
				Name:     b.Name,
				Type:     b.TypeName(),
				Quantity: b.Quantity.String(),
				Size:     b.Size(),
				Fields:   []FieldInfo{},
			}
			for _, f := range b.Fields {
				block.Fields = append(block.Fields, FieldInfo{
					Name:   f.Name,
					Ident:  f.Ident,
					Type:   f.Rule.String(),
					GoType: f.Rule.GoType(),
				})
			}
			info.Blocks = append(info.Blocks, block)
		}
		result.Messages = append(result.Messages, info)
	}
	return result
}

// writeInspect renders result as indented text, one line per message,
// block and field.
func writeInspect(w io.Writer, result InspectResult) {
	if result.Version != "" {
		fmt.Fprintf(w, "version %s\n", result.Version)
	}
	for _, m := range result.Messages {
		fmt.Fprintf(w, "%s %s %s [%s]", m.Name, m.Frequency, m.Number, m.ID)
		if attrs := attributes(m); len(attrs) > 0 {
			fmt.Fprintf(w, " %s", strings.Join(attrs, ", "))
		}
		fmt.Fprintln(w)
		for _, b := range m.Blocks {
			size := "variable size"
			if b.Size >= 0 {
				size = fmt.Sprintf("%d bytes", b.Size)
			}
			fmt.Fprintf(w, "  %s %s (%s)\n", b.Name, b.Quantity, size)
			for _, f := range b.Fields {
				fmt.Fprintf(w, "    %s %s -> %s %s\n", f.Name, f.Type, f.Ident, f.GoType)
			}
		}
	}
}

func attributes(m MessageInfo) []string {
	var attrs []string
	if m.Trusted {
		attrs = append(attrs, "Trusted")
	}
	if m.Zerocoded {
		attrs = append(attrs, "Zerocoded")
	}
	return append(attrs, m.Flags...)
}

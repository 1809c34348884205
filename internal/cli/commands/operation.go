package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/opcalc/internal/cli/output"
	"github.com/leapstack-labs/opcalc/pkg/core"
	"github.com/leapstack-labs/opcalc/pkg/operations/add"
	"github.com/leapstack-labs/opcalc/pkg/operations/multiply"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	cmd := newOperationCommand(add.Operation{})
	cmd.Short = "Add two numbers"
	cmd.Example = `  # Add two numbers
  opcalc add 2 3

  # Negative operands go after --
  opcalc add -- -1.5 4

  # Print only the result
  opcalc add 0.1 0.2 --output plain --precision -1

  # Keep adding pairs interactively
  opcalc add -i`
	return cmd
}

// NewMultiplyCommand creates the multiply command.
func NewMultiplyCommand() *cobra.Command {
	cmd := newOperationCommand(multiply.Operation{})
	cmd.Aliases = []string{"mul"}
	cmd.Short = "Multiply two numbers"
	cmd.Example = `  # Multiply two numbers
  opcalc multiply 2 3

  # Negative operands go after --
  opcalc multiply -- -1.5 4

  # Results as JSON
  opcalc mul 1e200 1e200 --output json

  # Keep multiplying pairs interactively
  opcalc multiply -i`
	return cmd
}

// newOperationCommand binds op to a command named after it.
func newOperationCommand(op core.Operation) *cobra.Command {
	var interactive bool
	name := strings.ToLower(op.Name())

	cmd := &cobra.Command{
		Use: name + " <a> <b>",
		Long: fmt.Sprintf(`Apply the %s operation to two numbers.

Operands are IEEE-754 double precision values. NaN, Inf, +Inf and -Inf are
accepted and propagate through the arithmetic like any other value; overflow
yields an infinity rather than an error.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table

Use --output to override: auto, text, markdown, json, yaml, plain`, op.Name()),
		Args: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if interactive {
				return runOperationREPL(cmd, cmdCtx, op)
			}

			a, b, err := parseOperands(args[0], args[1])
			if err != nil {
				return err
			}
			return renderExecute(cmdCtx.Renderer, evaluate(cmdCtx, op, a, b))
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read operand pairs from an interactive prompt")

	return cmd
}

// evaluate runs op and packages the result for rendering.
func evaluate(cmdCtx *CommandContext, op core.Operation, a, b float64) output.ExecuteOutput {
	result := op.Execute(a, b)
	cmdCtx.Logger.Debug("executed operation",
		"operation", op.Name(),
		"a", a,
		"b", b,
		"result", result,
	)

	return output.ExecuteOutput{
		Operation: op.Name(),
		A:         output.Number(a),
		B:         output.Number(b),
		Result:    output.Number(result),
		Formatted: output.FormatNumber(result, cmdCtx.Cfg.Precision),
	}
}

func renderExecute(r *output.Renderer, res output.ExecuteOutput) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(res)
	case output.ModeYAML:
		return r.YAML(res)
	case output.ModePlain:
		r.Println(res.Formatted)
		return nil
	case output.ModeMarkdown:
		return executeMarkdown(r, res)
	default:
		return executeText(r, res)
	}
}

// executeText outputs the result as a styled table.
func executeText(r *output.Renderer, res output.ExecuteOutput) error {
	t := newExecuteTable(r, res, r.Styles().Result.Render(res.Formatted))
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// executeMarkdown outputs the result as a markdown table.
func executeMarkdown(r *output.Renderer, res output.ExecuteOutput) error {
	r.Header(1, res.Operation)
	r.Println()
	t := newExecuteTable(r, res, res.Formatted)
	t.RenderMarkdown()
	return nil
}

func newExecuteTable(r *output.Renderer, res output.ExecuteOutput, result string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Operation", "A", "B", "Result"})
	t.AppendRow(table.Row{
		res.Operation,
		output.FormatNumber(float64(res.A), -1),
		output.FormatNumber(float64(res.B), -1),
		result,
	})
	return t
}

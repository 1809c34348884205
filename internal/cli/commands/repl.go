package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/opcalc/pkg/core"
	"github.com/spf13/cobra"
)

// lineReader is the part of *readline.Instance the loop needs.
type lineReader interface {
	Readline() (string, error)
}

func runOperationREPL(cmd *cobra.Command, cmdCtx *CommandContext, op core.Operation) error {
	prompt := strings.ToLower(op.Name()) + "> "

	rlCfg := &readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(".help"),
			readline.PcItem(".quit"),
			readline.PcItem(".exit"),
		),
	}
	if in := cmd.InOrStdin(); in != os.Stdin {
		rlCfg.Stdin = io.NopCloser(in)
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize interactive mode: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r := cmdCtx.Renderer
	r.Printf("%s interactive mode\n", op.Name())
	r.Println("Enter two numbers per line, .help for commands, .quit to exit")
	r.Println()

	return operationLoop(rl, cmdCtx, op)
}

// operationLoop evaluates operand pairs until EOF or .quit.
// Bad lines are reported and the loop continues.
func operationLoop(rl lineReader, cmdCtx *CommandContext, op core.Operation) error {
	r := cmdCtx.Renderer

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch strings.ToLower(line) {
			case ".quit", ".exit":
				return nil
			case ".help":
				printREPLHelp(r.Writer(), op)
			default:
				r.Error(fmt.Sprintf("unknown command: %s (type .help for commands)", line))
			}
			continue
		}

		a, b, err := parseOperandLine(line)
		if err != nil {
			r.Error(err.Error())
			continue
		}

		res := evaluate(cmdCtx, op, a, b)
		r.Println(r.Styles().Result.Render(res.Formatted))
	}
}

func printREPLHelp(w io.Writer, op core.Operation) {
	help := `
Commands:
  <a> <b>         %s two numbers (space or comma separated)
  .help           Show this help message
  .quit / .exit   Exit

Tips:
  - NaN, Inf and -Inf are valid operands
  - Ctrl-C clears the current line, Ctrl-D exits
`
	_, _ = fmt.Fprintf(w, help, op.Name())
}

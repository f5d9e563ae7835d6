package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/devterm/internal/cli/formatter"
)

// runLineMode reads one command per line from in and writes each rendered
// output to out. It stops at EOF, "exit" or "quit".
func runLineMode(ctx context.Context, app *App, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		result := app.Interpreter.Interpret(ctx, line)
		if result.Clear {
			continue
		}
		if text := formatter.FormatOutput(result, 0); text != "" {
			fmt.Fprintln(out, text)
		}
	}
	return scanner.Err()
}

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// RunPlain reads lines from r until EOF or \quit, printing the prompt and
// any output to w. Errors on a line are reported and the loop continues.
// Lines are not length-limited.
func RunPlain(in *Interpreter, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)

	for {
		fmt.Fprint(w, in.Prompt())

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		if line == "" && readErr != nil {
			// EOF (Ctrl+D)
			fmt.Fprintln(w)
			return nil
		}

		out, err := in.Execute(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(w, RenderError(err))
		} else if out != "" {
			fmt.Fprintln(w, out)
		}

		if readErr != nil {
			fmt.Fprintln(w)
			return nil
		}
	}
}

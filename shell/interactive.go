package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"
)

// RunInteractive greets the user and reads lines with editing and history
// until exit or end of input. Ctrl-C discards the current line.
func (s *Shell) RunInteractive() error {
	cli := liner.NewLiner()
	defer func() { _ = cli.Close() }() // Best effort, restores the terminal.
	cli.SetCtrlCAborts(true)

	s.Greet()

	h := &history{cli: cli}
	for {
		line, err := cli.Prompt(s.cfg.Prompt)
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.stdout)
			return nil
		default:
			return fmt.Errorf("prompt: %w", err)
		}
		stop := s.Handle(line)
		h.add(line)
		if stop {
			return nil
		}
	}
}

type historyAppender interface {
	AppendHistory(item string)
}

// history skips a line identical to the previous entry.
type history struct {
	cli  historyAppender
	last string
}

func (h *history) add(line string) {
	if line == "" || line == h.last {
		return
	}
	h.cli.AppendHistory(line)
	h.last = line
}

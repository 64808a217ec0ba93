package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Console asks yes/no questions on a terminal. Only "y" and "yes" count as
// confirmation; anything else, including EOF, declines.
type Console struct {
	in  io.Reader
	out io.Writer
}

// New returns a Console reading stdin and writing stderr, so prompts stay
// visible when stdout is redirected.
func New() *Console {
	return &Console{in: os.Stdin, out: os.Stderr}
}

// Confirm prints the prompt and reads one line.
func (c *Console) Confirm(prompt string) (bool, error) {
	if _, err := color.New(color.FgYellow).Fprintf(c.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirm writes question followed by "(y/N)" to out and reads one line from
// in. Only "y" or "yes", in any case, confirm; anything else, including an
// empty line or end of input, declines.
func Confirm(in io.Reader, out io.Writer, question string, details ...string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s (y/N)\n", question); err != nil {
		return false, err
	}
	for _, line := range details {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return false, err
		}
	}

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

package services

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter is the blocking user-interaction surface. Every data entry in
// the application goes through one of these synchronous calls, which keeps
// the checkout and admin logic free of any direct interface dependency and
// lets tests drive whole flows with a scripted implementation.
type Prompter interface {
	// AskInt prompts for an integer in [min, max]. ok is false when the
	// user cancels (blank input).
	AskInt(title, prompt string, min, max int) (value int, ok bool)

	// AskString prompts for a free-text value. ok is false when the user
	// cancels (blank input).
	AskString(title, prompt string) (value string, ok bool)

	// Confirm asks a yes/no question and returns the answer.
	Confirm(title, prompt string) bool

	// Notify shows a blocking notice (info, warning or error alike).
	Notify(title, message string)

	// Show prints non-modal output such as menu listings and table dumps.
	Show(text string)
}

// ConsolePrompter implements Prompter over a line-based terminal. A blank
// line cancels a prompt; invalid or out-of-range integers re-prompt.
type ConsolePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsolePrompter creates a prompter reading from stdin and writing to
// stdout.
func NewConsolePrompter() *ConsolePrompter {
	return NewConsolePrompterIO(os.Stdin, os.Stdout)
}

// NewConsolePrompterIO creates a prompter over the given reader and writer.
func NewConsolePrompterIO(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// AskInt prompts until it reads an integer in [min, max] or a blank line.
func (p *ConsolePrompter) AskInt(title, prompt string, min, max int) (int, bool) {
	for {
		fmt.Fprintf(p.out, "[%s] %s (%d-%d, blank to cancel): ", title, prompt, min, max)
		line, ok := p.readLine()
		if !ok || line == "" {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a whole number.\n")
			continue
		}
		if n < min || n > max {
			fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, true
	}
}

// AskString prompts for one line of text; a blank line cancels.
func (p *ConsolePrompter) AskString(title, prompt string) (string, bool) {
	fmt.Fprintf(p.out, "[%s] %s: ", title, prompt)
	line, ok := p.readLine()
	if !ok || line == "" {
		return "", false
	}
	return line, true
}

// Confirm asks until it reads a y/yes or n/no answer. EOF counts as no.
func (p *ConsolePrompter) Confirm(title, prompt string) bool {
	for {
		fmt.Fprintf(p.out, "[%s] %s (y/n): ", title, prompt)
		line, ok := p.readLine()
		if !ok {
			return false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
	}
}

// Notify prints a titled notice.
func (p *ConsolePrompter) Notify(title, message string) {
	fmt.Fprintf(p.out, "*** %s: %s\n", title, message)
}

// Show prints a block of output.
func (p *ConsolePrompter) Show(text string) {
	fmt.Fprintln(p.out, text)
}

func (p *ConsolePrompter) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func consoleOver(input string) (*ConsolePrompter, *strings.Builder) {
	var out strings.Builder
	return NewConsolePrompterIO(strings.NewReader(input), &out), &out
}

func TestConsoleAskInt(t *testing.T) {
	p, _ := consoleOver("3\n")
	n, ok := p.AskInt("Test", "Pick", 1, 5)
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestConsoleAskIntBlankCancels(t *testing.T) {
	p, _ := consoleOver("\n")
	_, ok := p.AskInt("Test", "Pick", 1, 5)
	assert.False(t, ok, "A blank line should cancel the prompt")
}

func TestConsoleAskIntRepromptsOnBadInput(t *testing.T) {
	p, out := consoleOver("abc\n99\n4\n")
	n, ok := p.AskInt("Test", "Pick", 1, 5)
	assert.True(t, ok)
	assert.Equal(t, 4, n, "Bad and out-of-range input should re-prompt until valid")
	assert.Contains(t, out.String(), "whole number")
	assert.Contains(t, out.String(), "between 1 and 5")
}

func TestConsoleAskIntEOFCancels(t *testing.T) {
	p, _ := consoleOver("")
	_, ok := p.AskInt("Test", "Pick", 1, 5)
	assert.False(t, ok)
}

func TestConsoleAskString(t *testing.T) {
	p, _ := consoleOver("  Jane  \n")
	s, ok := p.AskString("Test", "Name")
	assert.True(t, ok)
	assert.Equal(t, "Jane", s, "Input should be trimmed")

	p, _ = consoleOver("\n")
	_, ok = p.AskString("Test", "Name")
	assert.False(t, ok)
}

func TestConsoleConfirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"maybe\ny\n", true}, // unrecognised answers re-prompt
		{"", false},          // EOF
	}
	for _, tt := range tests {
		p, _ := consoleOver(tt.input)
		assert.Equal(t, tt.expected, p.Confirm("Test", "Sure?"), "input %q", tt.input)
	}
}

func TestConsoleNotifyAndShow(t *testing.T) {
	p, out := consoleOver("")
	p.Notify("Added", "Added 2 x Taco to cart")
	p.Show("menu listing")
	assert.Contains(t, out.String(), "*** Added: Added 2 x Taco to cart")
	assert.Contains(t, out.String(), "menu listing")
}

func TestScriptedPrompterPopsReplies(t *testing.T) {
	p := NewScriptedPrompter()
	p.IntReplies = []IntReply{{Value: 7, OK: true}}
	p.StringReplies = []StringReply{{Value: "Cash", OK: true}}
	p.ConfirmReplies = []bool{true}

	n, ok := p.AskInt("T", "n", 1, 10)
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	s, ok := p.AskString("T", "s")
	assert.True(t, ok)
	assert.Equal(t, "Cash", s)

	assert.True(t, p.Confirm("T", "c"))

	// Exhausted queues answer like cancelled dialogs.
	_, ok = p.AskInt("T", "n", 1, 10)
	assert.False(t, ok)
	_, ok = p.AskString("T", "s")
	assert.False(t, ok)
	assert.False(t, p.Confirm("T", "c"))

	assert.Len(t, p.Prompts, 6, "Every prompt should be recorded")
}

func TestScriptedPrompterRecordsOutput(t *testing.T) {
	p := NewScriptedPrompter()
	p.Notify("Error", "boom")
	p.Show("table")
	assert.Equal(t, []string{"Error: boom"}, p.Notices)
	assert.Equal(t, []string{"table"}, p.Shown)
}

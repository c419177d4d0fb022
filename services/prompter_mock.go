package services

import "fmt"

// IntReply is one scripted answer to an AskInt call. OK false means the
// user cancelled the dialog.
type IntReply struct {
	Value int
	OK    bool
}

// StringReply is one scripted answer to an AskString call.
type StringReply struct {
	Value string
	OK    bool
}

// ScriptedPrompter is a Prompter for testing: it answers prompts from
// pre-loaded reply queues and records every notice and output block so
// tests can assert on what the user would have seen. An exhausted queue
// answers like a cancelled dialog.
type ScriptedPrompter struct {
	IntReplies     []IntReply
	StringReplies  []StringReply
	ConfirmReplies []bool

	Prompts []string // every AskInt/AskString/Confirm prompt, in call order
	Notices []string // recorded as "title: message"
	Shown   []string
}

// NewScriptedPrompter creates an empty scripted prompter; load the reply
// queues before driving a flow with it.
func NewScriptedPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{}
}

// AskInt pops the next scripted integer reply.
func (p *ScriptedPrompter) AskInt(title, prompt string, min, max int) (int, bool) {
	p.Prompts = append(p.Prompts, fmt.Sprintf("%s: %s", title, prompt))
	if len(p.IntReplies) == 0 {
		return 0, false
	}
	reply := p.IntReplies[0]
	p.IntReplies = p.IntReplies[1:]
	return reply.Value, reply.OK
}

// AskString pops the next scripted string reply.
func (p *ScriptedPrompter) AskString(title, prompt string) (string, bool) {
	p.Prompts = append(p.Prompts, fmt.Sprintf("%s: %s", title, prompt))
	if len(p.StringReplies) == 0 {
		return "", false
	}
	reply := p.StringReplies[0]
	p.StringReplies = p.StringReplies[1:]
	return reply.Value, reply.OK
}

// Confirm pops the next scripted yes/no reply, defaulting to no.
func (p *ScriptedPrompter) Confirm(title, prompt string) bool {
	p.Prompts = append(p.Prompts, fmt.Sprintf("%s: %s", title, prompt))
	if len(p.ConfirmReplies) == 0 {
		return false
	}
	reply := p.ConfirmReplies[0]
	p.ConfirmReplies = p.ConfirmReplies[1:]
	return reply
}

// Notify records the notice.
func (p *ScriptedPrompter) Notify(title, message string) {
	p.Notices = append(p.Notices, fmt.Sprintf("%s: %s", title, message))
}

// Show records the output block.
func (p *ScriptedPrompter) Show(text string) {
	p.Shown = append(p.Shown, text)
}

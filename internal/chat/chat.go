// Package chat models the per-agent chat view: the agent directory it
// resolves against, conversation summaries, the fixed transcript, the
// capability-module toggle set and the input composer.
package chat

import (
	"fmt"
	"strings"
)

// Agent is an entry of the chat agent directory.
type Agent struct {
	ID      int
	Name    string
	Type    string
	Avatar  string
	Modules int
}

// Initial is the avatar fallback letter.
func (a Agent) Initial() string {
	for _, r := range a.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Resolve finds the agent with the given id. An unknown id falls back to the
// first agent; ok is false only when agents is empty.
func Resolve(agents []Agent, id int) (a Agent, ok bool) {
	if len(agents) == 0 {
		return Agent{}, false
	}
	for _, a := range agents {
		if a.ID == id {
			return a, true
		}
	}
	return agents[0], true
}

// Sender distinguishes the two sides of a transcript.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// ParseSender validates a sender label.
func ParseSender(s string) (Sender, error) {
	switch Sender(strings.ToLower(strings.TrimSpace(s))) {
	case SenderUser:
		return SenderUser, nil
	case SenderAgent:
		return SenderAgent, nil
	default:
		return "", fmt.Errorf("unknown message sender %q", s)
	}
}

// Message is one transcript entry.
type Message struct {
	ID        int
	Sender    Sender
	Content   string
	Timestamp string
}

// Conversation is a sidebar summary of a past chat.
type Conversation struct {
	ID          int
	AgentID     int
	Title       string
	LastMessage string
	Timestamp   string
}

// ConversationsFor returns the conversations owned by agentID, in order.
func ConversationsFor(convs []Conversation, agentID int) []Conversation {
	var out []Conversation
	for _, c := range convs {
		if c.AgentID == agentID {
			out = append(out, c)
		}
	}
	return out
}

// Submission is text accepted by the composer.
type Submission struct {
	AgentID int
	Text    string
}

// Composer validates chat input before it is sent.
type Composer struct {
	AgentID int
}

// Submit accepts text unless it is empty after trimming whitespace. The
// caller clears its input only when ok is true.
func (c Composer) Submit(text string) (sub Submission, ok bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Submission{}, false
	}
	return Submission{AgentID: c.AgentID, Text: trimmed}, true
}

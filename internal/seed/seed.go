// Package seed provides the compiled-in sample data every view starts from.
// Each call to Load decodes a fresh copy, so views never share state.
package seed

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"mosaic-tui/internal/agents"
	"mosaic-tui/internal/chat"
	"mosaic-tui/internal/metrics"
)

//go:embed seed.yaml
var raw []byte

// Listing is a module offered in the module marketplace panel.
type Listing struct {
	Name        string `yaml:"name" json:"name"`
	Tag         string `yaml:"tag" json:"tag"`
	Price       string `yaml:"price" json:"price"`
	Description string `yaml:"description" json:"description"`
}

// Profile holds the fixed statistics of the agent info panel.
type Profile struct {
	TasksCompleted string `yaml:"tasks_completed" json:"tasks_completed"`
	SuccessRate    string `yaml:"success_rate" json:"success_rate"`
	WalletBalance  string `yaml:"wallet_balance" json:"wallet_balance"`
	LastActive     string `yaml:"last_active" json:"last_active"`
	TokenID        string `yaml:"token_id" json:"token_id"`
	Collection     string `yaml:"collection" json:"collection"`
	Blockchain     string `yaml:"blockchain" json:"blockchain"`
	Created        string `yaml:"created" json:"created"`
	Description    string `yaml:"description" json:"description"`
}

// DescriptionFor fills the markdown description template for an agent.
func (p Profile) DescriptionFor(name, typ string) string {
	return strings.NewReplacer("{{name}}", name, "{{type}}", strings.ToLower(typ)).Replace(p.Description)
}

// Links groups the sidebar entries.
type Links struct {
	Main      []string `yaml:"main" json:"main"`
	Documents []string `yaml:"documents" json:"documents"`
	Secondary []string `yaml:"secondary" json:"secondary"`
}

// Data is the full sample dataset.
type Data struct {
	Agents        []agents.Agent
	Skills        map[string][]string
	AgentTypes    []string
	ChatAgents    []chat.Agent
	Conversations []chat.Conversation
	Modules       []chat.Module
	Marketplace   []Listing
	Messages      []chat.Message
	Profile       Profile
	Series        []metrics.Point
	ReferenceDate time.Time
	Cards         []metrics.Card
	Links         Links
}

type rawAgent struct {
	ID         int     `yaml:"id"`
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Status     string  `yaml:"status"`
	Avatar     string  `yaml:"avatar"`
	Skills     int     `yaml:"skills"`
	Balance    float64 `yaml:"balance"`
	LastActive string  `yaml:"last_active"`
}

type rawChatAgent struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Avatar  string `yaml:"avatar"`
	Modules int    `yaml:"modules"`
}

type rawConversation struct {
	ID          int    `yaml:"id"`
	AgentID     int    `yaml:"agent_id"`
	Title       string `yaml:"title"`
	LastMessage string `yaml:"last_message"`
	Timestamp   string `yaml:"timestamp"`
}

type rawModule struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Style    string `yaml:"style"`
	Equipped bool   `yaml:"equipped"`
}

type rawMessage struct {
	ID        int    `yaml:"id"`
	Sender    string `yaml:"sender"`
	Content   string `yaml:"content"`
	Timestamp string `yaml:"timestamp"`
}

type rawPoint struct {
	Date         string  `yaml:"date"`
	Tasks        float64 `yaml:"tasks"`
	Earnings     float64 `yaml:"earnings"`
	Interactions float64 `yaml:"interactions"`
}

type rawCard struct {
	Title    string `yaml:"title"`
	Value    string `yaml:"value"`
	Trend    string `yaml:"trend"`
	Up       bool   `yaml:"up"`
	Headline string `yaml:"headline"`
	Detail   string `yaml:"detail"`
}

type rawData struct {
	Agents        []rawAgent          `yaml:"agents"`
	Skills        map[string][]string `yaml:"skills"`
	AgentTypes    []string            `yaml:"agent_types"`
	ChatAgents    []rawChatAgent      `yaml:"chat_agents"`
	Conversations []rawConversation   `yaml:"conversations"`
	Modules       []rawModule         `yaml:"modules"`
	Marketplace   []Listing           `yaml:"marketplace"`
	Messages      []rawMessage        `yaml:"messages"`
	Profile       Profile             `yaml:"profile"`
	Chart         struct {
		ReferenceDate string     `yaml:"reference_date"`
		Points        []rawPoint `yaml:"points"`
	} `yaml:"chart"`
	Cards []rawCard `yaml:"cards"`
	Links Links     `yaml:"links"`
}

// Load decodes the embedded sample data.
func Load() (*Data, error) {
	return Parse(raw)
}

// MustLoad is Load for callers that treat broken seed data as a bug.
func MustLoad() *Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// Parse decodes sample data in the embedded YAML layout.
func Parse(b []byte) (*Data, error) {
	var r rawData
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	d := &Data{
		Skills:      r.Skills,
		AgentTypes:  r.AgentTypes,
		Marketplace: r.Marketplace,
		Profile:     r.Profile,
		Links:       r.Links,
	}

	for _, a := range r.Agents {
		status, err := agents.ParseStatus(a.Status)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", a.ID, err)
		}
		d.Agents = append(d.Agents, agents.Agent{
			ID:         a.ID,
			Name:       a.Name,
			Type:       a.Type,
			Status:     status,
			Avatar:     avatarOr(a.Avatar),
			Skills:     a.Skills,
			Balance:    a.Balance,
			LastActive: a.LastActive,
		})
	}

	for _, a := range r.ChatAgents {
		d.ChatAgents = append(d.ChatAgents, chat.Agent{
			ID:      a.ID,
			Name:    a.Name,
			Type:    a.Type,
			Avatar:  avatarOr(a.Avatar),
			Modules: a.Modules,
		})
	}

	for _, c := range r.Conversations {
		d.Conversations = append(d.Conversations, chat.Conversation(c))
	}

	for _, m := range r.Modules {
		d.Modules = append(d.Modules, chat.Module(m))
	}

	for _, m := range r.Messages {
		sender, err := chat.ParseSender(m.Sender)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", m.ID, err)
		}
		d.Messages = append(d.Messages, chat.Message{
			ID:        m.ID,
			Sender:    sender,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}

	for _, p := range r.Chart.Points {
		date, err := time.Parse(metrics.DateLayout, p.Date)
		if err != nil {
			return nil, fmt.Errorf("chart point %q: %w", p.Date, err)
		}
		d.Series = append(d.Series, metrics.Point{
			Date:         date,
			Tasks:        p.Tasks,
			Earnings:     p.Earnings,
			Interactions: p.Interactions,
		})
	}

	if r.Chart.ReferenceDate != "" {
		ref, err := time.Parse(metrics.DateLayout, r.Chart.ReferenceDate)
		if err != nil {
			return nil, fmt.Errorf("chart reference date: %w", err)
		}
		d.ReferenceDate = ref
	} else {
		d.ReferenceDate = metrics.LastDate(d.Series)
	}

	for _, c := range r.Cards {
		d.Cards = append(d.Cards, metrics.Card(c))
	}

	return d, nil
}

const placeholderAvatar = "/placeholder.svg?height=40&width=40"

func avatarOr(s string) string {
	if s == "" {
		return placeholderAvatar
	}
	return s
}

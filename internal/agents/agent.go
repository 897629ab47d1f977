// Package agents holds the agent records shown in the dashboard table and
// the table state (sorting, filtering, selection, paging, reordering) that
// the agent list view drives.
package agents

import (
	"fmt"
	"strings"
)

// Status is the lifecycle label shown in the status column.
type Status int

const (
	StatusActive Status = iota
	StatusInactive
	StatusTraining
)

var statusNames = [...]string{"Active", "Inactive", "Training"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Unknown"
	}
	return statusNames[s]
}

// ParseStatus maps a status label (case-insensitive) to a Status.
func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("unknown agent status %q", s)
}

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusTraining}
}

// Agent is one row of the agent list.
type Agent struct {
	ID         int
	Name       string
	Type       string
	Status     Status
	Avatar     string
	Skills     int     // number of skills acquired
	Balance    float64 // wallet balance in ETH
	LastActive string
}

// BalanceString renders the wallet balance the way the table shows it.
func (a Agent) BalanceString() string {
	return fmt.Sprintf("%.2f ETH", a.Balance)
}

// Initial is the avatar fallback letter.
func (a Agent) Initial() string {
	for _, r := range a.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// FilterByStatus returns the rows whose status equals s, in their original
// order. The result shares no backing array with rows.
func FilterByStatus(rows []Agent, s Status) []Agent {
	out := make([]Agent, 0, len(rows))
	for _, a := range rows {
		if a.Status == s {
			out = append(out, a)
		}
	}
	return out
}

// CountByStatus tallies rows per status.
func CountByStatus(rows []Agent) map[Status]int {
	counts := make(map[Status]int, len(statusNames))
	for _, a := range rows {
		counts[a.Status]++
	}
	return counts
}

// IDs returns the identities of rows in order.
func IDs(rows []Agent) []int {
	ids := make([]int, len(rows))
	for i, a := range rows {
		ids[i] = a.ID
	}
	return ids
}

// IndexOf returns the position of the agent with the given id, or -1.
func IndexOf(rows []Agent, id int) int {
	for i, a := range rows {
		if a.ID == id {
			return i
		}
	}
	return -1
}

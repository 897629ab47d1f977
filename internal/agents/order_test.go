package agents

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() []Agent {
	return []Agent{
		{ID: 1, Name: "Athena", Type: "Research Assistant", Status: StatusActive, Skills: 5, Balance: 0.18},
		{ID: 2, Name: "Hermes", Type: "Communication", Status: StatusActive, Skills: 3, Balance: 0.12},
		{ID: 3, Name: "Apollo", Type: "Creative", Status: StatusActive, Skills: 4, Balance: 0.21},
		{ID: 4, Name: "Artemis", Type: "Data Analysis", Status: StatusActive, Skills: 6, Balance: 0.24},
		{ID: 5, Name: "Hephaestus", Type: "Builder", Status: StatusInactive, Skills: 2, Balance: 0.07},
		{ID: 6, Name: "Demeter", Type: "Operations", Status: StatusTraining, Skills: 3, Balance: 0.05},
		{ID: 7, Name: "Hestia", Type: "Security", Status: StatusTraining, Skills: 0, Balance: 0},
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"forward", 0, 3, []int{2, 3, 4, 1, 5, 6, 7}},
		{"backward", 5, 1, []int{1, 6, 2, 3, 4, 5, 7}},
		{"to end", 0, 6, []int{2, 3, 4, 5, 6, 7, 1}},
		{"to start", 6, 0, []int{7, 1, 2, 3, 4, 5, 6}},
		{"same index", 2, 2, []int{1, 2, 3, 4, 5, 6, 7}},
		{"from out of range", 9, 0, []int{1, 2, 3, 4, 5, 6, 7}},
		{"to out of range", 0, -1, []int{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := sample()
			got := IDs(Move(rows, tt.from, tt.to))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Move(%d, %d) mismatch (-want +got):\n%s", tt.from, tt.to, diff)
			}
			if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7}, IDs(rows)); diff != "" {
				t.Errorf("input was modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveByIDTakesTargetIndex(t *testing.T) {
	rows := sample()
	for _, a := range rows {
		for _, b := range rows {
			overIdx := IndexOf(rows, b.ID)
			got := MoveByID(rows, a.ID, b.ID)

			if IndexOf(got, a.ID) != overIdx {
				t.Fatalf("move %d onto %d: landed at %d, want %d", a.ID, b.ID, IndexOf(got, a.ID), overIdx)
			}

			// Everything except the moved row keeps its relative order.
			var before, after []int
			for _, r := range rows {
				if r.ID != a.ID {
					before = append(before, r.ID)
				}
			}
			for _, r := range got {
				if r.ID != a.ID {
					after = append(after, r.ID)
				}
			}
			if diff := cmp.Diff(before, after); diff != "" {
				t.Fatalf("move %d onto %d reordered others (-want +got):\n%s", a.ID, b.ID, diff)
			}
		}
	}
}

func TestMoveByIDUnknownOrSelf(t *testing.T) {
	rows := sample()
	want := IDs(rows)

	if diff := cmp.Diff(want, IDs(MoveByID(rows, 3, 3))); diff != "" {
		t.Errorf("self drop changed order:\n%s", diff)
	}
	if diff := cmp.Diff(want, IDs(MoveByID(rows, 42, 3))); diff != "" {
		t.Errorf("unknown active id changed order:\n%s", diff)
	}
	if diff := cmp.Diff(want, IDs(MoveByID(rows, 3, 42))); diff != "" {
		t.Errorf("unknown over id changed order:\n%s", diff)
	}
}

package agents

// Move relocates the element at from to index to, shifting the elements in
// between by one and leaving every other element's relative order intact.
// Out-of-range indices return an unmodified copy.
func Move[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

// MoveByID moves the agent activeID to the position currently held by
// overID. Unknown ids leave the order unchanged.
func MoveByID(rows []Agent, activeID, overID int) []Agent {
	if activeID == overID {
		return Move(rows, 0, 0)
	}
	return Move(rows, IndexOf(rows, activeID), IndexOf(rows, overID))
}

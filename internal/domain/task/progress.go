package task

// AllComplete reports whether no task in the slice is incomplete. An empty
// slice is complete.
func AllComplete(tasks []Task) bool {
	for i := range tasks {
		if !tasks[i].IsComplete {
			return false
		}
	}
	return true
}

// Progress returns the percentage of complete tasks, rounded down.
// Returns 0 if the slice is empty.
func Progress(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	var done int
	for i := range tasks {
		if tasks[i].IsComplete {
			done++
		}
	}
	return done * 100 / len(tasks)
}

package domain

// StatusTransitions describes the usual lifecycle. It is advisory: updates
// may set any registry status regardless of the current one.
var StatusTransitions = map[Status][]Status{
	StatusNew:        {StatusInProgress, StatusOnHold, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusOnHold, StatusCancelled},
	StatusOnHold:     {StatusInProgress, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

var terminalStatuses = map[Status]bool{
	StatusCompleted: true,
	StatusCancelled: true,
}

// IsTerminalStatus returns true for statuses that end the lifecycle.
func IsTerminalStatus(status Status) bool {
	return terminalStatuses[status]
}

// IsUsualTransition reports whether from -> to follows the described
// lifecycle. Used for logging only.
func IsUsualTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range StatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

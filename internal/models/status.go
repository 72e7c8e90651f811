package models

// Status is the shared lifecycle for dress bookings and makeup appointments.
//
// pending -> confirmed | cancelled
// confirmed -> completed | cancelled
// completed, cancelled -> (terminal)
//
// Transitions happen only through an admin update; nothing completes or
// cancels a record automatically.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BadgeVariant maps a status to the UI badge color used across the site.
func (s Status) BadgeVariant() string {
	switch s {
	case StatusPending:
		return "warning"
	case StatusConfirmed:
		return "success"
	case StatusCompleted:
		return "secondary"
	case StatusCancelled:
		return "destructive"
	default:
		return "secondary"
	}
}

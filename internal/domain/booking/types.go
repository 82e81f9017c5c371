package booking

type Status string

const (
	StatusActive      Status = "active"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusRescheduled:
		return true
	default:
		return false
	}
}

// CountsForConflict reports whether a booking in this status still occupies
// its time slot. Cancelled bookings free the slot.
func (s Status) CountsForConflict() bool {
	return s == StatusActive || s == StatusRescheduled
}

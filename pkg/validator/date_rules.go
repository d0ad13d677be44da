package validator

import "time"

// Past validates that a time.Time value lies before now.
func Past() Rule {
	return Rule{
		Name: "past",
		Check: func(value any) bool {
			t, ok := value.(time.Time)
			return ok && t.Before(time.Now())
		},
		Message: "date must be in the past",
	}
}

func Future() Rule {
	return Rule{
		Name: "future",
		Check: func(value any) bool {
			t, ok := value.(time.Time)
			return ok && t.After(time.Now())
		},
		Message: "date must be in the future",
	}
}

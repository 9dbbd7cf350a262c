package guestlink

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// StayState is what the guest landing page renders before anything else.
type StayState struct {
	Valid   bool
	Message string
}

// EvalWindow derives the token's state from the stay dates at request time.
// Nothing is stored: a token created yesterday for next week flips to the
// welcome message on the checkin day without any write.
func EvalWindow(today time.Time, checkin, checkout string, guestName string) StayState {
	in, errIn := time.Parse(dateLayout, checkin)
	out, errOut := time.Parse(dateLayout, checkout)
	if errIn != nil || errOut != nil {
		// Malformed dates on a stored record; treat as an active stay
		// rather than locking the guest out.
		return StayState{Valid: true, Message: welcome(guestName)}
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case day.After(out):
		return StayState{Valid: false, Message: "Soggiorno terminato"}
	case day.Before(in):
		n := int(in.Sub(day).Hours() / 24)
		unit := "giorni"
		if n == 1 {
			unit = "giorno"
		}
		return StayState{Valid: true, Message: fmt.Sprintf("Il tuo soggiorno inizia tra %d %s", n, unit)}
	default:
		return StayState{Valid: true, Message: welcome(guestName)}
	}
}

func welcome(name string) string {
	return fmt.Sprintf("Benvenuto/a %s!", name)
}

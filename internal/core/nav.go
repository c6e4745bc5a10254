package core

// Destination identifies a screen the navigation service can switch to.
type Destination string

const (
	DestNone Destination = ""
	DestHome Destination = "home"
)

// Navigator switches screens. Games never call it directly; they emit
// EventNavigate and the platform forwards the destination.
type Navigator interface {
	Navigate(dest Destination)
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(dest Destination)

// Navigate calls f(dest).
func (f NavigatorFunc) Navigate(dest Destination) {
	f(dest)
}

// Dispatch forwards every navigation event in r to nav.
// Returns the last destination dispatched, or DestNone.
func Dispatch(nav Navigator, r StepResult) Destination {
	last := DestNone
	for _, e := range r.Events {
		if e.Kind != EventNavigate || e.Destination == DestNone {
			continue
		}
		if nav != nil {
			nav.Navigate(e.Destination)
		}
		last = e.Destination
	}
	return last
}

package greeting

// WelcomeMessage returns the greeting shown to a user on arrival.
func WelcomeMessage(name string) string {
	return "Welcome, " + name + "!"
}

// Welcomer formats greetings with WelcomeMessage.
type Welcomer struct{}

// NewWelcomer creates a new Welcomer
func NewWelcomer() Welcomer {
	return Welcomer{}
}

// Format implements the demo use case's Formatter.
func (Welcomer) Format(name string) string {
	return WelcomeMessage(name)
}

package app

// Notifier receives the user-visible outcome messages operations emit:
// failures, busy rejections, and read-only results.
type Notifier interface {
	Notify(message string)
}

// NotifyFunc adapts a function to the Notifier interface.
type NotifyFunc func(string)

// Notify implements Notifier.
func (f NotifyFunc) Notify(message string) { f(message) }

// logNotifier is the default sink: messages land in the log.
type logNotifier struct {
	log *Logger
}

func (n logNotifier) Notify(message string) {
	n.log.Warn("notify: %s", message)
}

package spinner

import (
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts a terminal spinner with the given message.
// Returns a stop function to halt and clear the spinner.
//
// Usage: assign the spinner to a 'stop' variable, run some code, then call stop().
// i.e.:
//
//	stop := spinner.StartSpinner("Hashing file ")
//	result := svc.ComputeBytes(data, alg)
//	stop()
func StartSpinner(message string) func() {
	// Use a nice character set; CharSets[14] is a good default.
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()

	return func() {
		s.Stop()
	}
}

//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=../mocks/mock_clock.go -package=mocks
package clock

import "time"

// Clock abstracts time so scheduled transitions can be driven
// deterministically in tests. Waiting is expressed against an absolute
// instant: a waiter anchored at t fires as soon as the clock reaches t,
// no matter when it was registered.
type Clock interface {
	Now() time.Time
	AfterAt(t time.Time) <-chan time.Time
}

type realClock struct{}

func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

func (realClock) AfterAt(t time.Time) <-chan time.Time {
	return time.After(time.Until(t))
}

package service

import "context"

// Transactor runs fn as one all-or-nothing unit of work.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// LeaderboardNotifier is told when a hackathon's ranking may have changed.
type LeaderboardNotifier interface {
	Publish(hackathonID uint)
}

type noopNotifier struct{}

func (noopNotifier) Publish(uint) {}

func notifierOrNoop(n LeaderboardNotifier) LeaderboardNotifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}

package event

import (
	"github.com/rs/zerolog"

	"github.com/cnaize/bouncer/src/core/metrics"
)

var _ Sender = Match{}

type Match struct {
	Message

	Candidate string
	Reason    string
}

func NewMatch(lvl zerolog.Level, msg, candidate, reason string) Match {
	return Match{
		Message:   NewMessage(lvl, msg),
		Candidate: candidate,
		Reason:    reason,
	}
}

func (e Match) Send(logger *zerolog.Logger) {
	// handle metrics
	defer func() {
		metrics.Get().CandidatesMatchedTotal.WithLabelValues(e.Reason).Inc()
		metrics.Get().CandidatesCheckedTotal.Inc()
	}()

	logger.
		WithLevel(e.Lvl).
		Str("candidate", e.Candidate).
		Str("action", string(ActionTypeMatch)).
		Str("reason", e.Reason).
		Msg(e.Msg)
}

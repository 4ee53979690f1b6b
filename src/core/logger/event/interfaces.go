package event

import (
	"github.com/rs/zerolog"
)

type ActionType string

const (
	ActionTypeMatch ActionType = "match"
	ActionTypePass  ActionType = "pass"
)

type Sender interface {
	Send(logger *zerolog.Logger)
}

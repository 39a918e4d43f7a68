// Package logadapter bridges structured loggers to [client.RequestLogger].
package logadapter

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/zap"

	client "github.com/peteraglen/ticketdesk-go-client"
)

var (
	_ client.RequestLogger = (*Zerolog)(nil)
	_ client.RequestLogger = (*Zap)(nil)
)

// Zerolog writes client messages to a zerolog logger.
type Zerolog struct {
	logger zerolog.Logger
}

func NewZerolog(logger zerolog.Logger) *Zerolog {
	return &Zerolog{logger: logger.With().Str("component", "ticket-client").Logger()}
}

func (z *Zerolog) Errorf(format string, v ...any) {
	z.logger.Error().Msg(message(format, v))
}

func (z *Zerolog) Warnf(format string, v ...any) {
	z.logger.Warn().Msg(message(format, v))
}

func (z *Zerolog) Debugf(format string, v ...any) {
	z.logger.Debug().Msg(message(format, v))
}

// Zap writes client messages to a zap logger.
type Zap struct {
	logger *zap.SugaredLogger
}

func NewZap(logger *zap.Logger) *Zap {
	return &Zap{logger: logger.Named("ticket-client").Sugar()}
}

func (z *Zap) Errorf(format string, v ...any) {
	z.logger.Error(message(format, v))
}

func (z *Zap) Warnf(format string, v ...any) {
	z.logger.Warn(message(format, v))
}

func (z *Zap) Debugf(format string, v ...any) {
	z.logger.Debug(message(format, v))
}

// resty terminates its own log lines with a newline.
func message(format string, v []any) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}

package log

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// WatermillAdapter routes watermill's internal logs through zap.
type WatermillAdapter struct {
	zap    *zap.Logger
	fields watermill.LogFields
}

func NewWatermillAdapter(l *otelzap.Logger) watermill.LoggerAdapter {
	return &WatermillAdapter{zap: l.Logger}
}

func (a *WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.zap.Error(msg, append(a.zapFields(fields), zap.Error(err))...)
}

func (a *WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	a.zap.Info(msg, a.zapFields(fields)...)
}

func (a *WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	a.zap.Debug(msg, a.zapFields(fields)...)
}

func (a *WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	a.zap.Debug(msg, a.zapFields(fields)...)
}

func (a *WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillAdapter{zap: a.zap, fields: a.fields.Add(fields)}
}

func (a *WatermillAdapter) zapFields(fields watermill.LogFields) []zap.Field {
	all := a.fields.Add(fields)
	out := make([]zap.Field, 0, len(all))
	for k, v := range all {
		out = append(out, zap.Any(k, v))
	}
	return out
}

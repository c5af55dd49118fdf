package feast

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
)

// Trace logs entry, success and failure of inner at debug level. A nil logger
// returns inner unchanged.
func Trace[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](name string, inner Parser[T, I, E, O], log *zap.Logger) Parser[T, I, E, O] {
	if log == nil {
		return inner
	}
	log = log.With(zap.String("parser", name))
	return func(p pass.Pass[T, I, E]) (O, pass.Pass[T, I, E], error) {
		if ce := log.Check(zapcore.DebugLevel, "enter"); ce != nil {
			ce.Write(zap.Int("pos", p.Mark().Pos()))
		}
		o, next, err := inner(p)
		if err != nil {
			if ce := log.Check(zapcore.DebugLevel, "fail"); ce != nil {
				ce.Write(zap.Int("pos", next.Mark().Pos()), zap.Bool("fatal", pass.IsFatal(err)), zap.Error(err))
			}
			return o, next, err
		}
		if ce := log.Check(zapcore.DebugLevel, "ok"); ce != nil {
			ce.Write(zap.Int("from", p.Mark().Pos()), zap.Int("to", next.Mark().Pos()))
		}
		return o, next, nil
	}
}

package feast

import (
	"go.uber.org/zap"

	"github.com/reoring/feast/i18n"
	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
)

// Parse is the primary entry point. It starts a pass over in, runs p and
// converts a failure into Issues. The returned pass is positioned after the
// parsed value, or at the failure.
func Parse[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](p Parser[T, I, E, O], in I, opts ...ParseOpt) (O, pass.Pass[T, I, E], error) {
	opt := normalizeOpt(opts)
	log := opt.logger().With(zap.String("parser", opt.Name))

	start := pass.New[T, I, E](in)
	log.Debug("parse started", zap.Int("len", in.Len()))

	v, next, err := p(start)
	if err != nil {
		it := IssueOf[T](err, next.Mark())
		log.Debug("parse failed", zap.String("code", it.Code), zap.Int64("offset", it.Offset), zap.Error(err))
		var zero O
		return zero, next, singleIssue(it)
	}

	if opt.RequireEOF {
		if _, _, err := Eof[T, I, E]()(next); err != nil {
			it := IssueOf[T](err, next.Mark())
			it.Code = CodeTrailingInput
			it.Message = trailingMessage(it)
			log.Debug("parse left input", zap.Int("remaining", next.Input().Len()))
			var zero O
			return zero, next, singleIssue(it)
		}
	}

	log.Debug("parse finished", zap.Int("pos", next.Mark().Pos()))
	return v, next, nil
}

func trailingMessage(it Issue) string {
	return i18n.T(CodeTrailingInput, map[string]string{"found": it.Found})
}

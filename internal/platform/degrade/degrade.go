package degrade

import (
	"fmt"

	"go.uber.org/zap"

	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/logging"
	"incubator/internal/platform/metrics"
)

// Policy applies the one error rule shared by every usecase: fatal errors
// propagate, everything else becomes an empty result plus a warning.
type Policy struct {
	log     *zap.Logger
	metrics *metrics.Recorder
}

func New(log *zap.Logger, m *metrics.Recorder) Policy {
	return Policy{log: logging.OrNop(log), metrics: m}
}

// Handle returns err unchanged when it is fatal. A recoverable err is logged,
// counted under op and turned into a user-facing warning.
func (p Policy) Handle(op string, err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if apperrors.IsFatal(err) {
		return "", err
	}
	if p.log != nil {
		p.log.Warn("degraded to empty result", zap.String("operation", op), zap.Error(err))
	}
	p.metrics.Degraded(op)
	return fmt.Sprintf("could not %s: %v", op, err), nil
}

package notifier

import (
	"context"
	"errors"

	"storefront/internal/core/application/notices"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/logger"

	"go.uber.org/zap"
)

// LogNotifier writes notices to the request logger, or to base when the
// context carries none.
type LogNotifier struct {
	base *zap.Logger
}

func NewLogNotifier(base *zap.Logger) *LogNotifier {
	return &LogNotifier{base: base}
}

func (n *LogNotifier) Notify(ctx context.Context, notice notices.Notice) error {
	log, ok := logger.Lookup(ctx)
	if !ok {
		log = n.base
	}
	log.Info("notice",
		zap.String("kind", string(notice.Kind)),
		zap.String("title", notice.Title),
		zap.String("description", notice.Description),
		zap.String("subject", notice.Subject),
	)
	return nil
}

// Fanout delivers every notice to all notifiers and joins their errors.
type Fanout []ports.Notifier

func (f Fanout) Notify(ctx context.Context, notice notices.Notice) error {
	var errList []error
	for _, n := range f {
		if err := n.Notify(ctx, notice); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

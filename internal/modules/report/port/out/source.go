package out

import (
	"context"

	"timecli/internal/modules/report/domain"
)

// ActivitySource feeds the aggregation engine. Both the interval ledger and
// the slot grid implement it, selected by configuration.
type ActivitySource interface {
	Entries(ctx context.Context) ([]domain.Entry, error)
}

package ports

import (
	"context"

	"attrition/domain/chart"
)

// ChartRendererPort draws charts in the order they are produced
type ChartRendererPort interface {
	Render(ctx context.Context, c chart.Chart) error
}

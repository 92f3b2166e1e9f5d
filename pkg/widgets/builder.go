package widgets

import "github.com/go-drift/driftstore/pkg/core"

// Builder delegates its build to Fn.
type Builder struct {
	core.StatelessBase
	Fn func(ctx core.BuildContext) core.Widget
}

func (b Builder) Build(ctx core.BuildContext) core.Widget {
	if b.Fn == nil {
		return nil
	}
	return b.Fn(ctx)
}

package admin

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// settle schedules fn in the group and writes its result to dst, substituting
// def when fn fails. The group never sees the error, so one failing slice
// cannot sink the whole aggregate. Each call must target a distinct dst.
func settle[T any](g *errgroup.Group, ctx context.Context, log zerolog.Logger, slice string, dst *T, def T, fn func(context.Context) (T, error)) {
	g.Go(func() error {
		v, err := fn(ctx)
		if err != nil {
			log.Warn().Err(err).Str("slice", slice).Msg("dashboard slice failed, using defaults")
			*dst = def
			return nil
		}
		*dst = v
		return nil
	})
}

package sema

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/flume-lang/flume/frontend/ast"
)

// ResolveProgram resolves every call site in the program. Both stores
// must be fully populated and are only read, so resolutions run
// concurrently; results are in program order. The first failure aborts
// the whole resolution, as classifier failures are compiler defects.
func ResolveProgram(ctx context.Context, prog *ast.Program, decls DeclarationLookup, types TypeStore) ([]ResolvedCall, error) {
	calls := prog.CallSites()
	out := make([]ResolvedCall, len(calls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rc, err := ResolveCall(call, decls, types)
			if err != nil {
				return err
			}
			out[i] = rc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

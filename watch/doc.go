// Package watch re-delivers a file's contents whenever it changes.
//
// It backs the CLI's run --watch mode:
//
//	err := watch.File(ctx, "prompt.md", func(ctx context.Context, content string) error {
//	    pages, err := p.Process(ctx, content)
//	    ...
//	})
package watch

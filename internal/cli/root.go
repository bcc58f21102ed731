package cli

import "context"

// Root runs the REPL over the app's input.
func (a *App) Root(ctx context.Context) {
	printlnFn("Journal (type 'help' for commands)")
	runREPL(ctx, a, newLineScanner(a.in))
}

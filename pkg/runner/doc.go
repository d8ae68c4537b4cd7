/*
Package runner implements the read-execute-render loop that drives a console from a
terminal or a structured stream.

Each iteration reads one line through an IOHandler, sanitizes it, executes it on the
console and hands the spans it produced to the handler as a Frame. A clear is reported
through Frame.Cleared so the handler can wipe its display.

# Key Components

  - Runner: the loop, with signal handling and an optional command Interceptor.
  - TextHandler: interactive terminal IO with ANSI colors when the output is a TTY.
  - JSONHandler: NDJSON IO for tools driving the console from another process.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithInterceptor(runner.ConfirmationMiddleware(handler, "reset")),
	)

	if err := r.Run(ctx, console); err != nil {
		log.Fatal(err)
	}
*/
package runner

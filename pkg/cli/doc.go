/*
Package cli provides command-line utilities for the certguard command.

It includes output formatters (text, JSON), human-readable renderers for
validation results and run summaries, typed command errors, and signal
handling for graceful shutdown.

Output formatting:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signal handling:

	ctx, stop := cli.SignalContext()
	defer stop()
	// ctx is cancelled on SIGINT/SIGTERM
*/
package cli

package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/config"
	"github.com/brettbedarf/ysh/filesystem"
	"github.com/brettbedarf/ysh/internal/util"
	"github.com/brettbedarf/ysh/shell"
)

// eofMarker is echoed when input ends so a transcript shows where it stopped
const eofMarker = "^D"

// maxLineLen bounds a single input line
const maxLineLen = 1 << 20

// Ysh wraps a shell with the read-eval-print loop that drives it from a
// stream of lines.
type Ysh struct {
	*shell.Shell
	cfg       *config.Config
	readLines func(ctx context.Context, in io.Reader) (<-chan string, <-chan error)
}

// New creates a Ysh instance over tree given your config. Command output and
// the prompt go to out, error reports to errOut.
func New(cfg *config.Config, tree *filesystem.Tree, out, errOut io.Writer) *Ysh {
	return &Ysh{
		shell.New(tree, cfg.Prompt, out, errOut),
		cfg,
		readLines,
	}
}

// Serve reads commands from in until `exit`, end of input or ctx is done,
// then writes the exit message and returns the exit status.
func (y *Ysh) Serve(ctx context.Context, in io.Reader) int {
	logger := util.GetLogger("Ysh").With().Str("session", y.ID.String()).Logger()

	interactive := IsTerminal(in)
	echo := ShouldEcho(y.cfg.Echo, interactive)
	showPrompt := interactive || echo
	logger.Info().Bool("interactive", interactive).Bool("echo", echo).Msg("Session started")

	// Cancelled on return so readLines stops once exit ends the session early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, scanErr := y.readLines(ctx, in)
	for {
		if showPrompt {
			fmt.Fprint(y.Out, y.Prompt)
		}

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			logger.Info().Err(ctx.Err()).Msg("Session interrupted")
			fmt.Fprintln(y.Out)
			return y.finish()
		case line, ok = <-lines:
		}

		if !ok {
			if err := <-scanErr; err != nil {
				logger.Error().Err(err).Msg("Failed to read input")
			}
			if showPrompt {
				if echo {
					fmt.Fprint(y.Out, eofMarker)
				}
				fmt.Fprintln(y.Out)
			}
			return y.finish()
		}

		if echo {
			fmt.Fprintln(y.Out, line)
		}
		if err := y.Execute(line); err != nil {
			if req, ok := ysh.IsExit(err); ok {
				y.ExitStatus = req.Status
				return y.finish()
			}
			logger.Error().Err(err).Msg("Unexpected error from dispatcher")
		}
	}
}

// ServeAsync runs Serve in a goroutine and delivers the exit status.
func (y *Ysh) ServeAsync(ctx context.Context, in io.Reader) <-chan int {
	done := make(chan int, 1)

	go func() {
		done <- y.Serve(ctx, in)
		close(done)
	}()

	return done
}

func (y *Ysh) finish() int {
	fmt.Fprintf(y.Out, "%s: exit(%d)\n", y.cfg.ProgramName, y.ExitStatus)
	util.GetLogger("Ysh").Info().Str("session", y.ID.String()).Int("status", y.ExitStatus).Msg("Session ended")
	return y.ExitStatus
}

// readLines scans in on its own goroutine so Serve can stop on ctx. The line
// channel is closed when the goroutine returns, at end of input or on ctx,
// after the scan error (nil on a clean EOF or cancel) has been queued.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// IsTerminal reports whether r is a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ShouldEcho resolves an echo mode: auto echoes only non-interactive input.
func ShouldEcho(mode config.EchoMode, interactive bool) bool {
	switch mode {
	case config.EchoAlways:
		return true
	case config.EchoNever:
		return false
	default:
		return !interactive
	}
}

// Package shell runs the interactive command loop on top of the address
// book. Commands are dispatched through a name-to-handler table and every
// handler runs behind a single error-wrapping adapter that turns validation
// and lookup failures into printed messages, keeping the loop alive.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/schedule"
)

// handler processes one parsed command. The returned string is printed to
// the user; a returned error is converted to its message by the wrapper.
type handler func(ctx context.Context, args []string) (string, error)

// Shell owns the command loop state. The address book is passed in by the
// caller and shared with nothing else; there is no implicit singleton.
type Shell struct {
	book    *book.AddressBook
	clock   schedule.Clock
	fetcher engine.VCardFetcher

	in  io.Reader
	out io.Writer

	// onMutate, when set, runs after every successful mutating command.
	// The serve mode uses it to republish the birthday calendar.
	onMutate func()

	localizer *i18n.Localizer
	handlers  map[string]handler
}

// Options configures a Shell.
type Options struct {
	Book     *book.AddressBook
	Clock    schedule.Clock
	Fetcher  engine.VCardFetcher
	In       io.Reader
	Out      io.Writer
	Lang     string
	OnMutate func()
}

// New wires a shell around the given book.
func New(opts Options) *Shell {
	s := &Shell{
		book:     opts.Book,
		clock:    opts.Clock,
		fetcher:  opts.Fetcher,
		in:       opts.In,
		out:      opts.Out,
		onMutate: opts.OnMutate,
	}
	if s.clock == nil {
		s.clock = schedule.RealClock{}
	}
	s.setupI18n(opts.Lang)
	s.registerHandlers()
	return s
}

// registerHandlers builds the dispatch table. Mutating handlers are
// additionally wrapped to trigger the onMutate hook.
func (s *Shell) registerHandlers() {
	s.handlers = map[string]handler{
		config.CmdAdd:          s.mutating(s.handleAdd),
		config.CmdChange:       s.mutating(s.handleChange),
		config.CmdPhone:        s.handlePhone,
		config.CmdAll:          s.handleAll,
		config.CmdAddBirthday:  s.mutating(s.handleAddBirthday),
		config.CmdShowBirthday: s.handleShowBirthday,
		config.CmdBirthdays:    s.handleBirthdays,
		config.CmdDelete:       s.mutating(s.handleDelete),
		config.CmdExport:       s.handleExport,
		config.CmdImport:       s.mutating(s.handleImport),
		config.CmdCalendar:     s.handleCalendar,
	}
}

// Run executes the interactive loop until close/exit, EOF or context
// cancellation.
func (s *Shell) Run(ctx context.Context) error {
	slog.Info(config.MsgShellStart, config.LogKeyComponent, config.CompShell)
	defer slog.Info(config.MsgShellStop, config.LogKeyComponent, config.CompShell)

	s.println(s.getMsg(config.TKeyWelcome))

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompShell)
			return nil
		}

		s.print(s.getMsg(config.TKeyPrompt))
		if !scanner.Scan() {
			// EOF behaves like exit so piped sessions terminate cleanly.
			s.println(s.getMsg(config.TKeyGoodbye))
			return scanner.Err()
		}

		command, args := ParseInput(scanner.Text())
		if command == "" {
			s.println(s.getMsg(config.TKeyEmptyInput))
			continue
		}

		if command == config.CmdClose || command == config.CmdExit {
			s.println(s.getMsg(config.TKeyGoodbye))
			return nil
		}
		if command == config.CmdHello {
			s.println(s.getMsg(config.TKeyGreeting))
			continue
		}

		h, ok := s.handlers[command]
		if !ok {
			s.println(s.getMsg(config.TKeyInvalidCmd))
			continue
		}
		s.println(s.dispatch(ctx, command, h, args))
	}
}

// ParseInput splits a raw line into a lowercase command and its arguments.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// dispatch is the single error-wrapping adapter around every handler:
// any returned error becomes its displayable message, never a crash.
func (s *Shell) dispatch(ctx context.Context, command string, h handler, args []string) string {
	out, err := h(ctx, args)
	if err != nil {
		var vErr *book.ValidationError
		var nfErr *book.NotFoundError
		if errors.As(err, &vErr) || errors.As(err, &nfErr) {
			slog.Debug(config.MsgCmdHandled,
				config.LogKeyComponent, config.CompShell,
				config.LogKeyCommand, command,
				config.LogKeyError, err,
			)
		} else {
			slog.Warn(config.MsgCmdHandled,
				config.LogKeyComponent, config.CompShell,
				config.LogKeyCommand, command,
				config.LogKeyError, err,
			)
		}
		return err.Error()
	}
	return out
}

// mutating wraps a handler so the onMutate hook fires after success.
func (s *Shell) mutating(h handler) handler {
	return func(ctx context.Context, args []string) (string, error) {
		out, err := h(ctx, args)
		if err == nil && s.onMutate != nil {
			s.onMutate()
		}
		return out, err
	}
}

func (s *Shell) print(msg string) {
	fmt.Fprint(s.out, msg)
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

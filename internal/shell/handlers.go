package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// Argument-count checks mirror the legacy contract: "add" demands name and
// phone even though the book itself accepts a phoneless contact.

func (s *Shell) handleAdd(_ context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", errors.New(config.ErrArgsAddContact)
	}
	return s.book.AddContact(args[0], args[1])
}

func (s *Shell) handleChange(_ context.Context, args []string) (string, error) {
	if len(args) != 3 {
		return "", errors.New(config.ErrArgsChange)
	}
	return s.book.ChangeContact(args[0], args[1], args[2])
}

func (s *Shell) handlePhone(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New(config.ErrArgsName)
	}
	return s.book.ShowPhone(args[0])
}

func (s *Shell) handleAll(_ context.Context, _ []string) (string, error) {
	return s.book.ShowAll(), nil
}

func (s *Shell) handleAddBirthday(_ context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", errors.New(config.ErrArgsNameBirthday)
	}
	return s.book.AddBirthday(args[0], args[1])
}

func (s *Shell) handleShowBirthday(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New(config.ErrArgsName)
	}
	return s.book.ShowBirthday(args[0])
}

func (s *Shell) handleBirthdays(_ context.Context, _ []string) (string, error) {
	return s.book.UpcomingReport(s.clock.Now()), nil
}

func (s *Shell) handleDelete(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New(config.ErrArgsName)
	}
	name := args[0]
	if err := s.book.Delete(name); err != nil {
		return "", err
	}
	return s.getMsgData(config.TKeyDeleted, map[string]any{"Name": name}), nil
}

func (s *Shell) handleExport(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New(config.ErrArgsPath)
	}
	path := args[0]

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermShared)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrWriteFile, err)
	}
	defer func() { _ = f.Close() }()

	count, err := engine.ExportVCard(f, s.book)
	if err != nil {
		return "", err
	}
	return s.getMsgData(config.TKeyExported, map[string]any{"Count": count, "Path": path}), nil
}

// handleImport merges contacts from a local .vcf file or an http(s) URL.
// Optional trailing arguments supply basic-auth credentials for remote
// feeds; they are used for this request only and never stored.
func (s *Shell) handleImport(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 || len(args) > 3 {
		return "", errors.New(config.ErrArgsSource)
	}
	source := args[0]

	var user, pass string
	if len(args) > 1 {
		user = args[1]
	}
	if len(args) > 2 {
		pass = args[2]
	}

	reader, err := s.openSource(ctx, source, user, pass)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrOpenSource, err)
	}
	defer func() { _ = reader.Close() }()

	count, err := engine.ImportVCard(reader, s.book)
	if err != nil {
		return "", err
	}
	return s.getMsgData(config.TKeyImported, map[string]any{"Count": count}), nil
}

func (s *Shell) openSource(ctx context.Context, source, user, pass string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, config.SchemeHTTP+"://") || strings.HasPrefix(source, config.SchemeHTTPS+"://") {
		if s.fetcher == nil {
			return nil, errors.New(config.ErrProtocol)
		}
		return s.fetcher.Fetch(ctx, source, user, pass)
	}
	return os.Open(source)
}

func (s *Shell) handleCalendar(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New(config.ErrArgsPath)
	}
	path := args[0]

	data, err := engine.BuildCalendar(s.book, s.clock.Now())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, config.FilePermShared); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrWriteFile, err)
	}
	return s.getMsgData(config.TKeyCalWritten, map[string]any{"Path": path}), nil
}

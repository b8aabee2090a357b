package algoconf

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/meshlens/filewatch"
)

// Reload parses path and replaces the registry held by s.
// On error s is left untouched.
func Reload(path string, s *Store) error {
	f, err := LoadFile(path)
	if err != nil {
		return err
	}
	reg, err := f.Registry()
	if err != nil {
		return err
	}
	s.Replace(reg)

	return nil
}

// Watch reloads s whenever path changes, until ctx is done. A file that fails
// to parse or validate is logged and the previous registry stays active.
// onReload, when non-nil, runs after every successful swap.
func Watch(ctx context.Context, path string, s *Store, logger *slog.Logger, onReload func(*Registry)) error {
	if logger == nil {
		logger = slog.Default()
	}

	return filewatch.Watch(ctx, []string{path}, filewatch.Options{Logger: logger}, func([]string) {
		if err := Reload(path, s); err != nil {
			logger.Warn("config reload rejected", slog.String("path", path), slog.Any("err", err))
			return
		}
		logger.Info("config reloaded", slog.String("path", path), slog.Int("mask", int(s.Mask())))
		if onReload != nil {
			onReload(s.Snapshot())
		}
	})
}

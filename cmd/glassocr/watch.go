// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/glassocr/canvas"
)

// watchSettle is how long to wait after the last change before re-reading
// the file, so a burst of writes from an editor triggers one inference.
const watchSettle = 100 * time.Millisecond

func (s *session) watchAction(c *cli.Context) error {
	p, err := s.buildPipeline(c)
	if err != nil {
		return err
	}
	path, invert := c.String(flagImage), c.Bool(flagInvert)
	side := p.Config().InputSide

	run := func(ctx context.Context) error {
		img, err := canvas.Load(path, side, invert)
		if err != nil {
			// a half-written file is expected mid-save; wait for the next event
			s.logger.Warn("cannot read image", zap.String("path", path), zap.Error(err))

			return nil
		}
		res, err := p.Infer(ctx, img)
		if err != nil {
			return errors.Wrap(err, "inference")
		}
		s.printf("%s\n", renderResult(res))

		return nil
	}

	return watchFile(c.Context, path, s.logger, run)
}

// watchFile calls run once, then again after every settled change to path,
// until ctx is done. The parent directory is watched so atomic
// rename-on-save still triggers.
func watchFile(ctx context.Context, path string, logger *zap.Logger, run func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "watch")
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "watch")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	if err := run(ctx); err != nil {
		return err
	}
	logger.Info("watching", zap.String("path", abs))

	timer := time.NewTimer(watchSettle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug("image changed", zap.Stringer("op", ev.Op))
			timer.Reset(watchSettle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-timer.C:
			if err := run(ctx); err != nil {
				return err
			}
		}
	}
}

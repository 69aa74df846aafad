package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"quizbank/internal/catalog"
	"quizbank/internal/question"
)

// DefaultLockTimeout bounds how long LoadQuestions waits for another writer.
const DefaultLockTimeout = 5 * time.Second

// Options configures a single seeding run.
type Options struct {
	// Path is the catalog file to extend.
	Path string
	// Batch is appended after the existing records.
	Batch []question.Record
	// LockTimeout defaults to DefaultLockTimeout when zero.
	LockTimeout time.Duration
	Logger      *zap.Logger
}

// Result summarizes a completed run.
type Result struct {
	Path     string
	Existing int
	Added    int
	Total    int
}

// LoadQuestions appends opts.Batch to the catalog at opts.Path. It reads the
// catalog once, writes it once, and holds the catalog lock in between.
func LoadQuestions(ctx context.Context, opts Options) (result Result, err error) {
	if opts.Path == "" {
		return Result{}, fmt.Errorf("catalog path is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("catalog", opts.Path))

	if err := question.Validate(opts.Batch); err != nil {
		return Result{}, fmt.Errorf("invalid batch: %w", err)
	}

	timeout := opts.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	unlock, err := catalog.Lock(lockCtx, opts.Path)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if unlockErr := unlock(); unlockErr != nil {
			logger.Warn("release catalog lock", zap.Error(unlockErr))
			err = errors.Join(err, unlockErr)
		}
	}()

	existing, err := catalog.Load(opts.Path)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("catalog loaded", zap.Int("records", len(existing)))

	merged := catalog.Merge(existing, opts.Batch)
	if err := catalog.Save(opts.Path, merged); err != nil {
		return Result{}, err
	}
	logger.Info("catalog seeded",
		zap.Int("existing", len(existing)),
		zap.Int("added", len(opts.Batch)),
		zap.Int("total", len(merged)),
	)
	return Result{
		Path:     opts.Path,
		Existing: len(existing),
		Added:    len(opts.Batch),
		Total:    len(merged),
	}, nil
}

package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"storefront/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task периодическая задача: синхронизация трекинга, обновление часов работы.
type Task interface {
	// TTL интервал между запусками. TTL <= 0 означает только прогрев.
	TTL() time.Duration
	Do(context.Context) error
	// Info имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи параллельно и запускает их по тикеру до отмены ctx.
// Ошибка или паника на прогреве возвращается вызывающему, Worker не создаётся:
// сервис без загруженного расписания не должен стартовать.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() error {
			log.Info("warming up task", logger.NewField("task", task.Info()))
			if err := worker.safeDo(warmupCtx, task); err != nil {
				return fmt.Errorf("%s: %w", task.Info(), err)
			}
			return nil
		})
	}
	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		ttl := task.TTL()
		if ttl <= 0 {
			log.Warn("task has no TTL, periodic runs disabled",
				logger.NewField("task", task.Info()),
				logger.NewField("ttl", ttl),
			)
			continue
		}

		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.loop(ctx, task, ttl)
		}()
	}

	return worker, nil
}

// Wait блокируется, пока все периодические задачи не остановятся (после отмены ctx из New).
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task, ttl time.Duration) {
	w.log.Info("task scheduled",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("task stopped", logger.NewField("task", task.Info()))
			return
		case <-ticker.C:
			if err := w.safeDo(ctx, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

// safeDo превращает панику задачи в ошибку.
func (w *Worker) safeDo(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return task.Do(ctx)
}

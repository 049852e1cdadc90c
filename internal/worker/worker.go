package worker

import (
	"context"
)

// Worker - фоновая задача клиента (обновление кеша, прогрев tier-листа)
type Worker interface {
	// Start блокирует до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop останавливает воркер
	Stop() error

	// Name возвращает имя воркера
	Name() string
}

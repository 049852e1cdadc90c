package store

import (
	"sync"
)

// Container хранит последний загруженный снимок значения и уведомляет подписчиков
// о каждой замене. Побеждает последняя запись: конкурирующие загрузки не упорядочиваются,
// но последнее уведомление подписчика всегда совпадает с тем, что вернет Get.
// Подписчик не должен вызывать Set или Subscribe того же контейнера из обработчика.
type Container[T any] struct {
	// notifyMu сериализует запись вместе с рассылкой
	notifyMu    sync.Mutex
	mu          sync.RWMutex
	value       T
	set         bool
	nextID      int
	subscribers map[int]func(T)
}

// NewContainer создает пустой контейнер; до первой записи Get возвращает ok=false
func NewContainer[T any]() *Container[T] {
	return &Container[T]{
		subscribers: make(map[int]func(T)),
	}
}

// Get возвращает текущий снимок
func (c *Container[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.set
}

// Set целиком заменяет снимок и уведомляет подписчиков.
// Обработчики одного контейнера не выполняются параллельно.
func (c *Container[T]) Set(value T) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	c.value = value
	c.set = true
	subs := make([]func(T), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// Reset возвращает контейнер в состояние "не загружено" без уведомления
func (c *Container[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.value = zero
	c.set = false
}

// Subscribe регистрирует обработчик. Если значение уже загружено, обработчик
// сразу вызывается с ним. Возвращает функцию отписки.
func (c *Container[T]) Subscribe(fn func(T)) func() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	value, set := c.value, c.set
	c.mu.Unlock()

	if set {
		fn(value)
	}

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, id)
	}
}

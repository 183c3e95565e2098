// Package keylock реализует внутрипроцессные блокировки по строковому ключу.
// Леджер берет такую блокировку на каждый затронутый счет: мутации одного счета
// сериализуются, операции по непересекающимся счетам идут параллельно.
package keylock

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrLockTimeout возвращается когда блокировку не удалось взять за отведенное время.
// Операция при этом гарантированно не начала выполняться, повтор безопасен.
var ErrLockTimeout = errors.New("[keylock] lock acquisition timed out")

const DefaultWaitTimeout = 3 * time.Second

// Locker хранит по одному семафору емкостью 1 на каждый ключ. Семафоры создаются лениво
// и живут до конца процесса: счетов на гильдию конечное число, утечка не накапливается.
type Locker struct {
	mu          sync.Mutex
	sems        map[string]*semaphore.Weighted
	waitTimeout time.Duration
}

func New(waitTimeout time.Duration) *Locker {
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}
	return &Locker{
		sems:        make(map[string]*semaphore.Weighted),
		waitTimeout: waitTimeout,
	}
}

func (l *Locker) sem(key string) *semaphore.Weighted {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sems[key]
	if !ok {
		s = semaphore.NewWeighted(1)
		l.sems[key] = s
	}
	return s
}

// Lock берет блокировки на все переданные ключи и возвращает функцию освобождения.
// Ключи сортируются и дедуплицируются, поэтому два конкурирующих вызова с одинаковой
// парой счетов в любом порядке не могут привести к deadlock'у. При неудаче уже взятые
// блокировки освобождаются и возвращается ErrLockTimeout либо ошибка контекста.
func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	sorted := normalize(keys)

	waitCtx, cancel := context.WithTimeout(ctx, l.waitTimeout)
	defer cancel()

	acquired := make([]*semaphore.Weighted, 0, len(sorted))
	release := func() {
		// отпускаем в обратном порядке взятия
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Release(1)
		}
	}

	for _, key := range sorted {
		s := l.sem(key)
		if err := s.Acquire(waitCtx, 1); err != nil {
			release()
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				return nil, ErrLockTimeout
			}
			return nil, err //nolint:wrapcheck
		}
		acquired = append(acquired, s)
	}
	return release, nil
}

// normalize сортирует ключи лексикографически и убирает дубликаты.
func normalize(keys []string) []string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	uniq := sorted[:0]
	for i, key := range sorted {
		if i == 0 || key != sorted[i-1] {
			uniq = append(uniq, key)
		}
	}
	return uniq
}

// internal/event/event.go
package event

import "github.com/google/uuid"

// Handle — непрозрачный идентификатор подписки, нужен для отписки
type Handle struct {
	id uuid.UUID
}

// IsZero сообщает, что хэндл не был выдан ни одним сигналом
func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}

func (h Handle) String() string {
	return h.id.String()
}

type subscription[T any] struct {
	handle Handle
	fn     func(T)
}

// Signal — типизированный сигнал с упорядоченным списком подписчиков.
// Не безопасен для конкурентного использования: всё вызывается из игрового цикла.
type Signal[T any] struct {
	Type EventType
	subs []subscription[T]
}

// NewSignal создаёт сигнал с заданным именем
func NewSignal[T any](eventType EventType) *Signal[T] {
	return &Signal[T]{Type: eventType}
}

// Subscribe добавляет подписчика. Повторная подписка той же функции
// даёт новый хэндл и повторную доставку.
func (s *Signal[T]) Subscribe(fn func(T)) Handle {
	if fn == nil {
		return Handle{}
	}
	h := Handle{id: uuid.New()}
	s.subs = append(s.subs, subscription[T]{handle: h, fn: fn})
	return h
}

// Unsubscribe снимает подписку по хэндлу. Возвращает false, если хэндл неизвестен.
func (s *Signal[T]) Unsubscribe(h Handle) bool {
	if h.IsZero() {
		return false
	}
	for i, sub := range s.subs {
		if sub.handle == h {
			// новый срез, чтобы не портить снимок, по которому идёт Notify
			subs := make([]subscription[T], 0, len(s.subs)-1)
			subs = append(subs, s.subs[:i]...)
			s.subs = append(subs, s.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Notify синхронно вызывает подписчиков в порядке подписки.
// Подписчики, добавленные во время доставки, получат только следующие уведомления.
func (s *Signal[T]) Notify(value T) {
	subs := s.subs
	for _, sub := range subs {
		sub.fn(value)
	}
}

// Len возвращает количество активных подписок
func (s *Signal[T]) Len() int {
	return len(s.subs)
}

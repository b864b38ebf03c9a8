// Package observable contiene un sujeto que guarda el último valor publicado y lo
// reenvía a cada suscriptor nuevo.
package observable

import "sync"

// Subject guarda el valor más reciente y lo difunde a los suscriptores.
// Cada suscriptor tiene un canal con buffer 1: si no ha leído el valor anterior,
// éste se descarta y sólo queda el más reciente.
type Subject[T any] struct {
	mu    sync.Mutex
	value T
	next  int
	subs  map[int]chan T
}

// NewSubject crea el sujeto con un valor inicial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial, subs: make(map[int]chan T)}
}

// Value devuelve el último valor publicado.
func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Next reemplaza el valor y notifica a todos los suscriptores.
func (s *Subject[T]) Next(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	for _, ch := range s.subs {
		offer(ch, v)
	}
}

// Update aplica fn sobre el valor actual bajo el mismo lock y publica el resultado
// si fn devuelve true.
func (s *Subject[T]) Update(fn func(current T) (T, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := fn(s.value)
	if !ok {
		return false
	}
	s.value = v
	for _, ch := range s.subs {
		offer(ch, v)
	}
	return true
}

// Subscribe devuelve un canal que recibe primero el valor actual y luego cada publicación.
// La función devuelta cancela la suscripción y cierra el canal; es idempotente.
func (s *Subject[T]) Subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	ch := make(chan T, 1)
	ch <- s.value
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// Subscribers número de suscripciones activas.
func (s *Subject[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// offer entrega v sin bloquear, descartando el valor pendiente si lo hay.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

package observable_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/internal/application/observable"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "el canal no debe estar cerrado")
		return v
	case <-time.After(time.Second):
		t.Fatal("no llegó ningún valor")
	}
	var zero T
	return zero
}

func TestSubject_SubscribeReproduceUltimoValor(t *testing.T) {
	s := observable.NewSubject(1)
	s.Next(2)

	ch, cancel := s.Subscribe()
	defer cancel()

	assert.Equal(t, 2, receive(t, ch), "el suscriptor nuevo recibe el último valor")
}

func TestSubject_SuscriptorLentoSoloVeElMasReciente(t *testing.T) {
	s := observable.NewSubject(0)
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Next(1)
	s.Next(2)
	s.Next(3)

	assert.Equal(t, 3, receive(t, ch))
	select {
	case v := <-ch:
		t.Fatalf("no debe haber valores pendientes, llegó %d", v)
	default:
	}
}

func TestSubject_CancelarCierraCanalYEsIdempotente(t *testing.T) {
	s := observable.NewSubject("a")
	ch, cancel := s.Subscribe()
	require.Equal(t, 1, s.Subscribers())

	cancel()
	cancel()

	assert.Equal(t, 0, s.Subscribers())
	<-ch // valor inicial aún en buffer
	_, ok := <-ch
	assert.False(t, ok, "el canal debe quedar cerrado")

	s.Next("b")
	assert.Equal(t, "b", s.Value())
}

func TestSubject_ResuscribirReproduceDeNuevo(t *testing.T) {
	s := observable.NewSubject(10)
	_, cancel := s.Subscribe()
	cancel()

	ch, cancel2 := s.Subscribe()
	defer cancel2()
	assert.Equal(t, 10, receive(t, ch))
}

func TestSubject_UpdateSinCambiosNoNotifica(t *testing.T) {
	s := observable.NewSubject(5)
	ch, cancel := s.Subscribe()
	defer cancel()
	receive(t, ch)

	changed := s.Update(func(v int) (int, bool) { return v, false })
	assert.False(t, changed)
	select {
	case v := <-ch:
		t.Fatalf("no se esperaba notificación, llegó %d", v)
	default:
	}

	changed = s.Update(func(v int) (int, bool) { return v - 1, true })
	assert.True(t, changed)
	assert.Equal(t, 4, receive(t, ch))
}

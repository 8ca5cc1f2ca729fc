package notify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMultiplexer(t *testing.T) {
	m := NewMultiplexer[int]("test")
	a := make(chan int, 4)
	b := make(chan int, 4)
	m.Subscribe("a", a)
	m.Subscribe("b", b)
	m.Send(1)
	m.Send(2)
	m.Unsubscribe(a)
	m.Send(3)
	if m.Len() != 1 {
		t.Fatalf("%d subscribers", m.Len())
	}
	close(a)
	close(b)
	collect := func(c chan int) []int {
		var res []int
		for v := range c {
			res = append(res, v)
		}
		return res
	}
	if diff := cmp.Diff([]int{1, 2}, collect(a)); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, collect(b)); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
}

func TestMultiplexerTimeout(t *testing.T) {
	m := NewMultiplexer[string]("test")
	stuck := make(chan string)
	ok := make(chan string, 1)
	m.Subscribe("stuck", stuck)
	m.Subscribe("ok", ok)
	m.Send("hello")
	if got := <-ok; got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestUnsubscribeTwice(t *testing.T) {
	m := NewMultiplexer[int]("test")
	c := make(chan int)
	m.Subscribe("c", c)
	m.Unsubscribe(c)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	m.Unsubscribe(c)
}

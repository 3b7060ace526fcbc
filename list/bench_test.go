package list_test

import (
	stdlist "container/list"
	"testing"

	"github.com/sagernet/sing-collections/list"

	"github.com/gammazero/deque"
)

func BenchmarkPushPopBack(b *testing.B) {
	b.Run("list", func(b *testing.B) {
		b.ReportAllocs()
		l := list.New[int]()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
			if l.Len() > 1024 {
				l.PopFront()
			}
		}
	})
	b.Run("container_list", func(b *testing.B) {
		b.ReportAllocs()
		l := stdlist.New()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
			if l.Len() > 1024 {
				l.Remove(l.Front())
			}
		}
	})
	b.Run("ring_deque", func(b *testing.B) {
		b.ReportAllocs()
		d := deque.New[int]()
		for i := 0; i < b.N; i++ {
			d.PushBack(i)
			if d.Len() > 1024 {
				d.PopFront()
			}
		}
	})
}

func BenchmarkPushFront(b *testing.B) {
	b.ReportAllocs()
	l := list.New[int]()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
		if l.Len() > 1024 {
			l.PopBack()
		}
	}
}

func BenchmarkIter(b *testing.B) {
	l := list.New[int]()
	for i := 0; i < 1024; i++ {
		l.PushBack(i)
	}
	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		it := l.Iter()
		for {
			value, ok := it.Next()
			if !ok {
				break
			}
			sink += value
		}
	}
	_ = sink
}

func BenchmarkDrainRefill(b *testing.B) {
	b.ReportAllocs()
	values := make([]int, 128)
	for i := range values {
		values[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := list.Of(values...)
		d := l.Drain()
		for {
			if _, ok := d.Next(); !ok {
				break
			}
		}
	}
}

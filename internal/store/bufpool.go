package store

import (
	"sync"

	"github.com/kestrelgame/entitycore/pkg/genericpool"
)

// bufferPools holds one genericpool.Pool per query type T, created lazily.
// Pool.SnapshotHandles borrows its output slice from here and the caller
// returns it with ReleaseBuffer once the entries have been copied out,
// following the same get/reset/put discipline as any other sync.Pool-backed
// scratch buffer.
var bufferPools sync.Map // map[reflect.Type]*genericpool.Pool[any]

func poolFor[T any]() *genericpool.Pool[any] {
	t := typeOf[T]()
	if p, ok := bufferPools.Load(t); ok {
		return p.(*genericpool.Pool[any])
	}
	created := genericpool.NewPool(func() any {
		return make([]QueryPair[T], 0, 64)
	})
	actual, _ := bufferPools.LoadOrStore(t, created)
	return actual.(*genericpool.Pool[any])
}

func acquireBuffer[T any]() []QueryPair[T] {
	buf := poolFor[T]().Get().([]QueryPair[T])
	return buf[:0]
}

// ReleaseBuffer returns a snapshot buffer obtained from Pool.SnapshotHandles
// back to its pool once the caller is done reading it. Do not use buf after
// calling this.
func ReleaseBuffer[T any](buf []QueryPair[T]) {
	poolFor[T]().Put(any(buf[:0]))
}

package uname

import (
	"sync/atomic"

	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
)

func (b *borrowState) shared(op string) func() {
	if atomic.LoadInt32(&b.writer) != 0 {
		panic(uerr.ErrBorrowConflict{Op: op + " while the table is mutably borrowed"})
	}
	atomic.AddInt32(&b.readers, 1)
	return func() { atomic.AddInt32(&b.readers, -1) }
}

func (b *borrowState) exclusive(op string) func() {
	if !atomic.CompareAndSwapInt32(&b.writer, 0, 1) {
		panic(uerr.ErrBorrowConflict{Op: op + " while the table is already mutably borrowed"})
	}
	if atomic.LoadInt32(&b.readers) != 0 {
		atomic.StoreInt32(&b.writer, 0)
		panic(uerr.ErrBorrowConflict{Op: op + " while the table is borrowed for reading"})
	}
	return func() { atomic.StoreInt32(&b.writer, 0) }
}

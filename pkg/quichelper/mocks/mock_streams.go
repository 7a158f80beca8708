package mocks

import (
	"os"
	"sync/atomic"
	"time"
)

// EchoStream implements quichelper.DeadlineReadWriter for a peer that answers every beat at once.
type EchoStream struct {
	TimesReadCalled  uint32
	TimesWriteCalled uint32
}

func (m *EchoStream) Read([]byte) (n int, err error) {
	atomic.AddUint32(&m.TimesReadCalled, 1)
	return 1, nil
}

func (m *EchoStream) Write([]byte) (n int, err error) {
	atomic.AddUint32(&m.TimesWriteCalled, 1)
	return 1, nil
}

func (m *EchoStream) SetReadDeadline(time.Time) error {
	return nil
}

func (m *EchoStream) SetWriteDeadline(time.Time) error {
	return nil
}

// SilentStream implements quichelper.DeadlineReadWriter for a peer that never answers:
// reads fail as if the read deadline was exceeded.
type SilentStream struct {
	TimesWriteCalled uint32
}

func (m *SilentStream) Read([]byte) (n int, err error) {
	return 0, os.ErrDeadlineExceeded
}

func (m *SilentStream) Write([]byte) (n int, err error) {
	atomic.AddUint32(&m.TimesWriteCalled, 1)
	return 1, nil
}

func (m *SilentStream) SetReadDeadline(time.Time) error {
	return nil
}

func (m *SilentStream) SetWriteDeadline(time.Time) error {
	return nil
}

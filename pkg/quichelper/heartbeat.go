package quichelper

import (
	"context"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"io"
	"time"
)

const beatByte = '1'

// DeadlineReadWriter is the subset of quic.Stream a Heartbeat needs.
type DeadlineReadWriter interface {
	io.ReadWriter
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

type HeartbeatConfig struct {
	Interval time.Duration // Send a beat at this interval
	Timeout  time.Duration // Write and echo deadline per beat, exceeding which the proxy is considered dead
}

func NewDefaultHeartbeatConfig() HeartbeatConfig {
	return HeartbeatConfig{
		Interval: time.Second * 5,
		Timeout:  time.Second * 10,
	}
}

// Heartbeat keeps the session with the proxy alive and detects when the proxy is gone.
type Heartbeat struct {
	config HeartbeatConfig
	logger *zap.Logger
}

// NewHeartbeat is the constructor for Heartbeat.
func NewHeartbeat(config HeartbeatConfig, logger *zap.Logger) *Heartbeat {
	return &Heartbeat{config: config, logger: logger}
}

// Run writes a beat to stream every Interval and waits for the proxy to echo it.
// Returns nil when ctx is done, ErrNetworkTimeout (wrapped) when a beat is not written or echoed within Timeout.
func (h *Heartbeat) Run(ctx context.Context, stream DeadlineReadWriter) error {
	ticker := time.NewTicker(h.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("Stopping heartbeat, context cancelled")
			return nil
		case <-ticker.C:
			if err := h.beat(stream); err != nil {
				return errors.Wrap(err, "beat")
			}
			h.logger.Debug("Heartbeat echoed")
		}
	}
}

func (h *Heartbeat) beat(stream DeadlineReadWriter) error {
	deadline := time.Now().Add(h.config.Timeout)

	if err := stream.SetWriteDeadline(deadline); err != nil {
		return errors.Wrap(err, "SetWriteDeadline")
	}
	if _, err := stream.Write([]byte{beatByte}); err != nil {
		if isTimeout(err) {
			return ErrNetworkTimeout
		}
		return errors.Wrap(err, "stream.Write")
	}

	if err := stream.SetReadDeadline(deadline); err != nil {
		return errors.Wrap(err, "SetReadDeadline")
	}
	if _, err := stream.Read(make([]byte, 1)); err != nil {
		if isTimeout(err) {
			return ErrNetworkTimeout
		}
		return errors.Wrap(err, "stream.Read")
	}

	return nil
}

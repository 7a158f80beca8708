package quichelper

import (
	"context"
	"errors"
	"go.uber.org/zap"
)

// RunHeartbeat waits for the heartbeat stream to become available, runs heartbeat on it
// and calls cancel() once the proxy stops answering. S is a quic.Stream outside of tests.
func RunHeartbeat[S DeadlineReadWriter](
	ctx context.Context,
	heartbeat *Heartbeat,
	streamCh <-chan S,
	cancel func(),
	logger *zap.Logger,
) {
	select {
	case <-ctx.Done():
		return
	case stream := <-streamCh:
		logger.Info("Starting heartbeat")
		if err := heartbeat.Run(ctx, stream); err != nil {
			if errors.Is(err, ErrNetworkTimeout) {
				logger.Info("Proxy did not answer the heartbeat, proxy possibly down, will shut down")
			} else {
				logger.Error("Heartbeat", zap.Error(err))
			}
			cancel()
		}
	}
}

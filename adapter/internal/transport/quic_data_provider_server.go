package transport

import (
	"context"
	"crypto/tls"
	"github.com/chzyer/logex"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/quic-go/quic-go"
	"github.com/varfrog/helloadapter/adapter/internal/app"
	"github.com/varfrog/helloadapter/pkg/quichelper"
	"github.com/varfrog/helloadapter/pkg/sdk"
	"go.uber.org/zap"
	"sync"
)

type QUICDataProviderServerConfig struct {
	AdapterID       uuid.UUID
	TLSConfig       *tls.Config
	ProxyAddress    string // host:port of the proxy
	MaxMessageBytes int
	ConfigFile      string // Adapter config file handed to the provider on init
}

// QUICDataProviderServer is the main process of this service.
// It connects to the proxy, serves the proxy's requests with a DataProvider and forwards the provider's updates.
type QUICDataProviderServer struct {
	config     QUICDataProviderServerConfig
	quicConfig quic.Config
	provider   app.DataProvider
	heartbeat  *quichelper.Heartbeat
	logger     *zap.Logger
}

func NewQUICDataProviderServer(
	config QUICDataProviderServerConfig,
	quicConfig quic.Config,
	provider app.DataProvider,
	heartbeat *quichelper.Heartbeat,
	logger *zap.Logger,
) *QUICDataProviderServer {
	return &QUICDataProviderServer{
		config:     config,
		quicConfig: quicConfig,
		provider:   provider,
		heartbeat:  heartbeat,
		logger:     logger,
	}
}

// Run serves a single session with the proxy. It returns when ctx is done or the session ends,
// after every item subscribed during the session has been unsubscribed.
func (s *QUICDataProviderServer) Run(ctx context.Context) error {
	// Connect to the proxy
	s.logger.Info("Connecting to the proxy", zap.String("address", s.config.ProxyAddress))
	conn, err := quic.DialAddr(ctx, s.config.ProxyAddress, s.config.TLSConfig, &s.quicConfig)
	if err != nil {
		return errors.Wrap(err, "quic.DialAddr")
	}
	s.logger.Info("Connected to the proxy", zap.String("adapter_id", s.config.AdapterID.String()))

	// Create a cancel function for cancelling goroutines created here without cancelling the passed-in ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Create streams asynchronously and pass them onto the channels once they become available.
	// Buffered so that the goroutines never block when the session ends before the streams are used.
	var (
		requestStreamCh      = make(chan quic.ReceiveStream, 1) // For requests from the proxy
		notificationStreamCh = make(chan quic.SendStream, 1)    // For replies and updates to the proxy
		heartbeatStreamCh    = make(chan quic.Stream, 1)
	)
	go func() {
		stream, err := conn.AcceptUniStream(ctx) // Blocking call
		if err != nil {
			s.logger.Error("AcceptUniStream", zap.Error(err))
			cancel()
			return
		}
		s.logger.Info("Request stream ready")
		requestStreamCh <- stream
	}()
	go func() {
		stream, err := conn.OpenUniStreamSync(ctx) // Blocking call
		if err != nil {
			s.logger.Error("OpenUniStreamSync", zap.Error(err))
			cancel()
			return
		}
		s.logger.Info("Notification stream ready")
		notificationStreamCh <- stream
	}()
	go func() {
		stream, err := conn.OpenStreamSync(ctx) // Blocking call
		if err != nil {
			s.logger.Error("OpenStreamSync", zap.Error(err))
			cancel()
			return
		}
		s.logger.Info("Heartbeat stream ready")
		heartbeatStreamCh <- stream
	}()

	// Introduce the adapter and hand the listener to the provider
	dispatcherCh := make(chan *RequestDispatcher, 1)
	go func() {
		var stream quic.SendStream
		select {
		case <-ctx.Done():
			return
		case stream = <-notificationStreamCh:
		}

		sender := NewNotificationSender(stream, s.config.MaxMessageBytes, s.logger.Named("NotificationSender"))
		if err := sender.Send(sdk.Notification{Code: sdk.CodeHello, AdapterID: s.config.AdapterID.String()}); err != nil {
			s.logger.Error("Failure sending hello", zap.Error(err))
			cancel()
			return
		}

		s.provider.SetListener(sender)
		dispatcherCh <- NewRequestDispatcher(
			s.provider,
			sender,
			RequestDispatcherConfig{
				MaxMessageBytes: s.config.MaxMessageBytes,
				ConfigFile:      s.config.ConfigFile,
			},
			s.logger.Named("RequestDispatcher"))
	}()

	// Serve requests once the listener is set and the request stream is available
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel() // The session is over once requests stop

		var dispatcher *RequestDispatcher
		select {
		case <-ctx.Done():
			return
		case dispatcher = <-dispatcherCh:
		}
		defer dispatcher.UnsubscribeAll()

		var stream quic.ReceiveStream
		select {
		case <-ctx.Done():
			return
		case stream = <-requestStreamCh:
		}

		s.logger.Info("Serving requests")
		if err := dispatcher.Serve(ctx, stream); err != nil && ctx.Err() == nil {
			s.logger.Error("Serve", zap.Error(err))
		}
	}()

	// Keep the session alive
	go quichelper.RunHeartbeat[quic.Stream](ctx, s.heartbeat, heartbeatStreamCh, cancel, s.logger.Named("Heartbeat"))

	// Run until we're done
	<-ctx.Done()
	logex.Info("Shutting down")

	// Closing the connection unblocks pending stream reads, then wait for the items to be unsubscribed
	if err := conn.CloseWithError(0, "adapter shutting down"); err != nil {
		s.logger.Warn("CloseWithError", zap.Error(err))
	}
	wg.Wait()

	return nil
}

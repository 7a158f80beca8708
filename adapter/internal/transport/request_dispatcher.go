package transport

import (
	"context"
	"github.com/pkg/errors"
	"github.com/varfrog/helloadapter/adapter/internal/app"
	"github.com/varfrog/helloadapter/pkg/quichelper"
	"github.com/varfrog/helloadapter/pkg/sdk"
	"go.uber.org/zap"
	"io"
	"sync"
)

type RequestDispatcherConfig struct {
	MaxMessageBytes int    // Max bytes per request line
	ConfigFile      string // Passed to Initialize when the init request names no config file
}

// RequestDispatcher turns requests from the proxy into calls on an app.DataProvider and replies to each of them.
type RequestDispatcher struct {
	provider app.DataProvider
	sender   *NotificationSender
	config   RequestDispatcherConfig
	logger   *zap.Logger

	mu         sync.Mutex
	subscribed map[string]struct{} // Items subscribed through this dispatcher
}

// NewRequestDispatcher is the constructor for RequestDispatcher.
func NewRequestDispatcher(
	provider app.DataProvider,
	sender *NotificationSender,
	config RequestDispatcherConfig,
	logger *zap.Logger,
) *RequestDispatcher {
	return &RequestDispatcher{
		provider:   provider,
		sender:     sender,
		config:     config,
		logger:     logger,
		subscribed: map[string]struct{}{},
	}
}

// Serve reads requests off stream, dispatches them and sends the replies, until ctx is done or the stream ends.
// Corrupt requests are skipped.
func (d *RequestDispatcher) Serve(ctx context.Context, stream io.Reader) error {
	reader := quichelper.NewRequestReader(stream, d.config.MaxMessageBytes)

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("Stopping serving requests as context is cancelled")
			return nil
		default:
			request, err := reader.ReadRequest()
			if err != nil {
				var unmarshalErr *quichelper.UnmarshalError
				if errors.As(err, &unmarshalErr) {
					d.logger.Info("Got corrupt request, ignoring", zap.ByteString("request_body", unmarshalErr.Data))
					continue
				} else if errors.Is(err, io.EOF) {
					d.logger.Info("Proxy closed the request stream")
					return nil
				} else if errors.Is(err, quichelper.ErrNetworkTimeout) {
					d.logger.Info("Proxy timeout, stopping serving requests")
					return nil
				}
				return errors.Wrap(err, "ReadRequest")
			}

			d.logger.Debug("Got request from the proxy",
				zap.String("code", request.Code),
				zap.String("id", request.ID),
				zap.String("item", request.Item))

			if err := d.sender.Send(d.Dispatch(request)); err != nil {
				return errors.Wrap(err, "send reply")
			}
		}
	}
}

// Dispatch calls the provider for request and returns the reply to send back.
func (d *RequestDispatcher) Dispatch(request sdk.Request) sdk.Notification {
	reply := sdk.Notification{
		Code:      sdk.CodeReply,
		RequestID: request.ID,
		Item:      request.Item,
	}

	var err error
	switch request.Code {
	case sdk.CodeInit:
		configFile := request.ConfigFile
		if configFile == "" {
			configFile = d.config.ConfigFile
		}
		err = d.provider.Initialize(request.Parameters, configFile)
	case sdk.CodeSubscribe:
		if err = d.subscribe(request.Item); err == nil {
			reply.Snapshot = d.provider.IsSnapshotAvailable(request.Item)
		}
	case sdk.CodeUnsubscribe:
		err = d.unsubscribe(request.Item)
	default:
		err = errors.Errorf("unknown request code '%s'", request.Code)
	}

	if err != nil {
		d.logger.Warn("Request failed", zap.String("code", request.Code), zap.Error(err))
		reply.Error = err.Error()
	}

	return reply
}

// UnsubscribeAll unsubscribes every item still subscribed through this dispatcher.
func (d *RequestDispatcher) UnsubscribeAll() {
	d.mu.Lock()
	itemNames := make([]string, 0, len(d.subscribed))
	for itemName := range d.subscribed {
		itemNames = append(itemNames, itemName)
	}
	d.subscribed = map[string]struct{}{}
	d.mu.Unlock()

	for _, itemName := range itemNames {
		if err := d.provider.Unsubscribe(itemName); err != nil {
			// Don't fail, allow other items to be unsubscribed
			d.logger.Warn("provider.Unsubscribe", zap.String("item", itemName), zap.Error(err))
		}
	}
}

func (d *RequestDispatcher) subscribe(itemName string) error {
	if err := d.provider.Subscribe(itemName); err != nil {
		return errors.Wrap(err, "provider.Subscribe")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribed[itemName] = struct{}{}

	return nil
}

func (d *RequestDispatcher) unsubscribe(itemName string) error {
	d.mu.Lock()
	delete(d.subscribed, itemName)
	d.mu.Unlock()

	if err := d.provider.Unsubscribe(itemName); err != nil {
		return errors.Wrap(err, "provider.Unsubscribe")
	}
	return nil
}

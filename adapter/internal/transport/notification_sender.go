package transport

import (
	"github.com/pkg/errors"
	"github.com/varfrog/helloadapter/adapter/internal/app"
	"github.com/varfrog/helloadapter/pkg/quichelper"
	"github.com/varfrog/helloadapter/pkg/sdk"
	"go.uber.org/zap"
	"io"
	"sync"
)

// NotificationSender implements app.ItemEventListener on top of the notification stream to the proxy.
// Replies to requests go over the same stream.
type NotificationSender struct {
	mu              sync.Mutex // Serializes writes of concurrent item tasks
	stream          io.Writer
	maxMessageBytes int
	logger          *zap.Logger
}

var _ app.ItemEventListener = (*NotificationSender)(nil)

// NewNotificationSender is the constructor for NotificationSender.
func NewNotificationSender(stream io.Writer, maxMessageBytes int, logger *zap.Logger) *NotificationSender {
	return &NotificationSender{
		stream:          stream,
		maxMessageBytes: maxMessageBytes,
		logger:          logger,
	}
}

func (s *NotificationSender) Update(itemName string, fields map[string]string, isSnapshot bool) error {
	err := s.Send(sdk.Notification{
		Code:     sdk.CodeUpdate,
		Item:     itemName,
		Fields:   fields,
		Snapshot: isSnapshot,
	})
	if err != nil {
		return errors.Wrap(err, "send update")
	}
	return nil
}

func (s *NotificationSender) Failure(err error) {
	if sendErr := s.Send(sdk.Notification{Code: sdk.CodeFailure, Error: err.Error()}); sendErr != nil {
		// Nothing left to report to, the proxy would be unreachable
		s.logger.Warn("Failure not sent to the proxy", zap.Error(err), zap.NamedError("send_error", sendErr))
	}
}

// Send writes a single notification to the stream.
func (s *NotificationSender) Send(notification sdk.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := quichelper.WriteMessage(s.stream, notification, s.maxMessageBytes); err != nil {
		return errors.Wrap(err, "WriteMessage")
	}
	return nil
}

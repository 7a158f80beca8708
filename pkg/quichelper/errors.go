package quichelper

import (
	"errors"
	"fmt"
	"net"
)

// ErrNetworkTimeout is a network timeout. Example usage is when we re-return net.Error when Timeout()=true
var ErrNetworkTimeout = errors.New("network timeout")

// ErrMessageTooLong is returned when a message does not fit in the configured max message size.
var ErrMessageTooLong = errors.New("message too long")

type UnmarshalError struct {
	Data []byte // data which failed to unmarshal
	Err  error
}

func (e UnmarshalError) Error() string {
	return fmt.Sprintf("unmarshal: %v", e.Err.Error())
}

func (e UnmarshalError) Unwrap() error {
	return e.Err
}

// isTimeout reports whether err is a net.Error that timed out, e.g. after a missed stream deadline.
func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

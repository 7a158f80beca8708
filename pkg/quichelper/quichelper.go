// Package quichelper contains helpers for working with QUIC streams: message framing, heartbeats
// and TLS setup shared by the adapter's transport.
package quichelper

import (
	"bufio"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"github.com/varfrog/helloadapter/pkg/sdk"
	"io"
)

// WriteMessage marshals message into a single JSON line and writes it to stream.
// Returns ErrMessageTooLong if the line, including the trailing newline, exceeds maxMessageBytes.
// Returns ErrNetworkTimeout on timeout.
func WriteMessage(stream io.Writer, message interface{}, maxMessageBytes int) error {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	messageBytes = append(messageBytes, '\n')
	if len(messageBytes) > maxMessageBytes {
		return errors.Wrapf(ErrMessageTooLong, "%d bytes, max is %d", len(messageBytes), maxMessageBytes)
	}

	writtenBytes, err := stream.Write(messageBytes)
	if err != nil {
		if isTimeout(err) {
			return ErrNetworkTimeout
		}
		return errors.Wrap(err, "stream.Write")
	}
	if writtenBytes < len(messageBytes) {
		return fmt.Errorf("written %d bytes, message length is %d bytes", writtenBytes, len(messageBytes))
	}

	return nil
}

// RequestReader reads newline-delimited sdk.Request messages off a stream.
type RequestReader struct {
	scanner *bufio.Scanner
}

// NewRequestReader is the constructor for RequestReader. Lines longer than maxMessageBytes,
// newline included, are rejected.
func NewRequestReader(stream io.Reader, maxMessageBytes int) *RequestReader {
	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, maxMessageBytes), maxMessageBytes)
	return &RequestReader{scanner: scanner}
}

// ReadRequest blocks until the next request line is available.
// Returns io.EOF when the stream ends, UnmarshalError if the request is corrupt,
// ErrMessageTooLong for an oversized line and ErrNetworkTimeout on timeout.
// Only UnmarshalError leaves the reader usable.
func (r *RequestReader) ReadRequest() (sdk.Request, error) {
	if !r.scanner.Scan() {
		err := r.scanner.Err()
		switch {
		case err == nil:
			return sdk.Request{}, io.EOF
		case errors.Is(err, bufio.ErrTooLong):
			return sdk.Request{}, errors.Wrap(ErrMessageTooLong, "scanner.Scan")
		case isTimeout(err):
			return sdk.Request{}, ErrNetworkTimeout
		default:
			return sdk.Request{}, errors.Wrap(err, "scanner.Scan")
		}
	}

	line := r.scanner.Bytes()
	var request sdk.Request
	if err := json.Unmarshal(line, &request); err != nil {
		data := make([]byte, len(line)) // Bytes() is overwritten by the next Scan
		copy(data, line)
		return sdk.Request{}, &UnmarshalError{Data: data, Err: err}
	}

	return request, nil
}

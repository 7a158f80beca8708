// Package sdk exports the names and message shapes exchanged with the proxy.
package sdk

// ALPN is the application protocol negotiated on the QUIC session with the proxy.
const ALPN = "hello-adapter"

// Request codes, sent by the proxy.
const (
	CodeInit        = "init"
	CodeSubscribe   = "subscribe"
	CodeUnsubscribe = "unsubscribe"
)

// Notification codes, sent by the adapter.
const (
	CodeHello   = "hello"
	CodeReply   = "reply"
	CodeUpdate  = "update"
	CodeFailure = "failure"
)

// Request is a single call from the proxy into the data adapter.
type Request struct {
	Code       string            `json:"code"`
	ID         string            `json:"id"`
	Item       string            `json:"item,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
	ConfigFile string            `json:"config_file,omitempty"`
}

// Notification is anything the adapter sends to the proxy: replies to requests, item updates and failures.
type Notification struct {
	Code      string            `json:"code"`
	RequestID string            `json:"request_id,omitempty"`
	AdapterID string            `json:"adapter_id,omitempty"`
	Item      string            `json:"item,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	Snapshot  bool              `json:"snapshot"`
	Error     string            `json:"error,omitempty"`
}

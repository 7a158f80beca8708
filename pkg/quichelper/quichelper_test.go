package quichelper_test

import (
	"bytes"
	"encoding/json"
	"errors"
	. "github.com/onsi/gomega"
	"github.com/varfrog/helloadapter/pkg/quichelper"
	"github.com/varfrog/helloadapter/pkg/sdk"
	"io"
	"strings"
	"testing"
)

func TestRequestReader(t *testing.T) {
	t.Run("Valid requests", func(t *testing.T) {
		g := NewWithT(t)

		stream := strings.NewReader(
			`{"code":"subscribe","id":"1","item":"greetings"}` + "\n" +
				`{"code":"unsubscribe","id":"2","item":"greetings"}` + "\n")
		reader := quichelper.NewRequestReader(stream, 1000)

		request, err := reader.ReadRequest()
		g.Expect(err).To(BeNil())
		g.Expect(request).To(Equal(sdk.Request{Code: sdk.CodeSubscribe, ID: "1", Item: "greetings"}))

		request, err = reader.ReadRequest()
		g.Expect(err).To(BeNil())
		g.Expect(request.Code).To(Equal(sdk.CodeUnsubscribe))
		g.Expect(request.ID).To(Equal("2"))

		_, err = reader.ReadRequest()
		g.Expect(err).To(Equal(io.EOF))
	})

	t.Run("Init request carries parameters", func(t *testing.T) {
		g := NewWithT(t)

		msg, _ := json.Marshal(map[string]interface{}{
			"code":        sdk.CodeInit,
			"id":          "7",
			"parameters":  map[string]string{"adapters_conf.id": "HELLOWORLD"},
			"config_file": "/etc/adapter.conf",
		})
		reader := quichelper.NewRequestReader(bytes.NewReader(msg), len(msg)+1)

		request, err := reader.ReadRequest()
		g.Expect(err).To(BeNil())
		g.Expect(request.Parameters).To(HaveKeyWithValue("adapters_conf.id", "HELLOWORLD"))
		g.Expect(request.ConfigFile).To(Equal("/etc/adapter.conf"))
	})

	t.Run("Invalid request does not stop the reader", func(t *testing.T) {
		g := NewWithT(t)

		invalidMsg := []byte("{invalid_json}")
		stream := bytes.NewReader(append(append(invalidMsg, '\n'), []byte(`{"code":"init","id":"3"}`+"\n")...))
		reader := quichelper.NewRequestReader(stream, 1000)

		_, err := reader.ReadRequest()
		g.Expect(err).To(HaveOccurred())
		g.Expect(err).To(BeAssignableToTypeOf(&quichelper.UnmarshalError{}))
		var unmarshalError *quichelper.UnmarshalError
		g.Expect(errors.As(err, &unmarshalError)).To(BeTrue())
		g.Expect(unmarshalError.Data).To(Equal(invalidMsg))

		request, err := reader.ReadRequest()
		g.Expect(err).To(BeNil())
		g.Expect(request.ID).To(Equal("3"))
	})

	t.Run("Line over the max message size", func(t *testing.T) {
		g := NewWithT(t)

		stream := strings.NewReader(`{"code":"subscribe","id":"1","item":"greetings"}` + "\n")
		reader := quichelper.NewRequestReader(stream, 16)

		_, err := reader.ReadRequest()
		g.Expect(err).To(MatchError(quichelper.ErrMessageTooLong))
	})
}

func TestWriteMessage(t *testing.T) {
	t.Run("Writes one JSON line", func(t *testing.T) {
		g := NewWithT(t)

		var stream bytes.Buffer
		notification := sdk.Notification{
			Code:   sdk.CodeUpdate,
			Item:   "greetings",
			Fields: map[string]string{"message": "Hello"},
		}
		g.Expect(quichelper.WriteMessage(&stream, notification, 1000)).To(Succeed())

		line, err := stream.ReadBytes('\n')
		g.Expect(err).To(BeNil())
		g.Expect(stream.Len()).To(BeZero())

		var decoded sdk.Notification
		g.Expect(json.Unmarshal(line, &decoded)).To(Succeed())
		g.Expect(decoded).To(Equal(notification))
	})

	t.Run("Refuses messages over the max message size", func(t *testing.T) {
		g := NewWithT(t)

		var stream bytes.Buffer
		err := quichelper.WriteMessage(&stream, sdk.Notification{Code: sdk.CodeHello}, 8)

		g.Expect(err).To(MatchError(quichelper.ErrMessageTooLong))
		g.Expect(stream.Len()).To(BeZero())
	})
}

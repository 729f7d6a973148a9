package terminal_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tinymachines/wopr/pkg/protocol"
	"github.com/tinymachines/wopr/pkg/terminal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// relayStub is the server end of the socket under test. Each accepted
// connection is handed to the configured handler on its own goroutine.
type relayStub struct {
	server   *httptest.Server
	upgrader websocket.Upgrader
}

func newRelayStub(handler func(ws *websocket.Conn)) *relayStub {
	stub := &relayStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := stub.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		handler(ws)
	}))
	return stub
}

func (s *relayStub) URL() string {
	return "ws" + strings.TrimPrefix(s.server.URL, "http")
}

func (s *relayStub) Close() {
	s.server.Close()
}

func sendFrame(ws *websocket.Conn, frame protocol.Frame) {
	data, err := frame.Encode()
	Expect(err).To(BeNil())
	Expect(ws.WriteMessage(websocket.TextMessage, data)).To(Succeed())
}

var _ = Describe("Socket", func() {
	It("should surface a connect error after exhausting its attempts", func() {
		socket := terminal.NewSocketWithRetry("ws://127.0.0.1:1/socket", 2, time.Millisecond)

		err := socket.Connect()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("after 2 attempts"))
	})

	It("should deliver message frames from the relay", func() {
		stub := newRelayStub(func(ws *websocket.Conn) {
			sendFrame(ws, protocol.NewMessageFrame(protocol.NewSystemMessage("LOGON")))
		})
		defer stub.Close()

		socket := terminal.NewSocket(stub.URL())
		Expect(socket.Connect()).To(Succeed())
		defer socket.Close()

		var msg protocol.Message
		Eventually(socket.Messages()).Should(Receive(&msg))
		Expect(msg.Text).To(Equal("LOGON"))
		Expect(msg.Type).To(Equal(protocol.TypeSystem))
	})

	It("should drop malformed frames and keep reading", func() {
		stub := newRelayStub(func(ws *websocket.Conn) {
			ws.WriteMessage(websocket.TextMessage, []byte("not json"))
			sendFrame(ws, protocol.NewMessageFrame(protocol.NewWoprMessage("GREETINGS")))
		})
		defer stub.Close()

		socket := terminal.NewSocket(stub.URL())
		Expect(socket.Connect()).To(Succeed())
		defer socket.Close()

		var msg protocol.Message
		Eventually(socket.Messages()).Should(Receive(&msg))
		Expect(msg.Text).To(Equal("GREETINGS"))
	})

	It("should report CONNECTION TERMINATED when the relay drops the link", func() {
		stub := newRelayStub(func(ws *websocket.Conn) {
			ws.Close()
		})
		defer stub.Close()

		socket := terminal.NewSocket(stub.URL())
		Expect(socket.Connect()).To(Succeed())
		defer socket.Close()

		var msg protocol.Message
		Eventually(socket.Messages()).Should(Receive(&msg))
		Expect(msg.Type).To(Equal(protocol.TypeError))
		Expect(msg.Text).To(Equal("CONNECTION TERMINATED"))

		Eventually(socket.Messages()).Should(BeClosed())
	})

	It("should close quietly on a deliberate hangup", func() {
		stub := newRelayStub(func(ws *websocket.Conn) {
			// Hold the connection open until the client hangs up.
			for {
				if _, _, err := ws.ReadMessage(); err != nil {
					return
				}
			}
		})
		defer stub.Close()

		socket := terminal.NewSocket(stub.URL())
		Expect(socket.Connect()).To(Succeed())

		socket.Close()

		var leftover []protocol.Message
		Eventually(func() bool {
			for {
				select {
				case msg, ok := <-socket.Messages():
					if !ok {
						return true
					}
					leftover = append(leftover, msg)
				default:
					return false
				}
			}
		}).Should(BeTrue())
		Expect(leftover).To(BeEmpty())
	})

	It("should encode typed lines as command frames", func() {
		received := make(chan protocol.Frame, 1)
		stub := newRelayStub(func(ws *websocket.Conn) {
			_, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			frame, err := protocol.DecodeFrame(data)
			if err != nil {
				return
			}
			received <- frame
		})
		defer stub.Close()

		socket := terminal.NewSocket(stub.URL())
		Expect(socket.Connect()).To(Succeed())
		defer socket.Close()

		Expect(socket.SendCommand("help")).To(Succeed())

		var frame protocol.Frame
		Eventually(received).Should(Receive(&frame))
		Expect(frame.Event).To(Equal(protocol.EventCommand))
		Expect(frame.Command).To(Equal("help"))
	})
})

package websocket

import (
	"context"
	"net"

	"golang.org/x/net/websocket"

	"github.com/robotalks/turtle.go/pkg/l1/comm"
)

// Origin is sent by Dial, the server rejects handshakes without one.
const Origin = "http://localhost/"

// Dial connects to a controller served by Server, e.g.
// ws://host:port/l1. The deadline of ctx bounds the handshake.
func Dial(ctx context.Context, url string) (*comm.ControllerConn, error) {
	config, err := websocket.NewConfig(url, Origin)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		config.Dialer = &net.Dialer{Deadline: deadline}
	}
	ws, err := websocket.DialConfig(config)
	if err != nil {
		return nil, err
	}
	conn := &comm.ControllerConn{}
	conn.Init(New(ws))
	return conn, nil
}

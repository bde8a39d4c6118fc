package websocket

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/l1/comm"
)

// DefaultPath is where the controller endpoint is served.
const DefaultPath = "/l1"

// Server registers a controller for direct websocket clients.
// Each client gets its own pipe, events are broadcast to all.
type Server struct {
	Addr string
	Path string
	// Listener is used instead of listening on Addr if set.
	Listener net.Listener

	lock    sync.Mutex
	clients map[*comm.Registrar]struct{}
}

// NewServer creates a Server listening on addr.
func NewServer(addr string) *Server {
	return &Server{Addr: addr, Path: DefaultPath}
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.clients)
}

// SendEvent implements Registrar.
func (s *Server) SendEvent(ctx context.Context, msg fx.Message) error {
	s.lock.Lock()
	clients := make([]*comm.Registrar, 0, len(s.clients))
	for reg := range s.clients {
		clients = append(clients, reg)
	}
	s.lock.Unlock()

	var errs fx.AggregatedError
	for _, reg := range clients {
		errs.Add(reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(l *fx.Loop) {
	l.AddRunnable(s)
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln := s.Listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.Addr); err != nil {
			return err
		}
	}
	path := s.Path
	if path == "" {
		path = DefaultPath
	}
	mux := http.NewServeMux()
	mux.Handle(path, websocket.Handler(func(conn *websocket.Conn) {
		s.serve(ctx, conn)
	}))
	srv := &http.Server{Handler: mux}
	glog.Infof("serving websocket on %s%s", ln.Addr(), path)
	return fx.RunWithContextCancel(ctx, func() { srv.Close() }, func() error {
		return srv.Serve(ln)
	})
}

func (s *Server) serve(ctx context.Context, conn *websocket.Conn) {
	reg := &comm.Registrar{}
	reg.Init(New(conn))

	s.lock.Lock()
	if s.clients == nil {
		s.clients = make(map[*comm.Registrar]struct{})
	}
	s.clients[reg] = struct{}{}
	s.lock.Unlock()

	remote := conn.Request().RemoteAddr
	glog.V(1).Infof("websocket client %s connected", remote)
	err := reg.Serve(ctx)
	glog.V(1).Infof("websocket client %s disconnected: %v", remote, err)

	s.lock.Lock()
	delete(s.clients, reg)
	s.lock.Unlock()
}

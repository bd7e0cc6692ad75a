package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ReadBufferSize bounds what one connection can deliver. There is
	// a single read and no continuation, so anything beyond it is
	// truncated.
	ReadBufferSize = 4096

	DefaultPort = 8080
)

// Server accepts TCP connections and serves one HTTP/1.1 exchange per
// connection: read once, route, write once, close.
type Server struct {
	Name   string
	Port   int
	Router Router

	log    *slog.Logger
	tracer trace.Tracer

	requestCount metric.Int64Counter
	acceptErrors metric.Int64Counter

	running  atomic.Bool
	listener net.Listener
}

func NewServer(name string, port int) *Server {
	meter := otel.Meter(name)

	requestCount, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("The number of requests served, by status code"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}

	acceptErrors, err := meter.Int64Counter("http.server.accept_errors",
		metric.WithDescription("The number of failed accept calls"),
		metric.WithUnit("{error}"))
	if err != nil {
		panic(err)
	}

	return &Server{
		Name:   name,
		Port:   port,
		Router: NewRouter(),

		log:    otelslog.NewLogger(name),
		tracer: otel.Tracer(name),

		requestCount: requestCount,
		acceptErrors: acceptErrors,
	}
}

// Listen binds the listening socket on all interfaces. Failure is
// fatal to startup: logged, returned, never retried.
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", s.Port))
	if err != nil {
		s.log.Error("listen failed", "port", s.Port, "error", err)
		return err
	}
	s.listener = listener

	// Announcement lines are console output, not telemetry.
	port := listener.Addr().(*net.TCPAddr).Port
	log.Printf("Server started on port %d", port)
	log.Printf("Access at: http://localhost:%d", port)

	return nil
}

// Addr reports the bound address, or "" before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve runs the accept loop until Stop is called. Every accepted
// connection gets its own goroutine which is never joined or tracked;
// accept errors are logged and looped past.
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("http: Serve called before Listen")
	}

	s.running.Store(true)
	defer s.listener.Close()

	for s.running.Load() {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.running.Load() || errors.Is(err, net.ErrClosed) {
				break
			}
			s.log.Error("accept failed", "error", err)
			s.acceptErrors.Add(context.Background(), 1)
			continue
		}

		go s.handleConn(conn)
	}

	return nil
}

// ListenAndServe binds the socket and runs the accept loop.
func (s *Server) ListenAndServe() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Stop clears the running flag and closes the listening socket so a
// blocked Accept returns. In-flight connections are not tracked or
// drained; stopping is abrupt.
func (s *Server) Stop() {
	s.running.Store(false)
	if s.listener != nil {
		s.listener.Close()
	}
}

// handleConn serves one connection end to end: exactly one read, at
// most one write, then close. There are no deadlines, so a silent
// peer holds the goroutine until it goes away.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, ReadBufferSize)
	n, err := conn.Read(buf)
	if err != nil || n <= 0 {
		return
	}

	req := ParseRequest(string(buf[:n]))

	connID := uuid.NewString()
	ctx, span := s.tracer.Start(context.Background(), "http.request", trace.WithAttributes(
		attribute.String("conn.id", connID),
		attribute.String("http.method", req.Method),
		attribute.String("http.path", req.Path),
	))
	defer span.End()

	var res Response
	if handler, found := s.Router.Lookup(req.Path); found {
		res = NewResponse(StatusOK, handler(req.Headers))
	} else {
		res = NewResponse(StatusNotFound, NotFoundBody(req.Path))
	}

	statusAttr := attribute.Int("http.status_code", int(res.Status))
	span.SetAttributes(statusAttr)
	s.requestCount.Add(ctx, 1, metric.WithAttributes(statusAttr))
	s.log.DebugContext(ctx, "request served",
		"conn.id", connID, "method", req.Method, "path", req.Path, "status", res.Status)

	// Single write; partial writes are not retried and the connection
	// closes regardless.
	if _, err := conn.Write(res.Bytes()); err != nil {
		s.log.DebugContext(ctx, "write failed", "conn.id", connID, "error", err)
	}
}

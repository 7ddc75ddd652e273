// Package bridge serves backend commands to the UI layer over stdio JSON-RPC.
package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/seedtail/notefold/internal/logging"
)

// Handler executes one command. Params arrive as raw JSON; the returned
// value is marshaled into the response result.
type Handler func(params json.RawMessage) (interface{}, error)

// Server dispatches line-delimited JSON-RPC requests to registered handlers.
// Requests are handled one at a time, in order; no command is fatal to the
// serve loop.
type Server struct {
	logger *log.Logger

	mu       sync.Mutex
	handlers map[string]Handler
}

// NewServer creates an empty Server. A nil logger discards diagnostics.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		logger:   logger,
		handlers: make(map[string]Handler),
	}
}

// Register binds a method name to a handler, replacing any previous binding.
func (s *Server) Register(method string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = h
}

// Methods returns the registered method names, unordered.
func (s *Server) Methods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	methods := make([]string, 0, len(s.handlers))
	for m := range s.handlers {
		methods = append(methods, m)
	}
	return methods
}

// Serve reads one JSON-RPC request per line from r and writes one response
// per line to w, until r is exhausted or ctx is canceled. Protocol errors
// produce error responses, never a serve failure.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		resp := s.handleLine([]byte(line))
		if err := writeResponse(w, resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return nil
}

// Handle dispatches a single request and returns the response. Exposed so
// callers can drive the bridge without the stdio loop.
func (s *Server) Handle(req Request) Response {
	s.mu.Lock()
	handler, ok := s.handlers[req.Method]
	s.mu.Unlock()

	if !ok {
		return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("unknown method %q", req.Method))
	}

	result, err := handler(req.Params)
	if err != nil {
		s.logger.Warn("command failed", "method", req.Method, "err", err)
		return errorResponse(req.ID, codeCommandFailed, err.Error())
	}

	s.logger.Debug("command handled", "method", req.Method)
	return resultResponse(req.ID, result)
}

func (s *Server) handleLine(line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return errorResponse(0, codeParseError, fmt.Sprintf("parse request: %v", err))
	}
	if req.Method == "" {
		return errorResponse(req.ID, codeInvalidRequest, "missing method")
	}
	return s.Handle(req)
}

func writeResponse(w io.Writer, resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		// Result failed to marshal; report that instead of dropping the reply.
		fallback := errorResponse(resp.ID, codeCommandFailed, fmt.Sprintf("marshal response: %v", err))
		data, err = json.Marshal(fallback)
		if err != nil {
			return err
		}
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

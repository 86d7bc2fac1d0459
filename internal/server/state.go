package server

import (
	"context"
	"sync"
	"time"

	"github.com/dietrichtarigan/root-finding-bisection/internal/bisection"
	"github.com/dietrichtarigan/root-finding-bisection/internal/sse"
)

// параметры запуска метода
type RunParams struct {
	Func    string  `json:"func"`
	A       float64 `json:"a"`
	B       float64 `json:"b"`
	Tol     float64 `json:"tol"`
	MaxIter int     `json:"maxIter"`
}

// состояние одного запуска
type RunState struct {
	ID        string
	Params    RunParams
	CreatedAt time.Time

	LastIter bisection.Iteration
	Iters    []bisection.Iteration
	Result   *bisection.RootResult

	Err    string
	Done   bool
	Cancel context.CancelFunc
}

// Server хранит реестр запусков и hub для SSE-подписок
type Server struct {
	hub *sse.Hub

	runsMu sync.Mutex
	runs   map[string]*RunState
}

func New() *Server {
	return &Server{
		hub:  sse.NewHub(),
		runs: map[string]*RunState{},
	}
}

func (s *Server) saveRun(rs *RunState) {
	s.runsMu.Lock()
	defer s.runsMu.Unlock()
	s.runs[rs.ID] = rs
}

func (s *Server) getRun(id string) *RunState {
	s.runsMu.Lock()
	defer s.runsMu.Unlock()
	return s.runs[id]
}

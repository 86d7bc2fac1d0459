package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dietrichtarigan/root-finding-bisection/internal/bisection"
)

// StartRun запускает новый процесс поиска корня
func (s *Server) StartRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "только POST", http.StatusMethodNotAllowed)
		return
	}

	var p RunParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "ошибка JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if p.MaxIter <= 0 {
		p.MaxIter = bisection.DefaultMaxIterations
	}
	if p.Tol <= 0 {
		p.Tol = bisection.DefaultTolerance
	}
	if p.A == p.B {
		http.Error(w, "требуется a != b", http.StatusBadRequest)
		return
	}

	f, err := bisection.NewEvalFunc(p.Func)
	if err != nil {
		http.Error(w, "ошибка в выражении функции: "+err.Error(), http.StatusBadRequest)
		return
	}

	// предварительно считаем значения функции для графика
	const n = 400
	xs := make([]float64, n)
	ys := make([]float64, n)
	h := (p.B - p.A) / float64(n-1)
	for i := 0; i < n; i++ {
		x := p.A + float64(i)*h
		y, err := f.Eval(x)
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			y = math.NaN()
		}
		xs[i], ys[i] = x, y
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	rs := &RunState{
		ID:        id,
		Params:    p,
		CreatedAt: time.Now(),
		Cancel:    cancel,
	}
	s.saveRun(rs)

	// асинхронный запуск метода
	go func() {
		// стартовое событие
		startMsg, _ := json.Marshal(map[string]any{
			"type": "start",
			"id":   id,
		})
		s.hub.Publish(id, string(startMsg))

		onIter := func(it bisection.Iteration) error {
			select {
			case <-ctx.Done():
				return bisection.ErrStopped
			default:
			}

			rs.LastIter = it
			rs.Iters = append(rs.Iters, it)

			payload := map[string]any{
				"type": "iter",
				"iter": it,
			}
			msg, _ := json.Marshal(payload)
			s.hub.Publish(id, string(msg))
			return nil
		}

		res, err := bisection.Solve(
			f,
			p.A, p.B,
			p.Tol,
			p.MaxIter,
			onIter,
		)

		if err != nil {
			if errors.Is(err, bisection.ErrStopped) || errors.Is(err, context.Canceled) {
				stopMsg, _ := json.Marshal(map[string]any{
					"type": "stopped",
				})
				s.hub.Publish(id, string(stopMsg))
				return
			}

			// сюда попадает и *NotBracketedError — отрезок без смены знака
			rs.Err = "ошибка при вычислении: " + err.Error()
			errMsg, _ := json.Marshal(map[string]any{
				"type": "error",
				"err":  rs.Err,
			})
			s.hub.Publish(id, string(errMsg))
			return
		}

		// несошедшийся результат тоже успех: клиент смотрит на converged
		rs.Done = true
		rs.Result = res

		doneMsg, _ := json.Marshal(map[string]any{
			"type":       "done",
			"root":       res.Root,
			"fx":         res.FuncValue,
			"converged":  res.Converged,
			"iterations": res.Iters,
			"error":      res.Err,
		})
		s.hub.Publish(id, string(doneMsg))
	}()

	resp := map[string]any{
		"id": id,
		"xs": xs,
		"ys": ys,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// StopRun — прерывание процесса поиска корня
func (s *Server) StopRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "только POST", http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return
	}

	rs := s.getRun(id)
	if rs == nil {
		http.Error(w, "неизвестный id", http.StatusNotFound)
		return
	}

	if rs.Cancel != nil {
		rs.Cancel()
	}

	w.WriteHeader(http.StatusNoContent)
}

// Result — итоговый RootResult завершённого запуска
func (s *Server) Result(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return
	}

	rs := s.getRun(id)
	if rs == nil {
		http.Error(w, "неизвестный id", http.StatusNotFound)
		return
	}
	if rs.Result == nil {
		http.Error(w, "результат ещё не готов", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rs.Result)
}

// AllRoots запускает пакетный поиск по отрезкам по умолчанию;
// параметр func задаёт выражение, иначе берётся кубическая функция
func (s *Server) AllRoots(w http.ResponseWriter, r *http.Request) {
	f := bisection.Cubic
	if q := r.URL.Query().Get("func"); q != "" {
		parsed, err := bisection.NewEvalFunc(q)
		if err != nil {
			http.Error(w, "ошибка в выражении функции: "+err.Error(), http.StatusBadRequest)
			return
		}
		f = parsed
	}

	entries := bisection.LocateAll(f, bisection.DefaultIntervals())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

// ExportCSV — экспорт итераций в CSV
func (s *Server) ExportCSV(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return
	}

	rs := s.getRun(id)
	if rs == nil {
		http.Error(w, "неизвестный id", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=iterations_"+id+".csv")

	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"iter", "a", "b", "c", "f(a)", "f(b)", "f(c)", "error", "width"})

	for _, it := range rs.Iters {
		_ = cw.Write([]string{
			strconv.Itoa(it.K),
			fmtFloat(it.A),
			fmtFloat(it.B),
			fmtFloat(it.C),
			fmtFloat(it.FA),
			fmtFloat(it.FB),
			fmtFloat(it.FC),
			fmtFloat(it.Err),
			fmtFloat(it.Width),
		})
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 16, 64)
}

// Stream — SSE-стрим итераций
func (s *Server) Stream(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch, cancel := s.hub.Subscribe(id)
	defer cancel()

	ctx := r.Context()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			fmt.Fprintf(w, "event: msg\n")
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

package server

import "net/http"

// NewRouter собирает mux с API сервера
func (s *Server) NewRouter() http.Handler {
	mux := http.NewServeMux()

	// API эндпоинты
	mux.HandleFunc("/start", s.StartRun)
	mux.HandleFunc("/stop", s.StopRun)
	mux.HandleFunc("/stream", s.Stream)
	mux.HandleFunc("/export", s.ExportCSV)
	mux.HandleFunc("/result", s.Result)
	mux.HandleFunc("/roots", s.AllRoots)

	return mux
}

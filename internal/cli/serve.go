package cli

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dietrichtarigan/root-finding-bisection/internal/server"
)

// NewServeCommand — HTTP-сервер с SSE-стримом итераций
func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP-сервер поиска корней",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New()
			log.Printf("Сервер запущен на http://localhost%s", addr)
			return http.ListenAndServe(addr, srv.NewRouter())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "адрес прослушивания")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
)

// Version подставляется при сборке через -ldflags
var Version = "dev"

// NewRootCommand собирает корневую команду bisect
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bisect",
		Short: "Поиск корней функции методом бисекции",
		Long: `bisect находит вещественные корни функции одной переменной
методом бисекции и показывает полную трассу итераций.

Выражение f(x) задаётся строкой: арифметика, степень ^, переменная x,
константы e и pi, функции sin, cos, tan, log, exp, sqrt, abs.`,
		Version: Version,
		// не выводим usage при ошибках, чтобы не дублировать help
		SilenceUsage: true,
	}

	cmd.AddCommand(NewSolveCommand())
	cmd.AddCommand(NewRootsCommand())
	cmd.AddCommand(NewServeCommand())

	return cmd
}

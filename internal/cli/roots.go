package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dietrichtarigan/root-finding-bisection/internal/bisection"
	"github.com/dietrichtarigan/root-finding-bisection/internal/config"
)

// NewRootsCommand — пакетный поиск всех корней по набору отрезков
func NewRootsCommand() *cobra.Command {
	var (
		expr      string
		intervals string
		table     bool
	)

	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Найти все корни по набору именованных отрезков",
		Long: `roots применяет метод бисекции к каждому отрезку из набора.
По умолчанию ищутся три корня функции f(x) = x^3 - x^2 - 4x на
подобранных для неё отрезках; свой набор задаётся YAML-файлом через
--intervals. Ошибка локализации на одном отрезке не прерывает остальные.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := bisection.Cubic
			if expr != "" {
				parsed, err := bisection.NewEvalFunc(expr)
				if err != nil {
					return err
				}
				f = parsed
			}

			set := bisection.DefaultIntervals()
			if intervals != "" {
				loaded, err := config.LoadIntervals(intervals)
				if err != nil {
					return err
				}
				set = loaded
			}

			out := cmd.OutOrStdout()
			for i, entry := range bisection.LocateAll(f, set) {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s [%g, %g]\n", entry.Name, entry.Interval[0], entry.Interval[1])

				if entry.Result == nil {
					color.Red("не удалось: %s", entry.ErrMsg)
					continue
				}

				fmt.Fprint(out, bisection.FormatResult(entry.Result))
				if table {
					fmt.Fprintln(out)
					fmt.Fprintln(out, bisection.FormatIterationTable(entry.Result.Trace))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&expr, "func", "f", "", "выражение f(x) (по умолчанию x^3 - x^2 - 4x)")
	cmd.Flags().StringVar(&intervals, "intervals", "", "YAML-файл с набором отрезков")
	cmd.Flags().BoolVar(&table, "table", false, "вывести таблицы итераций")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dietrichtarigan/root-finding-bisection/internal/bisection"
)

// NewSolveCommand — поиск одного корня на заданном отрезке
func NewSolveCommand() *cobra.Command {
	var (
		expr    string
		a, b    float64
		tol     float64
		maxIter int
		table   bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Найти корень f(x) на отрезке [a, b]",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := bisection.NewEvalFunc(expr)
			if err != nil {
				return err
			}

			res, err := bisection.Solve(f, a, b, tol, maxIter, nil)
			if err != nil {
				return err
			}

			// несошедшийся запуск — не ошибка, клиент смотрит на статус
			if res.Converged {
				color.Green("корень найден за %d итераций", res.Iters)
			} else {
				color.Yellow("метод не сошёлся за %d итераций", res.Iters)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, bisection.FormatResult(res))
			if table {
				fmt.Fprintln(out)
				fmt.Fprintln(out, bisection.FormatIterationTable(res.Trace))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&expr, "func", "f", "x^3 - x^2 - 4*x", "выражение f(x)")
	cmd.Flags().Float64Var(&a, "a", 0, "левая граница отрезка")
	cmd.Flags().Float64Var(&b, "b", 0, "правая граница отрезка")
	cmd.Flags().Float64Var(&tol, "tol", bisection.DefaultTolerance, "точность сходимости")
	cmd.Flags().IntVar(&maxIter, "max-iter", bisection.DefaultMaxIterations, "предел числа итераций")
	cmd.Flags().BoolVar(&table, "table", false, "вывести таблицу итераций")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

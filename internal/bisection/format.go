package bisection

import (
	"fmt"
	"strings"
)

// FormatIterationTable форматирует трассу итераций в текстовую таблицу
// с фиксированной шириной колонок
func FormatIterationTable(trace []Iteration) string {
	if len(trace) == 0 {
		return "No iteration data available."
	}

	header := fmt.Sprintf("%-4s %-12s %-12s %-12s %-12s %-12s %-12s",
		"Iter", "a", "b", "c", "f(c)", "Error", "Width")

	lines := make([]string, 0, len(trace)+2)
	lines = append(lines, header, strings.Repeat("-", len(header)))

	for _, it := range trace {
		lines = append(lines, fmt.Sprintf("%-4d %-12.6f %-12.6f %-12.6f %-12.6e %-12.6e %-12.6e",
			it.K, it.A, it.B, it.C, it.FC, it.Err, it.Width))
	}

	return strings.Join(lines, "\n")
}

// FormatResult форматирует итог запуска Solve в читаемый текст;
// заголовки для сошедшегося и несошедшегося случаев различаются
func FormatResult(res *RootResult) string {
	if !res.Converged {
		return fmt.Sprintf(`
Results:
========
Status: Did not converge
Approximate root: %.10f
Function value: %.2e
Iterations: %d
Final error: %.2e
`, res.Root, res.FuncValue, res.Iters, res.Err)
	}

	return fmt.Sprintf(`
Results:
========
Status: Converged successfully
Root: %.10f
Function value: %.2e
Iterations: %d
Final error: %.2e
`, res.Root, res.FuncValue, res.Iters, res.Err)
}

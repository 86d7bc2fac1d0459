package bisection

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// Func — интерфейс для абстрактной функции f(x)
type Func interface {
	Eval(x float64) (float64, error)
}

// FuncOf оборачивает обычную Go-функцию в Func
func FuncOf(f func(float64) float64) Func {
	return goFunc(f)
}

type goFunc func(float64) float64

func (f goFunc) Eval(x float64) (float64, error) { return f(x), nil }

// Cubic — целевая функция по умолчанию: f(x) = x^3 - x^2 - 4x.
// Три корня: отрицательный между -2 и -1, ноль, положительный между 2 и 3.
var Cubic = FuncOf(func(x float64) float64 {
	return x*x*x - x*x - 4*x
})

// InvalidExpressionError — некорректное текстовое выражение функции
type InvalidExpressionError struct {
	Expr string
	Err  error
}

func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("invalid function expression %q: %v", e.Expr, e.Err)
}

func (e *InvalidExpressionError) Unwrap() error { return e.Err }

// evalFunc — реализация Func на основе govaluate
type evalFunc struct {
	expr   *govaluate.EvaluableExpression
	params map[string]interface{}
}

// NewEvalFunc создаёт вычислимую функцию по строке f(x).
// Доступны только арифметика, переменная x, константы e и pi и функции
// sin, cos, tan, log, exp, sqrt, abs — никаких других возможностей
// у выражения нет по построению.
func NewEvalFunc(expr string) (Func, error) {
	funcs := map[string]govaluate.ExpressionFunction{
		"sin": func(args ...interface{}) (interface{}, error) { return math.Sin(toFloat(args[0])), nil },
		"cos": func(args ...interface{}) (interface{}, error) { return math.Cos(toFloat(args[0])), nil },
		"tan": func(args ...interface{}) (interface{}, error) { return math.Tan(toFloat(args[0])), nil },
		"log": func(args ...interface{}) (interface{}, error) { return math.Log(toFloat(args[0])), nil },
		"exp": func(args ...interface{}) (interface{}, error) { return math.Exp(toFloat(args[0])), nil },
		"sqrt": func(args ...interface{}) (interface{}, error) {
			return math.Sqrt(toFloat(args[0])), nil
		},
		"abs": func(args ...interface{}) (interface{}, error) {
			return math.Abs(toFloat(args[0])), nil
		},
	}

	// нормализуем запятые в десятичной записи и степень ^ в нотацию govaluate
	normalized := strings.ReplaceAll(expr, ",", ".")
	normalized = strings.ReplaceAll(normalized, "^", "**")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(normalized, funcs)
	if err != nil {
		return nil, &InvalidExpressionError{Expr: expr, Err: err}
	}

	return &evalFunc{
		expr: parsed,
		params: map[string]interface{}{
			"x":  0.0,
			"e":  math.E,
			"pi": math.Pi,
		},
	}, nil
}

func (f *evalFunc) Eval(x float64) (float64, error) {
	f.params["x"] = x
	v, err := f.expr.Evaluate(f.params)
	if err != nil {
		return math.NaN(), err
	}

	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN(), err
		}
		return parsed, nil
	default:
		return math.NaN(), fmt.Errorf("expression did not return a number: %T", v)
	}
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	default:
		return math.NaN()
	}
}

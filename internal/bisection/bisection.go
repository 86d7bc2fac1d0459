package bisection

import (
	"errors"
	"fmt"
	"math"
)

// Iteration — одна итерация метода бисекции
type Iteration struct {
	K     int     `json:"iteration"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	C     float64 `json:"c"`
	FA    float64 `json:"f_a"`
	FB    float64 `json:"f_b"`
	FC    float64 `json:"f_c"`
	Err   float64 `json:"error"`
	Width float64 `json:"interval_width"`
}

// RootResult — итоговый результат одного запуска Solve
type RootResult struct {
	Root      float64     `json:"root"`
	FuncValue float64     `json:"function_value"`
	Iters     int         `json:"iterations"`
	Converged bool        `json:"converged"`
	Err       float64     `json:"error"`
	Trace     []Iteration `json:"iteration_data"`
}

// NotBracketedError — знаки f(a) и f(b) совпадают, корень не локализован
type NotBracketedError struct {
	A, B   float64
	FA, FB float64
}

func (e *NotBracketedError) Error() string {
	return fmt.Sprintf(
		"root is not bracketed in interval [%g, %g]: f(%g) = %.6f, f(%g) = %.6f; f(a) and f(b) must have opposite signs",
		e.A, e.B, e.A, e.FA, e.B, e.FB,
	)
}

// ErrStopped — специальная ошибка для принудительной остановки
var ErrStopped = errors.New("bisection: stopped by callback")

// Solve — реализация метода бисекции на отрезке [a, b].
// Требование к входу: f(a)·f(b) < 0, иначе возвращается *NotBracketedError.
// onIter вызывается после каждой итерации; если вернёт ErrStopped — алгоритм
// прерывается и возвращается частичный результат вместе с ErrStopped.
// Неуспешная сходимость ошибкой не является: возвращается результат
// с Converged=false и лучшей доступной оценкой корня.
func Solve(
	f Func,
	a, b, tol float64,
	maxIter int,
	onIter func(Iteration) error,
) (*RootResult, error) {
	fa, err := f.Eval(a)
	if err != nil {
		return nil, err
	}
	fb, err := f.Eval(b)
	if err != nil {
		return nil, err
	}

	if fa*fb >= 0 {
		return nil, &NotBracketedError{A: a, B: b, FA: fa, FB: fb}
	}

	var trace []Iteration

	for k := 1; k <= maxIter; k++ {
		c := (a + b) / 2
		fc, err := f.Eval(c)
		if err != nil {
			return nil, err
		}
		errEst := (b - a) / 2

		it := Iteration{
			K:     k,
			A:     a,
			B:     b,
			C:     c,
			FA:    fa,
			FB:    fb,
			FC:    fc,
			Err:   errEst,
			Width: b - a,
		}
		trace = append(trace, it)

		if onIter != nil {
			if cbErr := onIter(it); cbErr != nil {
				partial := &RootResult{
					Root:      c,
					FuncValue: fc,
					Iters:     k,
					Converged: false,
					Err:       errEst,
					Trace:     trace,
				}
				if errors.Is(cbErr, ErrStopped) {
					return partial, ErrStopped
				}
				return partial, cbErr
			}
		}

		if math.Abs(fc) < tol || errEst < tol {
			return &RootResult{
				Root:      c,
				FuncValue: fc,
				Iters:     k,
				Converged: true,
				Err:       errEst,
				Trace:     trace,
			}, nil
		}

		// обновление отрезка; точный ноль в середине уходит в правую
		// ветвь — сходимость тогда наступает по оценке (b-a)/2
		if fa*fc < 0 {
			b = c
			fb = fc
		} else {
			a = c
			fa = fc
		}
	}

	// лимит итераций исчерпан: возвращаем оценку по финальному отрезку,
	// без дополнительной записи в трассу
	c := (a + b) / 2
	fc, err := f.Eval(c)
	if err != nil {
		return nil, err
	}

	return &RootResult{
		Root:      c,
		FuncValue: fc,
		Iters:     maxIter,
		Converged: false,
		Err:       (b - a) / 2,
		Trace:     trace,
	}, nil
}

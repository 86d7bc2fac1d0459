package bisection

// Параметры запуска по умолчанию для пакетного поиска корней.
const (
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 100
)

// NamedInterval — именованный начальный отрезок локализации корня
type NamedInterval struct {
	Name string  `json:"name" yaml:"name"`
	A    float64 `json:"a" yaml:"a"`
	B    float64 `json:"b" yaml:"b"`
}

// BatchEntry — результат обработки одного отрезка: либо RootResult,
// либо текст ошибки локализации. Записи независимы друг от друга.
type BatchEntry struct {
	Name     string      `json:"root_name"`
	Interval [2]float64  `json:"initial_interval"`
	Result   *RootResult `json:"result,omitempty"`
	ErrMsg   string      `json:"error_message,omitempty"`
}

// DefaultIntervals — три отрезка, локализующие корни Cubic
func DefaultIntervals() []NamedInterval {
	return []NamedInterval{
		{Name: "x1 (negative root)", A: -2.0, B: -1.0},
		{Name: "x2 (zero root)", A: -0.5, B: 0.5},
		{Name: "x3 (positive root)", A: 2.0, B: 3.0},
	}
}

// LocateAll последовательно применяет Solve к каждому отрезку
// с параметрами по умолчанию. Ошибка на одном отрезке фиксируется
// в его записи и не прерывает обработку остальных; порядок записей
// совпадает с порядком входных отрезков.
func LocateAll(f Func, intervals []NamedInterval) []BatchEntry {
	entries := make([]BatchEntry, 0, len(intervals))

	for _, in := range intervals {
		entry := BatchEntry{
			Name:     in.Name,
			Interval: [2]float64{in.A, in.B},
		}

		res, err := Solve(f, in.A, in.B, DefaultTolerance, DefaultMaxIterations, nil)
		if err != nil {
			entry.ErrMsg = err.Error()
		} else {
			entry.Result = res
		}

		entries = append(entries, entry)
	}

	return entries
}

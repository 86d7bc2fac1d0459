package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dietrichtarigan/root-finding-bisection/internal/bisection"
)

// intervalFile — YAML-файл с набором именованных отрезков
type intervalFile struct {
	Intervals []bisection.NamedInterval `yaml:"intervals"`
}

// LoadIntervals читает набор отрезков из YAML-файла
func LoadIntervals(path string) ([]bisection.NamedInterval, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f intervalFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("разбор %s: %w", path, err)
	}
	if len(f.Intervals) == 0 {
		return nil, fmt.Errorf("%s: не задано ни одного отрезка", path)
	}

	for i, in := range f.Intervals {
		if in.A == in.B {
			return nil, fmt.Errorf("%s: отрезок %d: требуется a != b", path, i+1)
		}
		if in.Name == "" {
			f.Intervals[i].Name = fmt.Sprintf("interval %d", i+1)
		}
	}

	return f.Intervals, nil
}

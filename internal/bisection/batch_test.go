package bisection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocateAllDefaultIntervals — три корня кубической функции
func TestLocateAllDefaultIntervals(t *testing.T) {
	entries := LocateAll(Cubic, DefaultIntervals())
	require.Len(t, entries, 3)

	roots := []float64{-1.5615528128, 0, 2.5615528128}
	for i, entry := range entries {
		require.NotNil(t, entry.Result, "entry %d: %s", i, entry.ErrMsg)
		assert.Empty(t, entry.ErrMsg)
		assert.True(t, entry.Result.Converged)
		assert.InDelta(t, roots[i], entry.Result.Root, 1e-9)
	}

	assert.Equal(t, "x1 (negative root)", entries[0].Name)
	assert.Equal(t, "x2 (zero root)", entries[1].Name)
	assert.Equal(t, "x3 (positive root)", entries[2].Name)
	assert.Equal(t, [2]float64{-2, -1}, entries[0].Interval)
}

// TestLocateAllIsolation — отказ на одном отрезке не прерывает остальные,
// порядок записей совпадает с порядком входа
func TestLocateAllIsolation(t *testing.T) {
	intervals := []NamedInterval{
		{Name: "left", A: -2, B: -1},
		{Name: "bad", A: 1, B: 2}, // f(1) и f(2) одного знака
		{Name: "right", A: 2, B: 3},
	}

	entries := LocateAll(Cubic, intervals)
	require.Len(t, entries, 3)

	assert.Equal(t, "left", entries[0].Name)
	assert.Equal(t, "bad", entries[1].Name)
	assert.Equal(t, "right", entries[2].Name)

	require.NotNil(t, entries[0].Result)
	assert.True(t, entries[0].Result.Converged)

	assert.Nil(t, entries[1].Result)
	assert.Contains(t, entries[1].ErrMsg, "not bracketed")

	require.NotNil(t, entries[2].Result)
	assert.True(t, entries[2].Result.Converged)
}

// TestLocateAllEvalFailure — ошибка вычисления выражения тоже изолируется
func TestLocateAllEvalFailure(t *testing.T) {
	// выражение-сравнение возвращает не число: Eval падает на первом же вызове
	f, err := NewEvalFunc("x > 1")
	require.NoError(t, err)

	entries := LocateAll(f, []NamedInterval{
		{Name: "first", A: 0, B: 2},
		{Name: "second", A: -1, B: 1},
	})
	require.Len(t, entries, 2)

	for _, entry := range entries {
		assert.Nil(t, entry.Result)
		assert.Contains(t, entry.ErrMsg, "did not return a number")
	}
}

// TestLocateAllEmpty — пустой набор отрезков даёт пустой список записей
func TestLocateAllEmpty(t *testing.T) {
	entries := LocateAll(Cubic, nil)
	assert.Empty(t, entries)
}

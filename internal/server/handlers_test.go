package server

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietrichtarigan/root-finding-bisection/internal/bisection"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New().NewRouter())
	t.Cleanup(ts.Close)
	return ts
}

func startRun(t *testing.T, ts *httptest.Server, p RunParams) string {
	t.Helper()

	body, err := json.Marshal(p)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/start", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		ID string    `json:"id"`
		Xs []float64 `json:"xs"`
		Ys []float64 `json:"ys"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.NotEmpty(t, got.ID)
	// предрасчёт точек для графика
	require.Len(t, got.Xs, 400)
	require.Len(t, got.Ys, 400)

	return got.ID
}

// waitResult опрашивает /result, пока асинхронный запуск не завершится
func waitResult(t *testing.T, ts *httptest.Server, id string) *bisection.RootResult {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(ts.URL + "/result?id=" + id)
		require.NoError(t, err)

		if resp.StatusCode == http.StatusOK {
			defer resp.Body.Close()
			var res bisection.RootResult
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
			return &res
		}
		resp.Body.Close()
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("run did not finish in time")
	return nil
}

func TestStartRunAndResult(t *testing.T) {
	ts := newTestServer(t)

	id := startRun(t, ts, RunParams{Func: "x^3 - x^2 - 4*x", A: -2, B: -1})
	res := waitResult(t, ts, id)

	assert.True(t, res.Converged)
	assert.InDelta(t, -1.5615528128, res.Root, 1e-9)
	assert.Len(t, res.Trace, res.Iters)
}

func TestStartRunValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "broken json", body: "{"},
		{name: "degenerate interval", body: `{"func":"x","a":1,"b":1}`},
		{name: "bad expression", body: `{"func":"sin(x","a":0,"b":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/start", "application/json", bytes.NewBufferString(tt.body))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestStartRunMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/start")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestExportCSV(t *testing.T) {
	ts := newTestServer(t)

	id := startRun(t, ts, RunParams{Func: "x^3 - x^2 - 4*x", A: 2, B: 3})
	res := waitResult(t, ts, id)

	resp, err := http.Get(ts.URL + "/export?id=" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	rows, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	// заголовок и по строке на итерацию
	require.Len(t, rows, res.Iters+1)
	assert.Equal(t, []string{"iter", "a", "b", "c", "f(a)", "f(b)", "f(c)", "error", "width"}, rows[0])
}

func TestResultUnknownID(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/result?id=nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStopUnknownID(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/stop?id=nope", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAllRootsDefault(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/roots")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []bisection.BatchEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 3)

	roots := []float64{-1.5615528128, 0, 2.5615528128}
	for i, entry := range entries {
		require.NotNil(t, entry.Result, "entry %d: %s", i, entry.ErrMsg)
		assert.True(t, entry.Result.Converged)
		assert.InDelta(t, roots[i], entry.Result.Root, 1e-9)
	}
}

func TestAllRootsCustomFunc(t *testing.T) {
	ts := newTestServer(t)

	// у x^2 + 1 корней нет: все отрезки без смены знака
	resp, err := http.Get(ts.URL + "/roots?func=" + "x%5E2%20%2B%201")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []bisection.BatchEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 3)

	for _, entry := range entries {
		assert.Nil(t, entry.Result)
		assert.Contains(t, entry.ErrMsg, "not bracketed")
	}
}

func TestAllRootsBadExpression(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/roots?func=sin%28x")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

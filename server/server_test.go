// SPDX-License-Identifier: MIT

package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mca/config"
	"github.com/katalvlaran/mca/mca"
	"github.com/katalvlaran/mca/server"
)

const writersBody = `{
  "header": ["period", "comma", "other"],
  "index": ["Rousseau", "Chateaubriand", "Hugo", "Zola", "Proust", "Giraudoux"],
  "rows": [
    [7836, 13112, 6026],
    [53655, 102383, 42413],
    [115615, 184541, 59226],
    [161926, 340479, 62754],
    [38177, 105101, 12670],
    [46371, 58367, 14299]
  ],
  "benzecri": false,
  "n": "2"%s
}`

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	s := server.New(config.Default(), zerolog.Nop())
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAnalyze_Writers(t *testing.T) {
	rec := do(t, http.MethodPost, "/v1/analyze", strings.Replace(writersBody, "%s", "", 1))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var sum mca.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, 2, sum.Rank)
	assert.Equal(t, 2, sum.Factors)
	assert.False(t, sum.Corrected)
	assert.Equal(t, "Zola", sum.RowLabels[3])
	assert.Equal(t, []string{"period", "comma", "other"}, sum.ColLabels)
	require.Len(t, sum.RowCos2, 6)
	assert.InDelta(t, 0.9997, sum.RowCos2[3][0], 1e-4)
	assert.NotEmpty(t, sum.GreenacreVariance)
}

func TestAnalyze_Categorical(t *testing.T) {
	body := `{
	  "header": ["color", "size"],
	  "rows": [["red","L"],["blue","S"],["red","M"],["green","S"],["blue","L"]],
	  "cols": ["color", "size"],
	  "benzecri": false,
	  "greenacre": false
	}`
	rec := do(t, http.MethodPost, "/v1/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var sum mca.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, 2, sum.K)
	assert.Equal(t, 6, sum.J)
	assert.Equal(t, "color:blue", sum.ColLabels[0])
	assert.Nil(t, sum.GreenacreVariance)
}

func TestAnalyze_Status(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"header": [`, http.StatusBadRequest},
		{"missing rows", `{"header": ["a"]}`, http.StatusBadRequest},
		{"empty ncols", strings.Replace(writersBody, "%s", `, "ncols": ""`, 1), http.StatusBadRequest},
		{"zero ncols", strings.Replace(writersBody, "%s", `, "ncols": 0`, 1), http.StatusBadRequest},
		{"ncols above columns", strings.Replace(writersBody, "%s", `, "ncols": 4`, 1), http.StatusBadRequest},
		{"percent out of range", strings.Replace(writersBody, "%s", `, "percent": 2`, 1), http.StatusBadRequest},
		{"ragged", `{"header": ["a","b"], "rows": [[1,2],[3]]}`, http.StatusBadRequest},
		{"non numeric", `{"header": ["a","b"], "rows": [[1,"x"]]}`, http.StatusBadRequest},
		{"zero table", `{"header": ["a","b"], "rows": [[0,0],[0,0]]}`, http.StatusUnprocessableEntity},
		{"single variable benzecri", `{"header": ["a","b"], "rows": [[1,2],[3,4]], "ncols": 1}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, http.MethodPost, "/v1/analyze", tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())

			var out map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.Contains(t, out, "error")
		})
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := server.New(config.Default(), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mca/mca"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRun_Writers(t *testing.T) {
	out, err := execute(t, "run",
		"--input", "../../testdata/french_writers.csv",
		"--index-col", "--no-benzecri", "--n", "2")
	require.NoError(t, err)

	var sum mca.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.False(t, sum.Corrected)
	assert.Equal(t, 2, sum.Rank)
	assert.Equal(t, 2, sum.Factors)
	assert.Equal(t, []string{"period", "comma", "other"}, sum.ColLabels)
	assert.Equal(t, "Zola", sum.RowLabels[3])
	require.Len(t, sum.RowScores, 6)
	assert.Len(t, sum.RowScores[0], 2)
	assert.NotEmpty(t, sum.GreenacreVariance)
}

func TestRun_BurgundiesYAML(t *testing.T) {
	out, err := execute(t, "run",
		"--input", "../../testdata/burgundies.csv",
		"--skip-rows", "1", "--index-col", "--drop", "oak_type",
		"--cols", "e1_fruity,e1_woody,e1_coffee,e2_red_fruit,e2_roasted,e2_vanillin,e2_woody,e3_fruity,e3_butter,e3_woody",
		"--greenacre=false", "--format", "yaml")
	require.NoError(t, err)

	var sum mca.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &sum))
	assert.True(t, sum.Corrected)
	assert.Equal(t, 10, sum.K)
	assert.Equal(t, 22, sum.J)
	assert.Equal(t, []string{"W1", "W2", "W3", "W4", "W5", "W6"}, sum.RowLabels)
	assert.Nil(t, sum.GreenacreVariance)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "run.yaml")
	body := "input: ../../testdata/french_writers.csv\nindex_col: true\nbenzecri: false\nn: 1\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o600))

	out, err := execute(t, "run", "--config", cfg, "--n", "2")
	require.NoError(t, err)

	var sum mca.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 2, sum.Factors, "flags override the file")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"missing input", []string{"run"}, nil},
		{"empty ncols", []string{"run", "--input", "../../testdata/french_writers.csv", "--ncols", ""}, mca.ErrInvalidInput},
		{"non integer ncols", []string{"run", "--input", "../../testdata/french_writers.csv", "--ncols", "two"}, mca.ErrInvalidInput},
		{"bad format", []string{"run", "--input", "../../testdata/french_writers.csv", "--format", "xml"}, nil},
		{"missing file", []string{"run", "--input", "nope.csv"}, nil},
		{"text without cols", []string{"run", "--input", "../../testdata/burgundies.csv", "--skip-rows", "1", "--index-col"}, mca.ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			if tc.is != nil {
				require.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"serve", "--addr", "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, root.ExecuteContext(ctx))
}

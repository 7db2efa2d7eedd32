// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mca/dataset"
	"github.com/katalvlaran/mca/mca"
)

// Cell is a table cell or count posted either as a JSON string or number.
type Cell string

// UnmarshalJSON accepts strings and numbers; numbers keep their literal text.
func (c *Cell) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Cell(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("cell must be a string or a number: %w", err)
	}
	*c = Cell(n.String())
	return nil
}

// AnalyzeRequest is the body of POST /v1/analyze.
//
// Rows holds categorical values when Cols is set, counts otherwise. NCols and
// N are optional counts; when present they must be positive integers.
type AnalyzeRequest struct {
	Header    []string `json:"header" binding:"required"`
	Index     []string `json:"index"`
	Rows      [][]Cell `json:"rows" binding:"required"`
	Cols      []string `json:"cols"`
	NCols     *Cell    `json:"ncols"`
	Benzecri  *bool    `json:"benzecri"`
	Tol       *float64 `json:"tol"`
	Sparse    bool     `json:"sparse"`
	N         *Cell    `json:"n"`
	Percent   *float64 `json:"percent"`
	Greenacre *bool    `json:"greenacre"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := s.analyze(&req)
	if err != nil {
		s.log.Debug().Err(err).Msg("analyze failed")
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) analyze(req *AnalyzeRequest) (*mca.Summary, error) {
	records := make([][]string, len(req.Rows))
	for i, row := range req.Rows {
		records[i] = make([]string, len(row))
		for j, cell := range row {
			records[i][j] = string(cell)
		}
	}
	frame, err := dataset.NewFrame(req.Header, records, req.Index)
	if err != nil {
		return nil, err
	}

	cfg := s.defaults
	if req.Benzecri != nil {
		cfg.Benzecri = *req.Benzecri
	}
	if req.Tol != nil {
		cfg.Tol = *req.Tol
	}
	if req.Percent != nil {
		cfg.Percent = *req.Percent
	}
	if req.Greenacre != nil {
		cfg.Greenacre = *req.Greenacre
	}
	cfg.Sparse = cfg.Sparse || req.Sparse
	if req.NCols != nil {
		if cfg.NCols, err = mca.ParseCount("ncols", string(*req.NCols)); err != nil {
			return nil, err
		}
	}
	if req.N != nil {
		if cfg.N, err = mca.ParseCount("n", string(*req.N)); err != nil {
			return nil, err
		}
	}

	opts := append(cfg.Options(), mca.WithLogger(s.log))
	m, err := mca.NewFromFrame(frame, req.Cols, opts...)
	if err != nil {
		return nil, err
	}
	summary, err := m.Summarize(cfg.Percent, cfg.N)
	if err != nil {
		return nil, err
	}
	if !cfg.Greenacre {
		summary.GreenacreVariance = nil
	}
	return summary, nil
}

// statusOf maps engine and table errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, mca.ErrNumericDegeneracy):
		return http.StatusUnprocessableEntity
	case errors.Is(err, mca.ErrInvalidInput),
		errors.Is(err, mca.ErrDimensionMismatch),
		errors.Is(err, dataset.ErrEmpty),
		errors.Is(err, dataset.ErrRagged),
		errors.Is(err, dataset.ErrDuplicateColumn):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

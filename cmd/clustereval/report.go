package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvmatch/contingency"
	"github.com/katalvlaran/lvmatch/evaluation"
	"github.com/katalvlaran/lvmatch/hungarian"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type report struct {
	Size1         int     `json:"size1"`
	Size2         int     `json:"size2"`
	Total         int     `json:"total"`
	Accuracy      float64 `json:"accuracy"`
	PSI           float64 `json:"psi"`
	SimplifiedPSI float64 `json:"simplified_psi"`
	Observed      float64 `json:"observed"`
	Expected      float64 `json:"expected"`
}

func score(t *contingency.Table, logger *slog.Logger) (*report, error) {
	acc, err := evaluation.NewAccuracy(t, hungarian.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	psi, err := evaluation.NewPairSetsIndex(t, hungarian.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &report{
		Size1:         t.Size1(),
		Size2:         t.Size2(),
		Total:         t.Total(),
		Accuracy:      acc.Value(),
		PSI:           psi.PSI(),
		SimplifiedPSI: psi.SimplifiedPSI(),
		Observed:      psi.Observed(),
		Expected:      psi.Expected(),
	}, nil
}

func (r *report) write(w io.Writer, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	_, err := fmt.Fprintf(w,
		"clusters:       %d x %d\nelements:       %d\naccuracy:       %.6f\npsi:            %.6f\nsimplified psi: %.6f\n",
		r.Size1, r.Size2, r.Total, r.Accuracy, r.PSI, r.SimplifiedPSI)

	return err
}

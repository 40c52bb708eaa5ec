package wordvec

import "github.com/born-ml/wordvec/internal/log"

// Progress describes how far a scan has come.
type Progress struct {
	Lines int  // Data lines read so far
	Total int  // Declared vocabulary size
	Done  bool // Set on the final callback after end of input
}

// Fraction returns Lines/Total, or 1 when nothing is expected.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	return float64(p.Lines) / float64(p.Total)
}

// ProgressFunc receives progress updates during a scan.
type ProgressFunc func(Progress)

// LogProgress returns a ProgressFunc that reports through l.
func LogProgress(l log.Logger) ProgressFunc {
	return func(p Progress) {
		if p.Done {
			l.Info("scan finished: %d/%d lines", p.Lines, p.Total)
			return
		}
		l.Info("scanned %d/%d lines (%.1f%%)", p.Lines, p.Total, 100*p.Fraction())
	}
}

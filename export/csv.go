package export

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/katalvlaran/percolate/percolation"
)

// ErrNilWriter is returned by NewCSVSink when either writer is nil.
var ErrNilWriter = errors.New("export: csv sink requires non-nil writers")

// CSVSink writes each sweep step to two CSV streams. It implements
// percolation.Sink.
type CSVSink struct {
	report   *csv.Writer
	clusters *csv.Writer

	// row buffers, reused across steps to avoid per-step allocation.
	reportRow  []string
	clusterRow []string
}

// NewCSVSink builds a sink over the two output streams for a lattice of n
// nodes and writes both headers immediately. The report stream carries
// "p,Ncc,Smax,Nmax"; the cluster stream carries "p,node_0,…,node_{n-1}".
func NewCSVSink(report, clusters io.Writer, n int) (*CSVSink, error) {
	if report == nil || clusters == nil {
		return nil, ErrNilWriter
	}

	s := &CSVSink{
		report:     csv.NewWriter(report),
		clusters:   csv.NewWriter(clusters),
		reportRow:  make([]string, 4),
		clusterRow: make([]string, n+1),
	}

	if err := s.report.Write([]string{"p", "Ncc", "Smax", "Nmax"}); err != nil {
		return nil, err
	}
	header := make([]string, n+1)
	header[0] = "p"
	for i := 0; i < n; i++ {
		header[i+1] = "node_" + strconv.Itoa(i)
	}
	if err := s.clusters.Write(header); err != nil {
		return nil, err
	}

	return s, nil
}

// WriteStep appends one row to each stream: the step record to the report,
// the per-node cluster roots to the cluster stream.
func (s *CSVSink) WriteStep(rec percolation.StepRecord, roots []int) error {
	s.reportRow[0] = strconv.FormatFloat(rec.P, 'g', -1, 64)
	s.reportRow[1] = strconv.Itoa(rec.Components)
	s.reportRow[2] = strconv.Itoa(rec.LargestCluster)
	s.reportRow[3] = strconv.FormatFloat(rec.LargestFraction, 'g', -1, 64)
	if err := s.report.Write(s.reportRow); err != nil {
		return err
	}

	// The cluster row must stay as wide as the header; resize when the
	// caller hands a roots slice of a different length.
	if len(s.clusterRow) != len(roots)+1 {
		s.clusterRow = make([]string, len(roots)+1)
	}
	s.clusterRow[0] = s.reportRow[0]
	for i, r := range roots {
		s.clusterRow[i+1] = strconv.Itoa(r)
	}

	return s.clusters.Write(s.clusterRow)
}

// Flush drains both buffered writers and reports the first error.
func (s *CSVSink) Flush() error {
	s.report.Flush()
	s.clusters.Flush()
	if err := s.report.Error(); err != nil {
		return err
	}

	return s.clusters.Error()
}

// File: export/csv_test.go
package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/export"
	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/percolation"
)

// TestNewCSVSink_NilWriter rejects missing streams.
func TestNewCSVSink_NilWriter(t *testing.T) {
	var buf bytes.Buffer
	_, err := export.NewCSVSink(nil, &buf, 4)
	assert.ErrorIs(t, err, export.ErrNilWriter)
	_, err = export.NewCSVSink(&buf, nil, 4)
	assert.ErrorIs(t, err, export.ErrNilWriter)
}

// TestCSVSink_Headers checks both headers are written up front, before any
// step arrives.
func TestCSVSink_Headers(t *testing.T) {
	var report, clusters bytes.Buffer
	sink, err := export.NewCSVSink(&report, &clusters, 3)
	require.NoError(t, err)
	require.NoError(t, sink.Flush())

	assert.Equal(t, "p,Ncc,Smax,Nmax\n", report.String())
	assert.Equal(t, "p,node_0,node_1,node_2\n", clusters.String())
}

// TestCSVSink_WriteStep checks exact row formatting for a hand-built record.
func TestCSVSink_WriteStep(t *testing.T) {
	var report, clusters bytes.Buffer
	sink, err := export.NewCSVSink(&report, &clusters, 2)
	require.NoError(t, err)

	rec := percolation.StepRecord{P: 0.25, Components: 1, LargestCluster: 2, LargestFraction: 0.5}
	require.NoError(t, sink.WriteStep(rec, []int{0, 0}))
	require.NoError(t, sink.Flush())

	assert.Equal(t, "p,Ncc,Smax,Nmax\n0.25,1,2,0.5\n", report.String())
	assert.Equal(t, "p,node_0,node_1\n0.25,0,0\n", clusters.String())
}

// TestCSVSink_EndToEnd runs a full sweep on a 2×2 lattice and compares both
// files byte for byte.
//
// Weights [0.1, 0.3, 0.2, 0.4] with step 0.25:
//   - p=0.00: nothing active — 4 components.
//   - p=0.25: nodes 0 and 2 active and united — percolation closes here.
//   - p=0.50: everything active — one cluster of 4.
func TestCSVSink_EndToEnd(t *testing.T) {
	edges, err := lattice.Square(2)
	require.NoError(t, err)
	weights := []float64{0.1, 0.3, 0.2, 0.4}

	eng, err := percolation.NewEngine(edges, weights)
	require.NoError(t, err)

	var report, clusters bytes.Buffer
	sink, err := export.NewCSVSink(&report, &clusters, eng.N())
	require.NoError(t, err)

	records, err := eng.Run(0.25, sink)
	require.NoError(t, err)
	require.NoError(t, sink.Flush())
	require.Len(t, records, 5)

	pc, ok := eng.CriticalP()
	require.True(t, ok)
	assert.InDelta(t, 0.25, pc, 1e-12)

	wantReport := "p,Ncc,Smax,Nmax\n" +
		"0,4,1,0.25\n" +
		"0.25,3,2,0.5\n" +
		"0.5,1,4,1\n" +
		"0.75,1,4,1\n" +
		"1,1,4,1\n"
	assert.Equal(t, wantReport, report.String())

	wantClusters := "p,node_0,node_1,node_2,node_3\n" +
		"0,0,1,2,3\n" +
		"0.25,0,1,0,3\n" +
		"0.5,0,0,0,0\n" +
		"0.75,0,0,0,0\n" +
		"1,0,0,0,0\n"
	assert.Equal(t, wantClusters, clusters.String())
}

package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *dynamo.Result {
	return &dynamo.Result{
		States: []dynamo.State{
			{1, 0, 0.1},
			{0.9, 0.279, 0.1 - 8.0/3.0*0.1*0.01},
		},
		Times:   []float64{0, 0.01},
		Metrics: map[string]float64{"stability": 1},
	}
}

func sampleSpec() RunSpec {
	return RunSpec{
		Model:      "lorenz",
		Integrator: "euler",
		Dt:         0.01,
		Steps:      1,
		Params:     map[string]float64{"sigma": 10, "rho": 28, "beta": 8.0 / 3.0},
		InitState:  []float64{1, 0, 0.1},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	result := sampleResult()
	runID, err := st.Save(sampleSpec(), result)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "lorenz_"), "run id %q", runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, meta.ID)
	assert.Equal(t, "lorenz", meta.Model)
	assert.Equal(t, 2, meta.Samples)
	assert.Equal(t, 8.0/3.0, meta.Params["beta"])
	assert.Equal(t, 1.0, meta.Metrics["stability"])

	states, times, err := st.LoadStates(runID)
	require.NoError(t, err)
	assert.Equal(t, result.States, states, "states must round-trip exactly")
	assert.Equal(t, result.Times, times)
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	first, err := st.Save(sampleSpec(), sampleResult())
	require.NoError(t, err)
	second, err := st.Save(sampleSpec(), sampleResult())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	require.NoError(t, os.MkdirAll(filepath.Join(st.baseDir, "junk"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStoreListMissingDir(t *testing.T) {
	runs, err := New(filepath.Join(t.TempDir(), "nope")).List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreLoadUnknown(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Load("missing")
	assert.Error(t, err)
	_, _, err = st.LoadStates("missing")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []dynamo.State{{1, 0, 0.1}}, []float64{0}))
	assert.Equal(t, "time,x0,x1,x2\n0,1,0,0.1\n", buf.String())
}

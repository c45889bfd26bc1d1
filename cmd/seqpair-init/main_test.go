package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/floorplan/fplanio"
	"github.com/stretchr/testify/require"
)

func TestRun_ValidInputProducesPlacementInfo(t *testing.T) {
	input := `{"blocks":[
		{"name":"A","variants":[{"width":4,"height":2,"is_default":true}]},
		{"name":"B","variants":[{"width":2,"height":2,"is_default":true}]}
	]}`

	var out bytes.Buffer
	require.NoError(t, run(bytes.NewBufferString(input), &out))

	var record fplanio.OutputRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	require.NotNil(t, record.SequencePair)
	require.Equal(t, []string{"A", "B"}, record.SequencePair.RPlus)
	require.NotNil(t, record.SequencePair.PlacementInfo)
	require.Equal(t, 2, record.SequencePair.PlacementInfo.TotalBlocks)
	require.Equal(t, "sequence_pair_based", record.SequencePair.PlacementInfo.PlacementMethod)
	require.NotNil(t, record.OptimizationResults)
}

func TestRun_MalformedInputWritesErrorRecord(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(bytes.NewBufferString("not json at all"), &out))

	var errRec fplanio.ErrorRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &errRec))
	require.NotEmpty(t, errRec.Error)
}

func TestRun_MissingVariantsWritesErrorRecord(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(bytes.NewBufferString(`{"blocks":[{"name":"A","variants":[]}]}`), &out))

	var errRec fplanio.ErrorRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &errRec))
	require.NotEmpty(t, errRec.Error)
}

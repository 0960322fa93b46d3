package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lassik/thirdc/internal/fileinput"
)

func TestReadAllDrainsSingleReader(t *testing.T) {
	in := &fileinput.Input{Queue: []io.Reader{strings.NewReader("dup drop")}}
	got, err := in.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "dup drop", string(got))
}

func TestReadAllConcatenatesQueue(t *testing.T) {
	in := &fileinput.Input{Queue: []io.Reader{
		strings.NewReader("abc"),
		strings.NewReader("def"),
	}}
	got, err := in.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(got))
}

func TestReadAllPreservesNullBytes(t *testing.T) {
	in := &fileinput.Input{Queue: []io.Reader{strings.NewReader("a\x00b")}}
	got, err := in.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []byte("a\x00b"), got)
}

func TestReadAllOnEmptyQueueYieldsEmptySlice(t *testing.T) {
	in := &fileinput.Input{}
	got, err := in.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInputTracksLineNumberAcrossReads(t *testing.T) {
	in := &fileinput.Input{Queue: []io.Reader{strings.NewReader("one\ntwo\n")}}
	_, err := in.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, 3, in.Scan.Line)
}

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePG = "parity 1;\n0 0 0 1 \"v0\";\n1 1 0 0 \"v1\";\n"

const sampleHOA = `HOA: v1
States: 1
Start: 0
AP: 0
acc-name: parity max even 1
Acceptance: 1 Inf(0)
spot-state-player: 0
controllable-AP:
--BODY--
State: 0
[t] 0 {0}
--END--
`

func TestDetectFormatRecognizesHOA(t *testing.T) {
	f, err := detectFormat([]byte(sampleHOA))
	require.NoError(t, err)
	require.Equal(t, formatHOA, f)
}

func TestDetectFormatRecognizesPGSolver(t *testing.T) {
	f, err := detectFormat([]byte(samplePG))
	require.NoError(t, err)
	require.Equal(t, formatPG, f)
}

func TestDetectFormatSkipsBlankLines(t *testing.T) {
	f, err := detectFormat([]byte("\n\n  \n" + samplePG))
	require.NoError(t, err)
	require.Equal(t, formatPG, f)
}

func TestDetectFormatRejectsUnknownHeader(t *testing.T) {
	_, err := detectFormat([]byte("not a game format\n"))
	require.Error(t, err)
}

func TestDetectFormatRejectsEmptyInput(t *testing.T) {
	_, err := detectFormat([]byte("   \n\n"))
	require.Error(t, err)
}

func TestReadArenaRoundTripsPGSolver(t *testing.T) {
	a, doc, format, err := readArena(strings.NewReader(samplePG))
	require.NoError(t, err)
	require.Equal(t, formatPG, format)
	require.Nil(t, doc)
	require.NotNil(t, a)

	var sb strings.Builder
	require.NoError(t, writeArena(&sb, a, doc, format))
	require.Contains(t, sb.String(), "parity 1;")
}

func TestReadArenaRoundTripsHOA(t *testing.T) {
	a, doc, format, err := readArena(strings.NewReader(sampleHOA))
	require.NoError(t, err)
	require.Equal(t, formatHOA, format)
	require.NotNil(t, doc)
	require.NotNil(t, a)

	var sb strings.Builder
	require.NoError(t, writeArena(&sb, a, doc, format))
	require.Contains(t, sb.String(), "HOA: v1")
}

func TestWriteArenaRejectsHOAWithoutDoc(t *testing.T) {
	a, _, _, err := readArena(strings.NewReader(samplePG))
	require.NoError(t, err)

	var sb strings.Builder
	err = writeArena(&sb, a, nil, formatHOA)
	require.Error(t, err)
}

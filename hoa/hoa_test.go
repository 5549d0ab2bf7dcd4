package hoa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vparity/pargame/arena"
)

const sampleDoc = `HOA: v1
States: 2
Start: 0
AP: 1 "a"
acc-name: parity max even 1
Acceptance: 1 Inf(0)
spot-state-player: 1 0
controllable-AP: 0
--BODY--
State: 0
[0] 1 {0}
State: 1
[!0] 0 {1}
--END--
`

func TestParseMaterializesEdgeNodes(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.Equal(t, 2, doc.States)
	require.Equal(t, arena.VertexID(0), doc.Start)
	require.Equal(t, []string{"a"}, doc.APNames)
	require.Equal(t, []int{0}, doc.ControllableAP)
	require.Equal(t, 1, doc.Arena.NumObjectives())

	owner0, err := doc.Arena.Owner(0)
	require.NoError(t, err)
	require.Equal(t, arena.Player0, owner0)
	owner1, err := doc.Arena.Owner(1)
	require.NoError(t, err)
	require.Equal(t, arena.Player1, owner1)

	succ0, err := doc.Arena.Successors(0)
	require.NoError(t, err)
	require.Len(t, succ0, 1)
	edgeNode := succ0[0]
	require.Equal(t, arena.VertexID(2), edgeNode)

	edgeOwner, err := doc.Arena.Owner(edgeNode)
	require.NoError(t, err)
	require.Equal(t, arena.EdgeNode, edgeOwner)
	require.Equal(t, "0", doc.Arena.Label(edgeNode))

	c, err := doc.Arena.Color(0, edgeNode)
	require.NoError(t, err)
	require.Equal(t, arena.Color(0), c)

	edgeSucc, err := doc.Arena.Successors(edgeNode)
	require.NoError(t, err)
	require.Equal(t, []arena.VertexID{1}, edgeSucc)
}

func TestParseMissingHeaderErrors(t *testing.T) {
	_, err := Parse(strings.NewReader("States: 1\n"))
	require.ErrorIs(t, err, ErrMissingHeader)
}

func TestParseMissingFieldErrors(t *testing.T) {
	missing := strings.Replace(sampleDoc, "spot-state-player: 1 0\n", "", 1)
	_, err := Parse(strings.NewReader(missing))
	require.ErrorIs(t, err, ErrMissingField)
}

func TestParseAcceptanceArityMismatchErrors(t *testing.T) {
	mismatched := strings.Replace(sampleDoc, "[!0] 0 {1}", "[!0] 0 {0 1}", 1)
	_, err := Parse(strings.NewReader(mismatched))
	require.ErrorIs(t, err, ErrAcceptanceArityMismatch)
}

func TestWriteThenParseRoundTrips(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, doc))

	got, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)

	require.Equal(t, doc.States, got.States)
	require.Equal(t, doc.Start, got.Start)
	require.Equal(t, doc.ControllableAP, got.ControllableAP)
	require.Equal(t, doc.Arena.NumObjectives(), got.Arena.NumObjectives())

	for id := arena.VertexID(0); id < arena.VertexID(doc.States); id++ {
		wantOwner, _ := doc.Arena.Owner(id)
		gotOwner, err := got.Arena.Owner(id)
		require.NoError(t, err)
		require.Equal(t, wantOwner, gotOwner)

		wantSucc, _ := doc.Arena.Successors(id)
		gotSucc, err := got.Arena.Successors(id)
		require.NoError(t, err)
		require.Len(t, gotSucc, len(wantSucc))

		for i, wantEdge := range wantSucc {
			gotEdge := gotSucc[i]
			require.Equal(t, doc.Arena.Label(wantEdge), got.Arena.Label(gotEdge))

			wantTarget, _ := doc.Arena.Successors(wantEdge)
			gotTarget, err := got.Arena.Successors(gotEdge)
			require.NoError(t, err)
			require.Equal(t, wantTarget, gotTarget)

			for obj := 0; obj < doc.Arena.NumObjectives(); obj++ {
				wantColor, _ := doc.Arena.Color(obj, wantEdge)
				gotColor, err := got.Arena.Color(obj, gotEdge)
				require.NoError(t, err)
				require.Equal(t, wantColor, gotColor)
			}
		}
	}
}

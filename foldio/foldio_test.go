package foldio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/layerorder/foldio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareJSON is a single flat-unfolded unit square, the minimal valid
// FOLD document: one face, four boundary edges, no creases.
const squareJSON = `{
  "file_spec": 1.1,
  "file_creator": "layerorder test fixture",
  "frame_unit": "unit",
  "vertices_coords": [[0,0,0],[1,0,0],[1,1,0],[0,1,0]],
  "edges_vertices": [[0,1],[1,2],[2,3],[3,0]],
  "edges_assignment": ["B","B","B","B"],
  "faces_vertices": [[0,1,2,3]],
  "faces_edges": [[0,1,2,3]],
  "faceOrders": [[0,0,1]]
}`

func TestRead_ParsesSquareDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.fold")
	require.NoError(t, os.WriteFile(path, []byte(squareJSON), 0o644))

	doc, err := foldio.Read(path)
	require.NoError(t, err)

	assert.Equal(t, "layerorder test fixture", doc.FileCreator)
	assert.Equal(t, [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, doc.VerticesCoords)
	assert.Equal(t, []string{"B", "B", "B", "B"}, doc.EdgesAssignment)
	require.Len(t, doc.FaceOrders, 1)
	assert.Equal(t, foldio.OrderHint{0, 0, 1}, doc.FaceOrders[0])

	// A malformed dump here would be unreadable junk; spew's output must
	// at least name the FacesVertices field for a human skimming -v logs.
	dump := spew.Sdump(doc)
	assert.Contains(t, dump, "FacesVertices")
}

func TestDocument_ToRecord_BuildsAValidatableRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.fold")
	require.NoError(t, os.WriteFile(path, []byte(squareJSON), 0o644))

	doc, err := foldio.Read(path)
	require.NoError(t, err)

	r, err := doc.ToRecord()
	require.NoError(t, err)
	require.NoError(t, r.Validate())
	require.NoError(t, r.BuildDerived())

	assert.Equal(t, 1, r.NumFaces())
	assert.Equal(t, 4, r.NumEdges())
}

func TestToRecord_RejectsInvalidAssignmentCode(t *testing.T) {
	doc := &foldio.Document{
		VerticesCoords:  [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		EdgesVertices:   [][2]int{{0, 1}, {1, 2}, {2, 0}},
		EdgesAssignment: []string{"B", "Z", "B"},
		FacesVertices:   [][]int{{0, 1, 2}},
		FacesEdges:      [][]int{{0, 1, 2}},
	}

	_, err := doc.ToRecord()
	require.Error(t, err)
	assert.ErrorIs(t, err, foldio.ErrInvalidAssignment)
}

func TestFromRecord_WriteRead_RoundTripsGeometry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.fold")
	require.NoError(t, os.WriteFile(path, []byte(squareJSON), 0o644))

	orig, err := foldio.Read(path)
	require.NoError(t, err)
	r, err := orig.ToRecord()
	require.NoError(t, err)

	out := foldio.FromRecord(r)
	outPath := filepath.Join(dir, "roundtrip.fold")
	require.NoError(t, foldio.Write(outPath, out))

	reread, err := foldio.Read(outPath)
	require.NoError(t, err)
	assert.Equal(t, orig.VerticesCoords, reread.VerticesCoords)
	assert.Equal(t, orig.EdgesVertices, reread.EdgesVertices)
	assert.Equal(t, orig.EdgesAssignment, reread.EdgesAssignment)
	assert.Equal(t, orig.FacesVertices, reread.FacesVertices)
}

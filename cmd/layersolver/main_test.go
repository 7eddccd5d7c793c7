package main

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/layerorder/layersolver"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeFor_MapsEveryKindPerSpec(t *testing.T) {
	cases := []struct {
		kind layersolver.Kind
		want int
	}{
		{layersolver.KindSchemaError, exitGeometricError},
		{layersolver.KindInconsistencyError, exitGeometricError},
		{layersolver.KindDegenerateGeometry, exitGeometricError},
		{layersolver.KindUnsatisfiable, exitUnsatisfiable},
		{layersolver.KindSolverFailure, exitArgOrIOError},
	}

	for _, c := range cases {
		err := &layersolver.Error{Kind: c.kind, Err: fmt.Errorf("boom")}
		assert.Equal(t, c.want, exitCodeFor(err), "kind %v", c.kind)
	}
}

func TestExitCodeFor_NonLayersolverError_ArgOrIOError(t *testing.T) {
	assert.Equal(t, exitArgOrIOError, exitCodeFor(fmt.Errorf("plain error")))
}

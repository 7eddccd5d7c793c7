package planearrangement_test

import (
	"testing"

	"github.com/katalvlaran/layerorder/planearrangement"
	"github.com/stretchr/testify/assert"
)

func TestCompute_AlwaysReturnsNotImplemented(t *testing.T) {
	_, err := planearrangement.Compute(nil, nil, 0)
	assert.ErrorIs(t, err, planearrangement.ErrNotImplemented)
}

package glx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAsByteSlice(t *testing.T) {
	vertices := []mgl32.Vec3{
		{-0.5, -0.5, 0.0},
		{0.5, -0.5, 0.0},
		{0.0, 0.5, 0.0},
	}

	data := AsByteSlice(vertices)

	// three records of three 4-byte components, tightly packed
	assert.Len(t, data, 3*3*4)
}

func TestAsByteSliceEmpty(t *testing.T) {
	assert.Nil(t, AsByteSlice([]mgl32.Vec3(nil)))
}

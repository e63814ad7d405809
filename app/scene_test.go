package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbue/glint/glx"
)

func TestNewSceneStartupSequence(t *testing.T) {
	rec := &glx.Recorder{}

	scene, err := NewScene(rec)
	require.NoError(t, err)
	require.NotNil(t, scene)

	assert.Equal(t, []string{
		"GenVertexArray() = 1",
		"BindVertexArray(1)",
		"GenBuffer() = 2",
		"BindBuffer(34962, 2)",
		"BufferData(34962, 36 bytes, 35044)",
		"VertexAttribPointer(0, 3, 5126, false, 12, 0)",
		"EnableVertexAttribArray(0)",
		"CreateShader(35633) = 3",
		"ShaderSource(3)",
		"CompileShader(3)",
		"CreateShader(35632) = 4",
		"ShaderSource(4)",
		"CompileShader(4)",
		"CreateProgram() = 5",
		"AttachShader(5, 3)",
		"AttachShader(5, 4)",
		"LinkProgram(5)",
		"DeleteShader(4)",
		"DeleteShader(3)",
		"UseProgram(5)",
	}, rec.Calls)
}

func TestNewSceneAbortsOnCompileFailure(t *testing.T) {
	rec := &glx.Recorder{
		CompileFailures: map[string]string{
			vertexShaderSource: "0:3(5): error: syntax error, unexpected IDENTIFIER",
		},
	}

	_, err := NewScene(rec)

	var compileErr *glx.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, glx.VertexStage, compileErr.Stage)
	assert.NotEmpty(t, compileErr.Log)

	// nothing gets linked or drawn, and the half-built scene is torn down
	assert.Equal(t, 0, rec.Count("LinkProgram"))
	assert.Equal(t, 0, rec.Count("DrawArrays"))
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
	assert.Equal(t, 1, rec.Count("DeleteVertexArray"))
}

func TestSceneDraw(t *testing.T) {
	rec := &glx.Recorder{}

	scene, err := NewScene(rec)
	require.NoError(t, err)

	rec.Calls = nil
	scene.Draw(rec)

	assert.Equal(t, []string{
		"ClearColor(0.2, 0.3, 0.3, 1)",
		"Clear(16384)",
		"DrawArrays(4, 0, 3)",
	}, rec.Calls)
}

func TestSceneRelease(t *testing.T) {
	rec := &glx.Recorder{}

	scene, err := NewScene(rec)
	require.NoError(t, err)

	scene.Release()

	assert.Equal(t, 1, rec.Count("DeleteProgram"))
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
	assert.Equal(t, 1, rec.Count("DeleteVertexArray"))
}

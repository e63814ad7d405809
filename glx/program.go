package glx

// Program owns one linked, executable shader pipeline.
type Program struct {
	api API
	id  uint32
}

func NewProgram(api API) (*Program, error) {
	id := api.CreateProgram()
	if id == 0 {
		return nil, &CreateError{Resource: "program"}
	}

	return registerWithGC(&Program{api: api, id: id}), nil
}

// Attach associates a compiled shader with the program. Problems with
// the combination only surface at link time.
func (p *Program) Attach(shader *Shader) {
	p.api.AttachShader(p.id, shader.id)
}

// Link links all attached shaders. On failure the driver's link log is
// returned as a *LinkError.
func (p *Program) Link() error {
	p.api.LinkProgram(p.id)

	if p.api.ProgramParameter(p.id, LinkStatus) == False {
		return &LinkError{Log: p.api.ProgramInfoLog(p.id)}
	}

	return nil
}

// Use makes this program active for subsequent draw calls.
func (p *Program) Use() {
	p.api.UseProgram(p.id)
}

// Release deletes the program. Calling it twice is a no-op.
func (p *Program) Release() {
	if p.id == 0 {
		return
	}

	p.api.DeleteProgram(p.id)
	p.id = 0
}

func (p *Program) isReleased() bool {
	return p.id == 0
}

// BuildProgram compiles both stages, links them into a program and
// releases the stage shaders. This is the whole shader build pipeline as
// one step, the intermediate shader objects are not needed after linking.
func BuildProgram(api API, vertexSource, fragmentSource string) (*Program, error) {
	vertex, err := NewShader(api, VertexStage, vertexSource)
	if err != nil {
		return nil, err
	}

	defer vertex.Release()

	fragment, err := NewShader(api, FragmentStage, fragmentSource)
	if err != nil {
		return nil, err
	}

	defer fragment.Release()

	program, err := NewProgram(api)
	if err != nil {
		return nil, err
	}

	program.Attach(vertex)
	program.Attach(fragment)

	if err := program.Link(); err != nil {
		program.Release()
		return nil, err
	}

	return program, nil
}

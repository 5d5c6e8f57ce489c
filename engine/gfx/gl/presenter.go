package glbackend

import (
	"embed"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/sirupsen/logrus"

	"github.com/hubastard/pixelgrove/engine/assets"
)

var log = logrus.WithField("component", "gl")

//go:embed shaders/*
var shaderFS embed.FS

// Presenter uploads a packed ARGB frame to a texture and draws it over the whole
// framebuffer with nearest filtering, so each surface pixel becomes a crisp
// scale x scale block.
type Presenter struct {
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	uFrame  int32
	texW    int
	texH    int
}

// NewPresenter needs a current GL context.
func NewPresenter() (*Presenter, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.WithField("version", gl.GoStr(gl.GetString(gl.VERSION))).Info("GL context ready")

	p := &Presenter{}
	if err := p.init(); err != nil {
		p.Shutdown()
		return nil, err
	}
	return p, nil
}

func (p *Presenter) init() error {
	vs, err := assets.ReadShader(shaderFS, "shaders/present.vert")
	if err != nil {
		return err
	}
	fs, err := assets.ReadShader(shaderFS, "shaders/present.frag")
	if err != nil {
		return err
	}
	p.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}
	p.uFrame = gl.GetUniformLocation(p.program, gl.Str("uFrame\x00"))

	// Triangle strip covering clip space. V is flipped so row 0 of the frame is
	// the top of the window.
	verts := []float32{
		//  X,    Y,   U,   V
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, 1, 1, 0,
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	const stride = 4 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &p.tex)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Present draws a width x height frame into a fbW x fbH framebuffer.
func (p *Presenter) Present(pixels []uint32, width, height, fbW, fbH int) error {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return fmt.Errorf("present: %d pixels for a %dx%d frame", len(pixels), width, height)
	}

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	// 0xAARRGGBB words read as BGRA with the reversed packed type on any endianness.
	if width != p.texW || height != p.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
			gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, gl.Ptr(pixels))
		p.texW, p.texH = width, height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height),
			gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, gl.Ptr(pixels))
	}

	gl.UseProgram(p.program)
	gl.Uniform1i(p.uFrame, 0)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("present: gl error 0x%04x", code)
	}
	return nil
}

func (p *Presenter) Shutdown() {
	if p.tex != 0 {
		gl.DeleteTextures(1, &p.tex)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(msg))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", msg)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(msg))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", msg)
	}
	return prog, nil
}

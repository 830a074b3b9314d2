package displace

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// Evaluator displaces points of a tessellated patch according to a Config.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	config  Config
	sampler Sampler
	step    float64
	log     *zap.Logger
}

// New creates an Evaluator from a validated copy of config.
func New(config *Config) (*Evaluator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Evaluator{
		config:  *config,
		sampler: samplerFor(config.Mode, config.Amplitude),
		step:    config.Step(),
		log:     log.With(zap.Stringer("mode", config.Mode)),
	}, nil
}

func samplerFor(mode Mode, amplitude float64) Sampler {
	switch mode {
	case ModeBump:
		return NewPeakTent(amplitude)
	case ModeRidge:
		return RidgeSampler{Amplitude: amplitude}
	default:
		return ConstantSampler{}
	}
}

// Config returns a copy of the evaluator's configuration.
func (e *Evaluator) Config() Config {
	return e.config
}

// Sampler returns the field the evaluator interpolates.
func (e *Evaluator) Sampler() Sampler {
	return e.sampler
}

// Height returns the displacement at (u, v) in displacement-cell units.
func (e *Evaluator) Height(u, v float64) float64 {
	st := newStencil(u, v, e.sampler, e.step)
	value := EvaluateLocal(&st.grid, st.s, st.t)

	if ce := e.log.Check(zap.DebugLevel, "evaluated height"); ce != nil {
		ce.Write(
			zap.Float64("u", u),
			zap.Float64("v", v),
			zap.Float64s("grid", st.grid[:]),
			zap.Float64("value", value),
		)
	}
	return value
}

// Gradient returns the displacement and its partial derivatives at (u, v)
// in displacement-cell units.
func (e *Evaluator) Gradient(u, v float64) Result {
	st := newStencil(u, v, e.sampler, e.step)
	res := gradient(&st, e.step)

	if ce := e.log.Check(zap.DebugLevel, "evaluated gradient"); ce != nil {
		ce.Write(
			zap.Float64("u", u),
			zap.Float64("v", v),
			zap.Float64s("grid", st.grid[:]),
			zap.Float64("value", res.Value),
			zap.Float64("du", res.DU),
			zap.Float64("dv", res.DV),
		)
	}
	return res
}

// Vertex is a point of a tessellated patch. U and V are patch coordinates in
// [0, 1]. TangentU and TangentV are ∂Position/∂U and ∂Position/∂V.
type Vertex struct {
	Position r3.Vec
	Normal   r3.Vec
	TangentU r3.Vec
	TangentV r3.Vec
	U, V     float64
}

// Displace moves the vertex along its normal by the surface height and tilts
// the normal to follow the displaced surface. Vertices whose tangents are
// degenerate keep their normal.
func (e *Evaluator) Displace(vtx Vertex) Vertex {
	tile := e.config.TileSize
	g := e.Gradient(tile*vtx.U, tile*vtx.V)

	n := r3.Unit(vtx.Normal)
	out := vtx
	out.Position = r3.Add(vtx.Position, r3.Scale(g.Value, n))

	// d/dU of h(tile·U) is tile·h'.
	tu := r3.Add(vtx.TangentU, r3.Scale(tile*g.DU, n))
	tv := r3.Add(vtx.TangentV, r3.Scale(tile*g.DV, n))
	out.TangentU, out.TangentV = tu, tv

	cross := r3.Cross(tu, tv)
	if r3.Norm(cross) == 0 {
		out.Normal = n
		return out
	}
	normal := r3.Unit(cross)
	if r3.Dot(normal, n) < 0 {
		normal = r3.Scale(-1, normal)
	}
	out.Normal = normal
	return out
}

// Tessellate samples heights on a (level+1)×(level+1) vertex lattice spanning
// one patch. level must be in [1, 64].
func (e *Evaluator) Tessellate(level int) (*Heightfield, error) {
	if level < minTessellationLevel || level > maxTessellationLevel {
		return nil, fmt.Errorf("%w: tessellation level %d out of range (%d to %d)",
			ErrInvalidConfig, level, minTessellationLevel, maxTessellationLevel)
	}

	size := level + 1
	hf := &Heightfield{
		Level:   level,
		Heights: make([]float64, size*size),
	}
	tile := e.config.TileSize
	for i := range size {
		v := float64(i) / float64(level)
		for j := range size {
			u := float64(j) / float64(level)
			hf.Heights[i*size+j] = e.Height(tile*u, tile*v)
		}
	}

	e.log.Debug("tessellated patch",
		zap.Int("level", level),
		zap.Float64("min", hf.Min()),
		zap.Float64("max", hf.Max()),
	)
	return hf, nil
}

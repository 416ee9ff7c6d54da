package sample

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/asherban/codiculum/sample/config"
)

// ErrMissingDependency is returned by Build when a required dependency was never injected.
var ErrMissingDependency = errors.New("sample: missing required dependency")

// Program prints a MyClass built from Config.Value, then the sum of Config.A and Config.B.
type Program struct {
	cfg    config.Config
	out    io.Writer   // required
	logger *zap.Logger // optional, defaults to a no-op logger
}

// NewProgram is the constructor used by ProgramBuilder.
func NewProgram(cfg config.Config) *Program { return &Program{cfg: cfg} }

// SetLogger replaces the program logger. A nil logger is ignored.
func (p *Program) SetLogger(l *zap.Logger) {
	if l != nil {
		p.logger = l
	}
}

// Run executes the program steps in order, stopping at the first failure.
func (p *Program) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"print value", p.printValue},
		{"print sum", p.printSum},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "before %s", s.name)
		}
		p.logger.Debug("running step", zap.String("step", s.name))
		if err := s.fn(); err != nil {
			p.logger.Error("step failed", zap.String("step", s.name), zap.Error(err))
			return errors.Wrap(err, s.name)
		}
	}
	return nil
}

func (p *Program) printValue() error {
	obj := NewMyClass(p.cfg.Value)
	p.logger.Debug("constructed MyClass", zap.Int("value", obj.Value))
	return obj.PrintValue(p.out)
}

func (p *Program) printSum() error {
	sum := Add(p.cfg.A, p.cfg.B)
	p.logger.Debug("computed sum", zap.Int("a", p.cfg.A), zap.Int("b", p.cfg.B), zap.Int("sum", sum))
	return PrintSum(p.out, sum)
}

// ProgramBuilder wires a Program explicitly.
//
//	prog, err := sample.NewProgramBuilder(cfg).
//		InjectOutput(os.Stdout).
//		BuildWith(reg)
type ProgramBuilder struct {
	impl   *Program
	hasOut bool
}

// NewProgramBuilder constructs the underlying Program with cfg.
func NewProgramBuilder(cfg config.Config) *ProgramBuilder {
	return &ProgramBuilder{impl: NewProgram(cfg)}
}

// InjectOutput sets the writer the program prints to. Required.
func (b *ProgramBuilder) InjectOutput(w io.Writer) *ProgramBuilder {
	b.impl.out = w
	b.hasOut = w != nil
	return b
}

// Inject runs fn against the underlying Program for custom wiring.
func (b *ProgramBuilder) Inject(fn func(*Program)) *ProgramBuilder {
	if fn != nil {
		fn(b.impl)
	}
	return b
}

// Build validates required dependencies without consulting a registry.
func (b *ProgramBuilder) Build() (*Program, error) { return b.BuildWith(nil) }

// BuildWith validates required dependencies and resolves optional ones from reg.
// reg may be nil.
func (b *ProgramBuilder) BuildWith(reg Registry) (*Program, error) {
	if !b.hasOut {
		return nil, errors.Wrap(ErrMissingDependency, "Output")
	}

	if b.impl.logger == nil && reg != nil {
		l, err := LoggerFrom(reg, b.impl.cfg)
		if err != nil {
			return nil, err
		}
		b.impl.logger = l
	}
	if b.impl.logger == nil {
		b.impl.logger = zap.NewNop()
	}
	return b.impl, nil
}

// MustBuild is Build that panics on invalid wiring.
func (b *ProgramBuilder) MustBuild() *Program {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

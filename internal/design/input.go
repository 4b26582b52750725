package design

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/alexiusacademia/gorcm/internal/material"
	"github.com/alexiusacademia/gorcm/internal/nscp"
	"github.com/alexiusacademia/gorcm/internal/section"
)

// Forces holds the factored demand on the member. Moment and torsion in
// kN·m, shear and axial in kN. Axial compression is positive.
type Forces struct {
	Moment  float64 `json:"moment"`
	Shear   float64 `json:"shear"`
	Axial   float64 `json:"axial"`
	Torsion float64 `json:"torsion,omitempty"`
}

// IsZero reports whether no factored demand was supplied at all.
func (f Forces) IsZero() bool {
	return f.Moment == 0 && f.Shear == 0 && f.Axial == 0 && f.Torsion == 0
}

// Loads holds unfactored actions per load type. They are informational
// when Forces is set; when Forces is entirely zero the orchestrator
// factors them through the NSCP load combinations instead.
type Loads struct {
	Moment nscp.LoadCase `json:"moment,omitempty"`
	Shear  nscp.LoadCase `json:"shear,omitempty"`
	Axial  nscp.LoadCase `json:"axial,omitempty"`
}

// IsZero reports whether all unfactored actions are zero.
func (l Loads) IsZero() bool {
	return l.Moment == (nscp.LoadCase{}) && l.Shear == (nscp.LoadCase{}) && l.Axial == (nscp.LoadCase{})
}

// ExposureClass orders environmental exposure from mild to extreme. It
// drives the default crack-width limit.
type ExposureClass int

const (
	ExposureMild ExposureClass = iota
	ExposureModerate
	ExposureSevere
	ExposureExtreme
)

var exposureNames = map[ExposureClass]string{
	ExposureMild:     "mild",
	ExposureModerate: "moderate",
	ExposureSevere:   "severe",
	ExposureExtreme:  "extreme",
}

// Default crack-width limits per exposure class (mm).
var exposureCrackLimits = map[ExposureClass]float64{
	ExposureMild:     0.41,
	ExposureModerate: 0.33,
	ExposureSevere:   0.25,
	ExposureExtreme:  0.15,
}

// ParseExposureClass parses a textual exposure class.
func ParseExposureClass(s string) (ExposureClass, error) {
	for e, name := range exposureNames {
		if name == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("invalid exposure class: %q", s)
}

func (e ExposureClass) String() string {
	if name, ok := exposureNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ExposureClass(%d)", int(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e ExposureClass) MarshalText() ([]byte, error) {
	name, ok := exposureNames[e]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid ExposureClass value: %d", int(e))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *ExposureClass) UnmarshalText(text []byte) error {
	parsed, err := ParseExposureClass(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Constraints holds the optional serviceability limits. Zero values
// mean "use the default".
type Constraints struct {
	// Deflection limit as span/N; 0 means the 360 default.
	DeflectionLimitDenominator float64 `json:"deflectionLimitDenominator,omitempty"`
	// Crack-width limit in mm; 0 means the exposure-class default.
	CrackWidthLimit float64 `json:"crackWidthLimit,omitempty"`
	Exposure        ExposureClass `json:"exposure,omitempty"`
}

// DeflectionDenominator returns the effective span/N denominator.
func (c Constraints) DeflectionDenominator() float64 {
	if c.DeflectionLimitDenominator > 0 {
		return c.DeflectionLimitDenominator
	}
	return 360
}

// CrackLimit returns the effective crack-width limit (mm).
func (c Constraints) CrackLimit() float64 {
	if c.CrackWidthLimit > 0 {
		return c.CrackWidthLimit
	}
	return exposureCrackLimits[c.Exposure]
}

// DesignInput is the complete, immutable description of one member
// design problem.
type DesignInput struct {
	Kind        section.Kind        `json:"elementKind"`
	Geometry    section.Rectangular `json:"geometry"`
	Material    material.Set        `json:"material"`
	Loads       Loads               `json:"loads,omitempty"`
	Forces      Forces              `json:"forces"`
	Constraints Constraints         `json:"constraints,omitempty"`
}

// InputError reports a precondition violation on a single input field.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("design input: %s: %s", e.Field, e.Message)
}

func fieldErr(field, format string, args ...any) error {
	return &InputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the hard preconditions of the engine. Every violated
// field is reported; the aggregate error combines them all. Out-of-
// code-range (but structurally valid) values pass; judging those is
// the caller's job, not the engine's.
func (in DesignInput) Validate() error {
	var err error

	if !(in.Geometry.Width > 0) {
		err = multierr.Append(err, fieldErr("geometry.width", "must be positive, got %.2f", in.Geometry.Width))
	}
	if !(in.Geometry.Height > 0) {
		err = multierr.Append(err, fieldErr("geometry.height", "must be positive, got %.2f", in.Geometry.Height))
	}
	if in.Geometry.ClearCover < 0 {
		err = multierr.Append(err, fieldErr("geometry.clearCover", "must not be negative, got %.2f", in.Geometry.ClearCover))
	}
	if in.Geometry.Height > 0 && in.Geometry.ClearCover >= in.Geometry.Height/2 {
		err = multierr.Append(err, fieldErr("geometry.clearCover", "leaves no effective depth (cover %.0f vs height %.0f)", in.Geometry.ClearCover, in.Geometry.Height))
	}
	if in.Geometry.Span < 0 {
		err = multierr.Append(err, fieldErr("geometry.span", "must not be negative, got %.2f", in.Geometry.Span))
	}
	if !(in.Material.Concrete.Fc > 0) {
		err = multierr.Append(err, fieldErr("material.concrete.fc", "must be positive, got %.2f", in.Material.Concrete.Fc))
	}
	if !(in.Material.Steel.Fy > 0) {
		err = multierr.Append(err, fieldErr("material.steel.fy", "must be positive, got %.2f", in.Material.Steel.Fy))
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"forces.moment", in.Forces.Moment},
		{"forces.shear", in.Forces.Shear},
		{"forces.axial", in.Forces.Axial},
		{"forces.torsion", in.Forces.Torsion},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			err = multierr.Append(err, fieldErr(f.name, "must be finite"))
		}
	}

	return err
}

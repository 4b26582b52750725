// Package job runs batch member design from a YAML job file. Members
// are independent by construction, so they are designed concurrently.
package job

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gorcm/internal/design"
	"github.com/alexiusacademia/gorcm/internal/material"
	"github.com/alexiusacademia/gorcm/internal/nscp"
	"github.com/alexiusacademia/gorcm/internal/section"
)

// Member is one YAML job entry.
type Member struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	Geometry struct {
		Width      float64 `yaml:"width"`
		Height     float64 `yaml:"height"`
		ClearCover float64 `yaml:"clearCover"`
		Span       float64 `yaml:"span"`
	} `yaml:"geometry"`

	Material struct {
		Fc float64 `yaml:"fc"`
		Fy float64 `yaml:"fy"`
	} `yaml:"material"`

	Forces struct {
		Moment  float64 `yaml:"moment"`
		Shear   float64 `yaml:"shear"`
		Axial   float64 `yaml:"axial"`
		Torsion float64 `yaml:"torsion"`
	} `yaml:"forces"`

	Loads struct {
		Moment loadCase `yaml:"moment"`
		Shear  loadCase `yaml:"shear"`
		Axial  loadCase `yaml:"axial"`
	} `yaml:"loads"`

	Constraints struct {
		DeflectionLimit float64 `yaml:"deflectionLimit"` // span/N denominator
		CrackWidthLimit float64 `yaml:"crackWidthLimit"` // mm
		Exposure        string  `yaml:"exposure"`
	} `yaml:"constraints"`
}

type loadCase struct {
	Dead       float64 `yaml:"dead"`
	Live       float64 `yaml:"live"`
	Roof       float64 `yaml:"roof"`
	Wind       float64 `yaml:"wind"`
	Earthquake float64 `yaml:"earthquake"`
	Rain       float64 `yaml:"rain"`
}

func (l loadCase) toCase() nscp.LoadCase {
	return nscp.LoadCase{
		Dead:       l.Dead,
		Live:       l.Live,
		Roof:       l.Roof,
		Wind:       l.Wind,
		Earthquake: l.Earthquake,
		Rain:       l.Rain,
	}
}

// Job is a named collection of members to design.
type Job struct {
	Name    string   `yaml:"name"`
	Members []Member `yaml:"members"`
}

// Load reads and validates a YAML job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	if len(j.Members) == 0 {
		return nil, fmt.Errorf("job file %s has no members", path)
	}
	for i, m := range j.Members {
		if m.Name == "" {
			return nil, fmt.Errorf("job file %s: member %d has no name", path, i+1)
		}
	}
	return &j, nil
}

// Input converts a job member to a DesignInput. An unknown kind or
// exposure class is an error here, before the engine runs.
func (m Member) Input() (design.DesignInput, error) {
	var in design.DesignInput

	kind, err := section.ParseKind(m.Kind)
	if err != nil {
		return in, fmt.Errorf("member %s: %w", m.Name, err)
	}

	exposure := design.ExposureMild
	if m.Constraints.Exposure != "" {
		exposure, err = design.ParseExposureClass(m.Constraints.Exposure)
		if err != nil {
			return in, fmt.Errorf("member %s: %w", m.Name, err)
		}
	}

	return design.DesignInput{
		Kind: kind,
		Geometry: section.Rectangular{
			Width:      m.Geometry.Width,
			Height:     m.Geometry.Height,
			ClearCover: m.Geometry.ClearCover,
			Span:       m.Geometry.Span,
		},
		Material: material.Set{
			Concrete: material.Concrete{Fc: m.Material.Fc},
			Steel:    material.Steel{Fy: m.Material.Fy},
		},
		Forces: design.Forces{
			Moment:  m.Forces.Moment,
			Shear:   m.Forces.Shear,
			Axial:   m.Forces.Axial,
			Torsion: m.Forces.Torsion,
		},
		Loads: design.Loads{
			Moment: m.Loads.Moment.toCase(),
			Shear:  m.Loads.Shear.toCase(),
			Axial:  m.Loads.Axial.toCase(),
		},
		Constraints: design.Constraints{
			DeflectionLimitDenominator: m.Constraints.DeflectionLimit,
			CrackWidthLimit:            m.Constraints.CrackWidthLimit,
			Exposure:                   exposure,
		},
	}, nil
}

// MemberResult pairs a member name with its design outcome. Error
// holds a precondition failure; an inadequate but computable design is
// a Result with failing checks, not an Error.
type MemberResult struct {
	Name   string               `json:"name"`
	Result *design.DesignResult `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// Run designs every member concurrently and returns results in member
// order. concurrency <= 0 means one worker per CPU.
func (j *Job) Run(ctx context.Context, concurrency int) []MemberResult {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	results := make([]MemberResult, len(j.Members))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, m := range j.Members {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = MemberResult{Name: m.Name, Error: err.Error()}
				return nil
			}

			results[i] = MemberResult{Name: m.Name}
			in, err := m.Input()
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}

			res, err := design.Design(in)
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			results[i].Result = res
			return nil
		})
	}

	// Workers never return errors; per-member failures are data.
	_ = g.Wait()

	return results
}

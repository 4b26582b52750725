package section

import "fmt"

// Kind identifies the structural element type being designed. It
// selects the code path in the orchestrator; beams and columns share
// most of the pipeline, slabs are designed on a unit strip.
type Kind int

const (
	Beam Kind = iota
	Column
	Slab
)

var kindNames = map[Kind]string{
	Beam:   "beam",
	Column: "column",
	Slab:   "slab",
}

// ParseKind parses a textual element kind (CLI flags, YAML job files).
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid element kind: %q (want beam, column or slab)", s)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler so Kind serializes as
// its name in JSON and YAML.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Kind value: %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

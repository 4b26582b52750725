package job

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const jobYAML = `name: second-floor
members:
  - name: B-1
    kind: beam
    geometry:
      width: 300
      height: 500
      clearCover: 40
      span: 6000
    material:
      fc: 30
      fy: 400
    forces:
      moment: 180
      shear: 120
  - name: B-2
    kind: beam
    geometry:
      width: 300
      height: 500
      clearCover: 40
    material:
      fc: 30
      fy: 400
    loads:
      moment:
        dead: 50
        live: 30
  - name: C-1
    kind: column
    geometry:
      width: 400
      height: 400
      clearCover: 40
    material:
      fc: 28
      fy: 415
    forces:
      axial: 2000
  - name: S-1
    kind: slab
    geometry:
      width: 1000
      height: 150
      clearCover: 20
    material:
      fc: 21
      fy: 275
    forces:
      moment: 25
      shear: 40
`

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	j, err := Load(writeJob(t, jobYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if j.Name != "second-floor" {
		t.Errorf("name = %q, want second-floor", j.Name)
	}
	if len(j.Members) != 4 {
		t.Fatalf("members = %d, want 4", len(j.Members))
	}
	if j.Members[0].Geometry.Span != 6000 {
		t.Errorf("span = %v, want 6000", j.Members[0].Geometry.Span)
	}
	if j.Members[1].Loads.Moment.Dead != 50 {
		t.Errorf("dead moment = %v, want 50", j.Members[1].Loads.Moment.Dead)
	}
}

func TestLoadRejectsEmptyAndUnnamed(t *testing.T) {
	if _, err := Load(writeJob(t, "name: empty\nmembers: []\n")); err == nil {
		t.Error("want error for a job with no members")
	}

	unnamed := "members:\n  - kind: beam\n"
	if _, err := Load(writeJob(t, unnamed)); err == nil {
		t.Error("want error for an unnamed member")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("want error for a missing file")
	}
}

func TestMemberInputRejectsBadKind(t *testing.T) {
	m := Member{Name: "X-1", Kind: "girder"}
	if _, err := m.Input(); err == nil {
		t.Error("want error for an unknown kind")
	} else if !strings.Contains(err.Error(), "X-1") {
		t.Errorf("error %q should name the member", err.Error())
	}
}

func TestRunPreservesOrder(t *testing.T) {
	j, err := Load(writeJob(t, jobYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	results := j.Run(context.Background(), 2)
	if len(results) != 4 {
		t.Fatalf("results = %d, want 4", len(results))
	}

	wantNames := []string{"B-1", "B-2", "C-1", "S-1"}
	for i, want := range wantNames {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, want)
		}
		if results[i].Error != "" {
			t.Errorf("member %s errored: %s", want, results[i].Error)
		}
		if results[i].Result == nil {
			t.Errorf("member %s has no result", want)
		}
	}

	// B-2 was factored from unfactored loads.
	if res := results[1].Result; res != nil {
		if res.Forces.Moment != 108 {
			t.Errorf("B-2 factored moment = %v, want 108", res.Forces.Moment)
		}
		if res.GoverningCombination == "" {
			t.Error("B-2 should report its governing combination")
		}
	}
}

func TestRunIsolatesMemberFailures(t *testing.T) {
	bad := `name: mixed
members:
  - name: OK-1
    kind: beam
    geometry:
      width: 300
      height: 500
      clearCover: 40
    material:
      fc: 30
      fy: 400
    forces:
      moment: 180
  - name: BAD-1
    kind: beam
    geometry:
      width: 0
      height: 500
    material:
      fc: 30
      fy: 400
`
	j, err := Load(writeJob(t, bad))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	results := j.Run(context.Background(), 0)
	if results[0].Error != "" || results[0].Result == nil {
		t.Errorf("OK-1 should succeed, got error %q", results[0].Error)
	}
	if results[1].Error == "" || results[1].Result != nil {
		t.Error("BAD-1 should carry an error and no result")
	}
	if !strings.Contains(results[1].Error, "width") {
		t.Errorf("BAD-1 error %q should mention the width", results[1].Error)
	}
}

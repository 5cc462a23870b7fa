package scoring

import (
	"reflect"
	"testing"
)

func TestMatchSkills_CaseInsensitive(t *testing.T) {
	m := MatchSkills([]string{"Python", "SQL"}, []string{"python", "sql", "go"})
	if m.Count != 2 {
		t.Fatalf("expected 2 matches, got %d", m.Count)
	}
	if m.Fraction != 1.0 {
		t.Fatalf("expected fraction 1.0, got %v", m.Fraction)
	}
	if !reflect.DeepEqual(m.Matched, []string{"python", "sql"}) {
		t.Fatalf("unexpected matched set: %v", m.Matched)
	}
}

func TestMatchSkills_Commutative(t *testing.T) {
	a := []string{"Go", "Docker", "Redis"}
	b := []string{"redis", "go"}
	if MatchSkills(a, b).Count != MatchSkills(b, a).Count {
		t.Fatalf("match count is not commutative")
	}
}

func TestMatchSkills_DuplicatesDoNotInflate(t *testing.T) {
	m := MatchSkills([]string{"go", "go", "GO"}, []string{"go", "go"})
	if m.Count != 1 {
		t.Fatalf("expected 1 match with set semantics, got %d", m.Count)
	}
	if m.Fraction != 1.0 {
		t.Fatalf("expected fraction 1.0, got %v", m.Fraction)
	}
}

func TestMatchSkills_EmptyRequired(t *testing.T) {
	m := MatchSkills(nil, []string{"go"})
	if m.Count != 0 || m.Fraction != 0 {
		t.Fatalf("expected zero result for empty required set, got %+v", m)
	}
}

func TestMatchSkills_InputOrderIrrelevant(t *testing.T) {
	m1 := MatchSkills([]string{"sql", "python"}, []string{"python", "sql"})
	m2 := MatchSkills([]string{"python", "sql"}, []string{"sql", "python"})
	if !reflect.DeepEqual(m1, m2) {
		t.Fatalf("input order changed the result: %+v vs %+v", m1, m2)
	}
}

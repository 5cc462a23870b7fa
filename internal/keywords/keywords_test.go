package keywords

import (
	"reflect"
	"testing"
)

func TestExtract_Empty(t *testing.T) {
	if got := Extract("   "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestExtract_FiltersStopwordsAndShortTokens(t *testing.T) {
	got := Extract("We are looking for a Go developer with Kubernetes")
	want := []string{"developer", "kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtract_LowercasesAndStripsPunctuation(t *testing.T) {
	got := Extract("PostgreSQL, Docker/Terraform!")
	want := []string{"postgresql", "docker", "terraform"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtract_UniqueFirstAppearanceOrder(t *testing.T) {
	got := Extract("python sql python airflow sql")
	want := []string{"python", "sql", "airflow"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtract_DropsBoilerplate(t *testing.T) {
	got := Extract("join our team as the ideal candidate for this role")
	if len(got) != 0 {
		t.Fatalf("expected boilerplate to be filtered, got %v", got)
	}
}

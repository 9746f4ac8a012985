package orchestrator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/engine/orchestrator"
)

func id(name string) domain.Identifier {
	return domain.Identifier{Type: "Maven", Namespace: "org.example", Name: name, Version: "1.0"}
}

func ref(name string, deps ...domain.PackageReference) domain.PackageReference {
	return domain.PackageReference{ID: id(name), Dependencies: deps}
}

func scope(name string, deps ...domain.PackageReference) domain.Scope {
	return domain.Scope{Name: domain.NewInternedString(name), Dependencies: deps}
}

func pkg(name string) domain.CuratedPackage {
	return domain.CuratedPackage{Package: domain.Package{ID: id(name)}}
}

func ids(packages []domain.Package) []string {
	out := make([]string, 0, len(packages))
	for _, p := range packages {
		out = append(out, p.ID.Name)
	}
	return out
}

func TestComputeProjectScanScopes(t *testing.T) {
	projects := []domain.Project{
		{
			ID:     id("b-app"),
			Scopes: []domain.Scope{scope("test"), scope("compile"), scope("runtime")},
		},
		{
			ID:     id("a-lib"),
			Scopes: []domain.Scope{scope("compile")},
		},
		{ID: id("c-empty")},
	}

	tests := []struct {
		name   string
		filter []string
		want   []domain.ProjectScanScopes
	}{
		{
			name:   "no filter includes everything",
			filter: nil,
			want: []domain.ProjectScanScopes{
				{ProjectID: id("a-lib"), ScopesToScan: []string{"compile"}, ExcludedScopes: []string{}},
				{ProjectID: id("b-app"), ScopesToScan: []string{"compile", "runtime", "test"}, ExcludedScopes: []string{}},
				{ProjectID: id("c-empty"), ScopesToScan: []string{}, ExcludedScopes: []string{}},
			},
		},
		{
			name:   "filter partitions scopes",
			filter: []string{"compile", "provided"},
			want: []domain.ProjectScanScopes{
				{ProjectID: id("a-lib"), ScopesToScan: []string{"compile"}, ExcludedScopes: []string{}},
				{ProjectID: id("b-app"), ScopesToScan: []string{"compile"}, ExcludedScopes: []string{"runtime", "test"}},
				{ProjectID: id("c-empty"), ScopesToScan: []string{}, ExcludedScopes: []string{}},
			},
		},
		{
			name:   "matching is exact",
			filter: []string{"Compile"},
			want: []domain.ProjectScanScopes{
				{ProjectID: id("a-lib"), ScopesToScan: []string{}, ExcludedScopes: []string{"compile"}},
				{ProjectID: id("b-app"), ScopesToScan: []string{}, ExcludedScopes: []string{"compile", "runtime", "test"}},
				{ProjectID: id("c-empty"), ScopesToScan: []string{}, ExcludedScopes: []string{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orchestrator.ComputeProjectScanScopes(projects, tt.filter))
		})
	}
}

func TestComputeProjectScanScopes_Partition(t *testing.T) {
	projects := []domain.Project{
		{ID: id("app"), Scopes: []domain.Scope{scope("compile"), scope("test"), scope("runtime"), scope("docs")}},
		{ID: id("lib"), Scopes: []domain.Scope{scope("test"), scope("compile")}},
	}
	filters := [][]string{nil, {}, {"compile"}, {"test", "docs"}, {"missing"}, {"compile", "test", "runtime", "docs"}}

	for _, filter := range filters {
		got := orchestrator.ComputeProjectScanScopes(projects, filter)
		// Results are ordered by project id, which matches the declaration order here.
		for i, s := range got {
			project := projects[i]
			assert.Equal(t, project.ID, s.ProjectID)

			union := append(append([]string{}, s.ScopesToScan...), s.ExcludedScopes...)
			assert.ElementsMatch(t, project.ScopeNames(), union, "filter %v", filter)

			for _, name := range s.ScopesToScan {
				assert.NotContains(t, s.ExcludedScopes, name, "filter %v", filter)
			}
		}
	}
}

func TestPackagesToScan_FilterExample(t *testing.T) {
	// One project with compile -> X and test -> Y, filtered to compile.
	project := domain.Project{
		ID: id("A"),
		Scopes: []domain.Scope{
			scope("compile", ref("X")),
			scope("test", ref("Y")),
		},
	}
	result := domain.AnalyzerResult{
		Projects: []domain.Project{project},
		Packages: []domain.CuratedPackage{pkg("X"), pkg("Y")},
	}
	references := domain.References(domain.ConsolidateProjectPackagesByVcs(result.Projects))

	got := orchestrator.PackagesToScan(result, references, []string{"compile"})
	assert.Equal(t, []string{"A", "X"}, ids(got))

	scopes := orchestrator.ComputeProjectScanScopes(result.Projects, []string{"compile"})
	assert.Equal(t, []domain.ProjectScanScopes{{
		ProjectID:      id("A"),
		ScopesToScan:   []string{"compile"},
		ExcludedScopes: []string{"test"},
	}}, scopes)
}

func TestPackagesToScan_NoFilter(t *testing.T) {
	result := domain.AnalyzerResult{
		Projects: []domain.Project{
			{ID: id("app"), Scopes: []domain.Scope{scope("compile", ref("x"))}},
		},
		Packages: []domain.CuratedPackage{pkg("z"), pkg("x"), pkg("unreferenced")},
	}
	references := []domain.Package{{ID: id("app")}}

	got := orchestrator.PackagesToScan(result, references, nil)
	assert.Equal(t, []string{"app", "unreferenced", "x", "z"}, ids(got))
}

func TestPackagesToScan_TransitiveAndAcrossProjects(t *testing.T) {
	result := domain.AnalyzerResult{
		Projects: []domain.Project{
			{ID: id("one"), Scopes: []domain.Scope{
				scope("compile", ref("direct", ref("transitive", ref("deep")))),
				scope("test", ref("junit")),
			}},
			{ID: id("two"), Scopes: []domain.Scope{
				scope("compile", ref("other")),
				scope("test", ref("mockito")),
			}},
		},
		Packages: []domain.CuratedPackage{
			pkg("direct"), pkg("transitive"), pkg("deep"), pkg("junit"), pkg("other"), pkg("mockito"),
		},
	}
	references := []domain.Package{{ID: id("one")}, {ID: id("two")}}

	got := orchestrator.PackagesToScan(result, references, []string{"compile"})
	assert.Equal(t, []string{"deep", "direct", "one", "other", "transitive", "two"}, ids(got))

	// Every selected package is reachable from a filtered scope or is a reference.
	for _, p := range got {
		isReference := p.ID == id("one") || p.ID == id("two")
		reachable := false
		for _, project := range result.Projects {
			for _, s := range project.Scopes {
				if s.Name.String() == "compile" && s.Contains(p.ID) {
					reachable = true
				}
			}
		}
		assert.True(t, isReference || reachable, "unexpected package %s", p.ID)
	}
}

func TestPackagesToScan_ReferenceWinsOnCollision(t *testing.T) {
	reference := domain.Package{ID: id("shared"), DeclaredLicenses: []string{"MIT"}}
	result := domain.AnalyzerResult{
		Packages: []domain.CuratedPackage{{Package: domain.Package{ID: id("shared")}}},
	}

	got := orchestrator.PackagesToScan(result, []domain.Package{reference}, nil)
	assert.Equal(t, []domain.Package{reference}, got)
}

func TestPackagesToScan_UnmatchedFilterKeepsReferences(t *testing.T) {
	result := domain.AnalyzerResult{
		Projects: []domain.Project{{ID: id("app"), Scopes: []domain.Scope{scope("compile", ref("x"))}}},
		Packages: []domain.CuratedPackage{pkg("x")},
	}

	got := orchestrator.PackagesToScan(result, []domain.Package{{ID: id("app")}}, []string{"nope"})
	assert.Equal(t, []string{"app"}, ids(got))
}

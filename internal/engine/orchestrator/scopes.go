package orchestrator

import (
	"slices"

	"go.trai.ch/scout/internal/core/domain"
)

// ComputeProjectScanScopes partitions the scope names of every project into
// scanned and excluded scopes. An empty filter includes every scope.
func ComputeProjectScanScopes(projects []domain.Project, filter []string) []domain.ProjectScanScopes {
	scopes := make([]domain.ProjectScanScopes, 0, len(projects))

	for _, project := range projects {
		included := []string{}
		excluded := []string{}

		for _, name := range project.ScopeNames() {
			if len(filter) == 0 || slices.Contains(filter, name) {
				included = append(included, name)
			} else {
				excluded = append(excluded, name)
			}
		}

		slices.Sort(included)
		slices.Sort(excluded)

		scopes = append(scopes, domain.ProjectScanScopes{
			ProjectID:      project.ID,
			ScopesToScan:   slices.Compact(included),
			ExcludedScopes: slices.Compact(excluded),
		})
	}

	slices.SortStableFunc(scopes, func(a, b domain.ProjectScanScopes) int {
		return a.ProjectID.Compare(b.ProjectID)
	})

	return scopes
}

// PackagesToScan returns the reference packages together with the analyzer packages
// selected by the scope filter, deduplicated and ordered by identifier.
//
// With an empty filter every analyzer package is selected. Otherwise a package is
// selected when it is reachable from a scope named in the filter in any project.
// On identifier collisions the reference package wins.
func PackagesToScan(result domain.AnalyzerResult, references []domain.Package, filter []string) []domain.Package {
	selected := make(map[domain.Identifier]domain.Package, len(references)+len(result.Packages))
	for _, ref := range references {
		if _, ok := selected[ref.ID]; !ok {
			selected[ref.ID] = ref
		}
	}

	var reachable map[domain.Identifier]struct{}
	if len(filter) > 0 {
		reachable = reachableFrom(result.Projects, filter)
	}

	for _, curated := range result.Packages {
		pkg := curated.Package
		if _, ok := selected[pkg.ID]; ok {
			continue
		}
		if reachable != nil {
			if _, ok := reachable[pkg.ID]; !ok {
				continue
			}
		}
		selected[pkg.ID] = pkg
	}

	packages := make([]domain.Package, 0, len(selected))
	for _, pkg := range selected {
		packages = append(packages, pkg)
	}
	slices.SortFunc(packages, func(a, b domain.Package) int {
		return a.ID.Compare(b.ID)
	})

	return packages
}

func reachableFrom(projects []domain.Project, filter []string) map[domain.Identifier]struct{} {
	ids := make(map[domain.Identifier]struct{})
	for _, project := range projects {
		for _, scope := range project.Scopes {
			if !slices.Contains(filter, scope.Name.String()) {
				continue
			}
			for id := range scope.CollectDependencies() {
				ids[id] = struct{}{}
			}
		}
	}
	return ids
}

package domain

import (
	"slices"
)

// PackageGroup is a set of packages that share a source tree. The Reference
// package is scanned; the Duplicates borrow its results afterwards.
type PackageGroup struct {
	Reference  Package
	Duplicates []Package
}

// ConsolidateProjectPackagesByVcs groups projects whose processed VCS coordinates
// (repository URL, revision and path) are identical. The member with the lowest
// identifier becomes the reference package. Projects without a repository URL are
// never merged. Groups are returned ordered by reference identifier.
func ConsolidateProjectPackagesByVcs(projects []Project) []PackageGroup {
	packages := make([]Package, 0, len(projects))
	for _, project := range projects {
		packages = append(packages, project.ToPackage())
	}
	slices.SortStableFunc(packages, func(a, b Package) int {
		return a.ID.Compare(b.ID)
	})

	byFingerprint := make(map[string]int)
	groups := make([]PackageGroup, 0, len(packages))

	for _, pkg := range packages {
		if pkg.VcsProcessed.IsEmpty() {
			groups = append(groups, PackageGroup{Reference: pkg})
			continue
		}

		key := pkg.VcsProcessed.Fingerprint()
		if idx, ok := byFingerprint[key]; ok {
			// The reference itself may appear twice when two projects share an id.
			if groups[idx].Reference.ID != pkg.ID {
				groups[idx].Duplicates = append(groups[idx].Duplicates, pkg)
			}
			continue
		}

		byFingerprint[key] = len(groups)
		groups = append(groups, PackageGroup{Reference: pkg})
	}

	return groups
}

// References returns the reference package of every group.
func References(groups []PackageGroup) []Package {
	refs := make([]Package, 0, len(groups))
	for _, g := range groups {
		refs = append(refs, g.Reference)
	}
	return refs
}

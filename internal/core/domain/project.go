package domain

// PackageReference is a node in a scope's dependency tree.
type PackageReference struct {
	ID           Identifier         `json:"id"                     yaml:"id"`
	Dependencies []PackageReference `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Scope is a named subset of a project's dependencies, such as "compile" or "test".
type Scope struct {
	Name         InternedString     `json:"name"                   yaml:"name"`
	Dependencies []PackageReference `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Contains reports whether the package is reachable anywhere in the scope's
// dependency tree, directly or transitively.
func (s Scope) Contains(id Identifier) bool {
	return containsReference(s.Dependencies, id)
}

func containsReference(refs []PackageReference, id Identifier) bool {
	for _, ref := range refs {
		if ref.ID == id || containsReference(ref.Dependencies, id) {
			return true
		}
	}
	return false
}

// CollectDependencies returns the identifiers of all packages in the scope's tree.
func (s Scope) CollectDependencies() map[Identifier]struct{} {
	ids := make(map[Identifier]struct{})
	var collect func(refs []PackageReference)
	collect = func(refs []PackageReference) {
		for _, ref := range refs {
			if _, seen := ids[ref.ID]; seen {
				continue
			}
			ids[ref.ID] = struct{}{}
			collect(ref.Dependencies)
		}
	}
	collect(s.Dependencies)
	return ids
}

// Project is a package that is also a root of the dependency graph.
type Project struct {
	ID                 Identifier `json:"id"                           yaml:"id"`
	DefinitionFilePath string     `json:"definitionFilePath,omitzero"  yaml:"definitionFilePath,omitempty"`
	DeclaredLicenses   []string   `json:"declaredLicenses,omitempty"   yaml:"declaredLicenses,omitempty"`
	Vcs                VcsInfo    `json:"vcs,omitzero"                 yaml:"vcs,omitempty"`
	VcsProcessed       VcsInfo    `json:"vcsProcessed,omitzero"        yaml:"vcsProcessed,omitempty"`
	Homepage           string     `json:"homepageUrl,omitzero"         yaml:"homepageUrl,omitempty"`
	Scopes             []Scope    `json:"scopes,omitempty"             yaml:"scopes,omitempty"`
}

// ScopeNames returns the names of the project's scopes in declaration order.
func (p Project) ScopeNames() []string {
	names := make([]string, 0, len(p.Scopes))
	for _, scope := range p.Scopes {
		names = append(names, scope.Name.String())
	}
	return names
}

// ToPackage converts the project into a package with the same coordinates so it
// can be scanned like any dependency.
func (p Project) ToPackage() Package {
	return Package{
		ID:               p.ID,
		DeclaredLicenses: p.DeclaredLicenses,
		Homepage:         p.Homepage,
		Vcs:              p.Vcs,
		VcsProcessed:     p.VcsProcessed,
	}
}

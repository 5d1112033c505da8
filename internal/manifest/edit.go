package manifest

// RemoveDependency deletes dep from either the normal or dev
// dependency list, returning true if it was present.
func (m *Manifest) RemoveDependency(name string) bool {
	removed := false
	m.Dependencies, removed = removeNamed(m.Dependencies, name)
	if removed {
		return true
	}
	m.DevDependencies, removed = removeNamed(m.DevDependencies, name)
	return removed
}

func removeNamed(deps []Dependency, name string) ([]Dependency, bool) {
	for i, d := range deps {
		if d.Name == name {
			return append(deps[:i:i], deps[i+1:]...), true
		}
	}
	return deps, false
}

// AddDependency appends dep to the normal or dev dependency list. If
// a dependency with the same name already exists there, it is
// replaced in place rather than duplicated.
func (m *Manifest) AddDependency(dep Dependency, dev bool) {
	list := &m.Dependencies
	if dev {
		list = &m.DevDependencies
	}
	for i, existing := range *list {
		if existing.Name == dep.Name {
			(*list)[i] = dep
			return
		}
	}
	*list = append(*list, dep)
}

package annotation

// Annotations is the owned collection of all annotations of one document.
// Links between annotations are plain id values resolved by scanning it.
type Annotations []Annotation

// Find returns the first annotation whose id property equals id.
func (as Annotations) Find(id string) (Annotation, bool) {
	for _, a := range as {
		if aid, ok := a.ID(); ok && aid == id {
			return a, true
		}
	}
	return Annotation{}, false
}

// Resolve follows the link property of a and returns the referenced
// annotations in link order. Ids with no matching annotation are skipped, so
// the result is empty when the property is absent or every id dangles.
func (as Annotations) Resolve(a Annotation, property string) Annotations {
	link, ok := a.Get(property)
	if !ok {
		return nil
	}

	var found Annotations
	for _, id := range link.Values() {
		if target, ok := as.Find(id); ok {
			found = append(found, target)
		}
	}
	return found
}

// FindFunc returns the first annotation with the given id that keep accepts.
func (as Annotations) FindFunc(id string, keep func(Annotation) bool) (Annotation, bool) {
	for _, a := range as {
		if aid, ok := a.ID(); ok && aid == id && keep(a) {
			return a, true
		}
	}
	return Annotation{}, false
}

// Package annotation models MPQA opinion annotations: one record per row of a
// gateman annotation file, with an open-ended property bag and id based links
// to other annotations of the same document.
package annotation

import (
	"github.com/revelaction/mpqa/span"
)

// Annotation is one markup record over a span of the document text.
type Annotation struct {
	// Index is the annotation number of the source row.
	Index int `json:"index"`

	Span span.Span `json:"span"`

	// Kind is the annotation type tag as written in the file. Unknown kinds are kept.
	Kind string `json:"kind"`

	// Properties is nil when the row had no property field.
	Properties Properties `json:"properties,omitempty"`

	// Sentence is the first document sentence containing Span. Only annotations
	// with properties are resolved, so it is nil for those without, and also when
	// no sentence contains the annotation.
	Sentence *span.Span `json:"sentence,omitempty"`
}

// HasProperties reports whether the row carried a property field, and thus
// whether sentence resolution ran.
func (a Annotation) HasProperties() bool {
	return a.Properties != nil
}

// Enclosing returns the enclosing sentence span, if one was found.
func (a Annotation) Enclosing() (span.Span, bool) {
	if a.Sentence == nil {
		return span.Span{}, false
	}
	return *a.Sentence, true
}

// In reports whether the annotation lies inside the sentence s.
func (a Annotation) In(s span.Span) bool {
	return s.Contains(a.Span)
}

// Get returns the property value of key.
func (a Annotation) Get(key string) (Value, bool) {
	return a.Properties.Get(key)
}

// Has reports whether the property key is present, whatever its value.
func (a Annotation) Has(key string) bool {
	return a.Properties.Has(key)
}

// Property returns the string form of the property key, or def when absent.
func (a Annotation) Property(key, def string) string {
	v, ok := a.Get(key)
	if !ok {
		return def
	}
	return v.String()
}

// ID returns the self id of the annotation. List valued ids never match a link.
func (a Annotation) ID() (string, bool) {
	v, ok := a.Get(PropID)
	if !ok || v.IsList() {
		return "", false
	}
	return v.String(), true
}

// IsIntensiveDirectSubjective: a direct-subjective annotation with an intensity
// other than low or neutral, and no insubstantial property at all.
func (a Annotation) IsIntensiveDirectSubjective() bool {
	if !DirectSubjectiveKinds.Has(a.Kind) {
		return false
	}

	intensity, ok := a.Get(PropIntensity)
	if !ok {
		return false
	}

	switch intensity.String() {
	case IntensityLow, IntensityNeutral:
		return false
	}

	return !a.Has(PropInsubstantial)
}

// IsIntensiveExpressiveSubjectivity: an expressive-subjectivity annotation with
// an intensity other than low.
func (a Annotation) IsIntensiveExpressiveSubjectivity() bool {
	if !ExpressiveSubjectivityKinds.Has(a.Kind) {
		return false
	}

	intensity, ok := a.Get(PropIntensity)
	return ok && intensity.String() != IntensityLow
}

// Intensity counts how many of the two intensive rules the annotation meets.
func (a Annotation) Intensity() int {
	n := 0
	if a.IsIntensiveDirectSubjective() {
		n++
	}
	if a.IsIntensiveExpressiveSubjectivity() {
		n++
	}
	return n
}

func (a Annotation) IsAttitude() bool {
	return AttitudeKinds.Has(a.Kind)
}

// IsEntityTarget: an eTarget annotation whose type property is "entity".
func (a Annotation) IsEntityTarget() bool {
	if !EntityTargetKinds.Has(a.Kind) {
		return false
	}
	v, ok := a.Get(PropType)
	return ok && !v.IsList() && v.String() == EntityType
}

package document

import (
	"iter"
	"strconv"
	"strings"

	"github.com/revelaction/mpqa/annotation"
	"github.com/revelaction/mpqa/logger"
	"github.com/revelaction/mpqa/span"
)

const (
	LabelSubjective = "subjective"
	LabelObjective  = "objective"

	// Missing stands for an absent property in view rows.
	Missing = "-"

	// sentimentMarker selects sentiment attitudes by substring of attitude-type
	// (sentiment-pos, sentiment-neg, ...).
	sentimentMarker = "sentiment"
)

// SentenceLabel is a row of the sentence subjectivity view.
type SentenceLabel struct {
	Sentence string `json:"sentence"`
	Label    string `json:"label"`
}

func (r SentenceLabel) Fields() []string {
	return []string{r.Sentence, r.Label}
}

// AttitudeTarget is a row of the attitude-target view. Offsets are relative to
// the start of the attitude's enclosing sentence.
type AttitudeTarget struct {
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Text         string `json:"text"`
	AttitudeType string `json:"attitude_type"`
	Intensity    string `json:"intensity"`
	TargetStart  int    `json:"target_start"`
	TargetEnd    int    `json:"target_end"`
	TargetText   string `json:"target_text"`
	Sentence     string `json:"sentence"`
}

func (r AttitudeTarget) Fields() []string {
	return []string{
		strconv.Itoa(r.Start), strconv.Itoa(r.End), r.Text,
		r.AttitudeType, r.Intensity,
		strconv.Itoa(r.TargetStart), strconv.Itoa(r.TargetEnd), r.TargetText,
		r.Sentence,
	}
}

// EntitySentiment is a row of the entity sentiment view. Offsets are relative
// to the start of the entity's enclosing sentence.
type EntitySentiment struct {
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Text         string `json:"text"`
	Intensity    string `json:"intensity"`
	AttitudeType string `json:"attitude_type"`
	Sentence     string `json:"sentence"`
}

func (r EntitySentiment) Fields() []string {
	return []string{
		strconv.Itoa(r.Start), strconv.Itoa(r.End), r.Text,
		r.Intensity, r.AttitudeType,
		r.Sentence,
	}
}

// Subjectivity labels every sentence, in document order. A sentence is
// subjective when it contains at least one intensive direct-subjective or
// expressive-subjectivity annotation.
func (d Doc) Subjectivity() iter.Seq[SentenceLabel] {
	return func(yield func(SentenceLabel) bool) {
		for _, sentence := range d.Sentences {
			label := LabelObjective
			if d.intensity(sentence) > 0 {
				label = LabelSubjective
			}

			if !yield(SentenceLabel{Sentence: d.Slice(sentence), Label: label}) {
				return
			}
		}
	}
}

// intensity counts the intensive annotations inside the sentence.
func (d Doc) intensity(sentence span.Span) int {
	n := 0
	for _, a := range d.Annotations {
		if a.In(sentence) {
			n += a.Intensity()
		}
	}
	return n
}

// AttitudeTargets pairs every attitude with the targets of its target-link.
// Attitudes without an enclosing sentence or without a resolvable target
// produce nothing.
func (d Doc) AttitudeTargets() iter.Seq[AttitudeTarget] {
	return func(yield func(AttitudeTarget) bool) {
		log := logger.ComponentLogger("document")

		for _, a := range d.Annotations {
			if !a.IsAttitude() {
				continue
			}

			sentence, ok := a.Enclosing()
			if !ok {
				log.Debugw("No enclosing sentence for attitude",
					logger.FieldIndex, a.Index, logger.FieldFile, d.Filename)
				continue
			}

			targets := d.Annotations.Resolve(a, annotation.PropTargetLink)
			if len(targets) == 0 {
				log.Debugw("No target found for attitude",
					logger.FieldIndex, a.Index, logger.FieldFile, d.Filename,
					logger.FieldLink, a.Property(annotation.PropTargetLink, ""))
				continue
			}

			rel := sentence.Relative(a.Span)
			for _, target := range targets {
				trel := sentence.Relative(target.Span)
				row := AttitudeTarget{
					Start:        rel.Start,
					End:          rel.End,
					Text:         d.Slice(a.Span),
					AttitudeType: a.Property(annotation.PropAttitudeType, Missing),
					Intensity:    a.Property(annotation.PropIntensity, Missing),
					TargetStart:  trel.Start,
					TargetEnd:    trel.End,
					TargetText:   d.Slice(target.Span),
					Sentence:     d.Slice(sentence),
				}
				if !yield(row) {
					return
				}
			}
		}
	}
}

// EntitySentiments follows sentiment attitudes through their target frame to
// the entity targets the frame names, one row per entity found in a sentence.
func (d Doc) EntitySentiments() iter.Seq[EntitySentiment] {
	return func(yield func(EntitySentiment) bool) {
		log := logger.ComponentLogger("document")

		for _, a := range d.Annotations {
			if !a.IsAttitude() || !isSentiment(a) {
				continue
			}

			frames := d.Annotations.Resolve(a, annotation.PropTargetFrame)
			if len(frames) == 0 {
				log.Debugw("No target frame found for attitude",
					logger.FieldIndex, a.Index, logger.FieldFile, d.Filename)
				continue
			}

			for _, frame := range frames {
				ids, ok := frame.Get(annotation.PropNewETarget)
				if !ok {
					log.Debugw("Target frame has no entity targets",
						logger.FieldIndex, frame.Index, logger.FieldFile, d.Filename)
					continue
				}

				for _, id := range ids.Values() {
					entity, ok := d.Annotations.FindFunc(id, annotation.Annotation.IsEntityTarget)
					if !ok {
						log.Debugw("No entity target found",
							logger.FieldIndex, frame.Index, logger.FieldFile, d.Filename, logger.FieldLink, id)
						continue
					}

					sentence, ok := entity.Enclosing()
					if !ok {
						log.Debugw("No enclosing sentence for entity target",
							logger.FieldIndex, entity.Index, logger.FieldFile, d.Filename)
						continue
					}

					rel := sentence.Relative(entity.Span)
					row := EntitySentiment{
						Start:        rel.Start,
						End:          rel.End,
						Text:         d.Slice(entity.Span),
						Intensity:    a.Property(annotation.PropIntensity, Missing),
						AttitudeType: a.Property(annotation.PropAttitudeType, Missing),
						Sentence:     d.Slice(sentence),
					}
					if !yield(row) {
						return
					}
				}
			}
		}
	}
}

func isSentiment(a annotation.Annotation) bool {
	v, ok := a.Get(annotation.PropAttitudeType)
	return ok && strings.Contains(v.String(), sentimentMarker)
}

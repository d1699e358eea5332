package annotation

// Kinds is a set of annotation kind spellings that mean the same thing. MPQA 2.x
// releases prefix kinds with "GATE_", the 3.0 release does not.
type Kinds []string

func (k Kinds) Has(kind string) bool {
	for _, s := range k {
		if s == kind {
			return true
		}
	}
	return false
}

var (
	DirectSubjectiveKinds       = Kinds{"direct-subjective", "GATE_direct-subjective"}
	ExpressiveSubjectivityKinds = Kinds{"expressive-subjectivity", "GATE_expressive-subjectivity"}
	AttitudeKinds               = Kinds{"attitude", "GATE_attitude"}
	TargetKinds                 = Kinds{"target", "GATE_target"}
	EntityTargetKinds           = Kinds{"eTarget", "GATE_eTarget"}
)

// Property names.
const (
	PropID            = "id"
	PropTargetLink    = "target-link"
	PropTargetFrame   = "targetFrame-link"
	PropNewETarget    = "newETarget-link"
	PropIntensity     = "intensity"
	PropInsubstantial = "insubstantial"
	PropAttitudeType  = "attitude-type"
	PropType          = "type"
)

const (
	IntensityLow     = "low"
	IntensityNeutral = "neutral"

	// EntityType is the "type" property value of entity targets.
	EntityType = "entity"
)

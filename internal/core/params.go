package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeEnum denotes parameters restricted to a fixed value set.
	ParamTypeEnum ParamType = "enum"
)

// Parameter describes a single tunable generation option so CLI tools can
// list overridable keys with their types and bounds.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Default     string
	Description string

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool

	// Values lists the accepted spellings for enum parameters.
	Values []string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

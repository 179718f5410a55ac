package config

// DefaultHeadTailCount is the head/tail element count used when the
// caller passes no explicit n.
const DefaultHeadTailCount = 6

// Registered algorithm names, as accepted by scenario files and the CLI.
const (
	HeadTailAlgName  = "headtail"
	LengthAlgName    = "length"
	SortAlgName      = "sort"
	SortShapeAlgName = "sortshape"
	DimsAlgName      = "dims"
	ShowAlgName      = "show"
)

// LogLevelEnv overrides the bridge log level ("debug", "info", "warn").
const LogLevelEnv = "DYNVEC_LOG_LEVEL"

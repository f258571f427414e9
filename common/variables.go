package common

const Version = `v1.0.1`

var (
	LogLinenumbers bool
	LogHides       []string

	silentFlag bool
	debugFlag  bool
	traceFlag  bool
)

// DefineVerbosityFlags wires command line verbosity into the logger.
// Debug and trace win over silent, so a silenced run can still be
// diagnosed by adding --trace.
func DefineVerbosityFlags(silent, debug, trace bool) {
	silentFlag = silent
	debugFlag = debug
	traceFlag = trace
}

func Silent() bool {
	return silentFlag && !debugFlag && !traceFlag
}

func DebugFlag() bool {
	return debugFlag || traceFlag
}

func TraceFlag() bool {
	return traceFlag
}

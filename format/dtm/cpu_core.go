package dtm

// CPUCore is the emulation execution strategy recorded in the movie header.
type CPUCore uint8

const (
	CPUCoreInterpreter CPUCore = 0
	CPUCoreJIT         CPUCore = 1
	CPUCoreJITIL       CPUCore = 2
)

// String returns the display name of the core. Values outside the known set
// are not an error and render as "Unknown".
func (c CPUCore) String() string {
	switch c {
	case CPUCoreInterpreter:
		return "Interpreter"
	case CPUCoreJIT:
		return "JIT"
	case CPUCoreJITIL:
		return "JITIL"
	default:
		return "Unknown"
	}
}

// MarshalText renders the core by name in JSON and YAML output.
func (c CPUCore) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

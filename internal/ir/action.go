package ir

// ActionKind is the tool field of a manifest action line.
type ActionKind string

const (
	KindCompileC ActionKind = "cc"  // C compile, accepted when parsing
	KindCompile  ActionKind = "cxx" // C++ compile, one input to one artifact
	KindLink     ActionKind = "ld"  // link, every artifact to the final output
)

// IsCompile reports whether the kind produces an object artifact.
func (k ActionKind) IsCompile() bool {
	return k == KindCompile || k == KindCompileC
}

// Action is one step of the two-stage compile/link pipeline.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Inputs []string   `json:"inputs"`
	Output string     `json:"output"`
}

// Definition binds a configuration key to a literal value. Empty values are legal.
type Definition struct {
	Key   string `json:"key" yaml:"key" hcl:"key,label"`
	Value string `json:"value" yaml:"value" hcl:"value,optional"`
}

// Recognized definition keys.
const (
	DefCC       = "cc"       // C compiler binary
	DefCXX      = "cxx"      // C++ compiler binary
	DefCFlags   = "cflags"   // C compiler flags
	DefCXXFlags = "cxxflags" // C++ compiler flags
	DefLD       = "ld"       // linker binary; the engine falls back to cxx
	DefLDFlags  = "ldflags"  // linker flags
	DefLDLibs   = "ldlibs"   // extra link libraries
)

// KnownDefinitionKeys lists every key the build engine understands.
var KnownDefinitionKeys = map[string]bool{
	DefCC:       true,
	DefCXX:      true,
	DefCFlags:   true,
	DefCXXFlags: true,
	DefLD:       true,
	DefLDFlags:  true,
	DefLDLibs:   true,
}

// Manifest is the ordered set of definitions followed by the ordered actions.
type Manifest struct {
	Definitions []Definition `json:"definitions"`
	Actions     []Action     `json:"actions"`
}

// CompileActions returns the compile actions in manifest order.
func (m *Manifest) CompileActions() []Action {
	var out []Action
	for _, a := range m.Actions {
		if a.Kind.IsCompile() {
			out = append(out, a)
		}
	}
	return out
}

// Lookup returns the value bound to key and whether it was defined.
// The first definition of a key wins, matching how the engine populates its table.
func (m *Manifest) Lookup(key string) (string, bool) {
	for _, d := range m.Definitions {
		if d.Key == key {
			return d.Value, true
		}
	}
	return "", false
}

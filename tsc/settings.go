package tsc

// Version identifies the embedded compiler. It is stamped into the
// output banner next to the tool version.
const Version = "3.9.10"

// Emission targets. The compiler only emits the legacy ES3 dialect;
// requesting anything else is a configuration error.
const (
	TargetES3    = "ES3"
	TargetESNext = "ESNext"
)

// Module kinds. ModuleNone performs no module wrapping: export syntax
// lowers to plain `exports.<name>` assignments.
const (
	ModuleNone     = "None"
	ModuleCommonJS = "CommonJS"
)

const defaultIndent = 4

// Settings holds compiler options. Nil fields mean "not set" and are
// filled with compiler defaults; a merge layer that leaves a field nil
// never overwrites a lower layer.
type Settings struct {
	Target          *string `yaml:"target"`
	Module          *string `yaml:"module"`
	IsolatedModules *bool   `yaml:"isolatedModules"`
	NoLib           *bool   `yaml:"noLib"`
	NoResolve       *bool   `yaml:"noResolve"`
	Indent          *int    `yaml:"indent"`
}

func (s Settings) target() string {
	if s.Target == nil {
		return TargetES3
	}
	return *s.Target
}

func (s Settings) indentWidth() int {
	if s.Indent == nil || *s.Indent < 0 {
		return defaultIndent
	}
	return *s.Indent
}

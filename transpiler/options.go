package transpiler

import (
	"fmt"

	"github.com/gscript-labs/ts2gs/tsc"
	"gopkg.in/yaml.v3"
)

// Options is the caller-overridable configuration. Exactly two fields
// are honored; anything else a caller supplies (through YAML or a
// hand-built struct) is dropped before merging, so no caller key can
// collide with the mandatory settings.
type Options struct {
	// Compiler overrides individual compiler settings. Overrides of
	// mandatory settings are silently won back by the mandatory layer.
	Compiler *tsc.Settings `yaml:"compilerOptions"`

	// RenamedImports maps a module specifier to the host-global name
	// the dependency is available under at runtime. Imports from a
	// mapped specifier are commented out like any other import, and
	// references to their bindings are rewritten to the mapped global.
	RenamedImports map[string]string `yaml:"renamedImports"`
}

// honoredOptionKeys are the only top-level keys accepted from an
// options document.
var honoredOptionKeys = map[string]bool{
	"compilerOptions": true,
	"renamedImports":  true,
}

// ParseOptionsYAML decodes caller options from YAML. Unknown top-level
// keys are silently discarded before decoding.
func ParseOptionsYAML(data []byte) (*Options, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding options: %w", err)
	}
	filtered := map[string]interface{}{}
	for key, value := range raw {
		if honoredOptionKeys[key] {
			filtered[key] = value
		}
	}
	buf, err := yaml.Marshal(filtered)
	if err != nil {
		return nil, fmt.Errorf("decoding options: %w", err)
	}
	opts := &Options{}
	if err := yaml.Unmarshal(buf, opts); err != nil {
		return nil, fmt.Errorf("decoding options: %w", err)
	}
	return opts, nil
}

// sanitize copies only the honored fields into a fresh Options value,
// so later merge layers never see anything a caller should not be able
// to set. A nil receiver is a valid empty option set.
func sanitize(opts *Options) Options {
	out := Options{}
	if opts == nil {
		return out
	}
	if opts.Compiler != nil {
		settings := *opts.Compiler
		out.Compiler = &settings
	}
	if len(opts.RenamedImports) > 0 {
		out.RenamedImports = make(map[string]string, len(opts.RenamedImports))
		for k, v := range opts.RenamedImports {
			out.RenamedImports[k] = v
		}
	}
	return out
}

// DefaultSettings is the base compiler configuration, applied before
// caller overrides.
func DefaultSettings() tsc.Settings {
	return tsc.Settings{
		Target: strPtr(tsc.TargetES3),
		Module: strPtr(tsc.ModuleNone),
	}
}

// MandatorySettings always win over caller overrides: they are merged
// last. The sandbox target compiles each file in isolation, resolves
// nothing, loads no ambient type libraries, emits only the legacy
// target, and performs no module wrapping. A caller override of any of
// these is silently replaced rather than rejected; producing safe
// output is more useful than failing the call.
func MandatorySettings() tsc.Settings {
	return tsc.Settings{
		Target:          strPtr(tsc.TargetES3),
		Module:          strPtr(tsc.ModuleNone),
		IsolatedModules: boolPtr(true),
		NoLib:           boolPtr(true),
		NoResolve:       boolPtr(true),
	}
}

// mergeSettings overlays src onto dst field by field. A nil src field
// never overwrites; a set one always does.
func mergeSettings(dst, src tsc.Settings) tsc.Settings {
	if src.Target != nil {
		dst.Target = src.Target
	}
	if src.Module != nil {
		dst.Module = src.Module
	}
	if src.IsolatedModules != nil {
		dst.IsolatedModules = src.IsolatedModules
	}
	if src.NoLib != nil {
		dst.NoLib = src.NoLib
	}
	if src.NoResolve != nil {
		dst.NoResolve = src.NoResolve
	}
	if src.Indent != nil {
		dst.Indent = src.Indent
	}
	return dst
}

// mergeRequests overlays src onto dst: settings merge field-wise and
// the transformer lists concatenate, dst first, so every layer's
// passes survive in order.
func mergeRequests(dst, src tsc.Request) tsc.Request {
	dst.Compiler = mergeSettings(dst.Compiler, src.Compiler)
	dst.Before = append(append([]tsc.Transformer{}, dst.Before...), src.Before...)
	dst.Subs = append(append([]tsc.Substitution{}, dst.Subs...), src.Subs...)
	return dst
}

// buildRequest produces the compile request for one invocation:
// defaults, then sanitized caller overrides, then the mandatory layer,
// merged in that order so the mandatory layer wins every conflict.
func buildRequest(opts *Options) tsc.Request {
	caller := sanitize(opts)

	callerLayer := tsc.Request{}
	if caller.Compiler != nil {
		callerLayer.Compiler = *caller.Compiler
	}

	mandatory := tsc.Request{
		Compiler: MandatorySettings(),
		Before: []tsc.Transformer{
			CommentOutModuleSyntax(),
			PreserveIdentifierSpelling(),
		},
		Subs: []tsc.Substitution{
			SuppressExportFrom(),
			SuppressModuleMarker(),
			SuppressDefaultExport(),
		},
	}
	if len(caller.RenamedImports) > 0 {
		renamer := newImportRenamer(caller.RenamedImports)
		// the collector must see imports before they are commented out
		mandatory.Before = append([]tsc.Transformer{renamer.collect()}, mandatory.Before...)
		mandatory.Subs = append(mandatory.Subs, renamer.substitute())
	}

	req := mergeRequests(tsc.Request{Compiler: DefaultSettings()}, callerLayer)
	return mergeRequests(req, mandatory)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

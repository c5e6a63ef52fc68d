package transpiler

import (
	"testing"

	"github.com/gscript-labs/ts2gs/tsast"
	"github.com/gscript-labs/ts2gs/tsc"
	"github.com/stretchr/testify/assert"
)

func TestBuildRequestMandatoryWins(t *testing.T) {
	opts := &Options{
		Compiler: &tsc.Settings{
			Target: strPtr(tsc.TargetESNext), // contested: mandatory wins
			Indent: intPtr(2),                // uncontested: caller wins
		},
	}
	req := buildRequest(opts)

	assert.Equal(t, tsc.TargetES3, *req.Compiler.Target)
	assert.Equal(t, tsc.ModuleNone, *req.Compiler.Module)
	assert.Equal(t, 2, *req.Compiler.Indent)
	assert.True(t, *req.Compiler.IsolatedModules)
	assert.True(t, *req.Compiler.NoLib)
	assert.True(t, *req.Compiler.NoResolve)
}

func TestBuildRequestNilOptions(t *testing.T) {
	req := buildRequest(nil)
	assert.Equal(t, tsc.TargetES3, *req.Compiler.Target)
	assert.Len(t, req.Before, 2, "comment-out and preserve-spelling passes")
	assert.Len(t, req.Subs, 3, "three suppressors")
}

func TestMergeSettingsNilNeverOverwrites(t *testing.T) {
	base := tsc.Settings{Target: strPtr(tsc.TargetES3), Indent: intPtr(4)}
	got := mergeSettings(base, tsc.Settings{Indent: intPtr(2)})
	assert.Equal(t, tsc.TargetES3, *got.Target, "unset source field left the target alone")
	assert.Equal(t, 2, *got.Indent)
}

func TestMergeRequestsConcatenatesTransformers(t *testing.T) {
	var order []string
	named := func(name string) tsc.Transformer {
		return func(file *tsast.SourceFile) *tsast.SourceFile {
			order = append(order, name)
			return file
		}
	}

	a := tsc.Request{Before: []tsc.Transformer{named("a")}}
	b := tsc.Request{Before: []tsc.Transformer{named("b")}}
	merged := mergeRequests(a, b)

	if assert.Len(t, merged.Before, 2, "transformer lists concatenate, they do not replace") {
		for _, transform := range merged.Before {
			transform(nil)
		}
		assert.Equal(t, []string{"a", "b"}, order, "target list runs before source list")
	}
	assert.Len(t, a.Before, 1, "merge does not mutate its inputs")
}

func TestSanitizeDropsEverythingUnhonored(t *testing.T) {
	opts := &Options{RenamedImports: map[string]string{"lodash": "LodashGS"}}
	got := sanitize(opts)
	got.RenamedImports["extra"] = "added"
	assert.Len(t, opts.RenamedImports, 1, "sanitize copies, it does not alias")

	empty := sanitize(nil)
	assert.Nil(t, empty.Compiler)
	assert.Nil(t, empty.RenamedImports)
}

func TestParseOptionsYAML(t *testing.T) {
	doc := []byte(`
compilerOptions:
  target: ESNext
  indent: 2
renamedImports:
  lodash: LodashGS
unknownKey: true
target: ESNext
`)
	opts, err := ParseOptionsYAML(doc)
	if err != nil {
		t.Fatalf("ParseOptionsYAML() error: %v", err)
	}
	if assert.NotNil(t, opts.Compiler) {
		assert.Equal(t, tsc.TargetESNext, *opts.Compiler.Target)
		assert.Equal(t, 2, *opts.Compiler.Indent)
	}
	assert.Equal(t, map[string]string{"lodash": "LodashGS"}, opts.RenamedImports)
}

func TestParseOptionsYAMLRejectsMalformed(t *testing.T) {
	_, err := ParseOptionsYAML([]byte("compilerOptions: ["))
	assert.Error(t, err)
}

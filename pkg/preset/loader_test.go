package preset_test

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfield/pkg/preset"
	"github.com/goliatone/go-formfield/pkg/testsupport"
	"github.com/goliatone/go-formfield/pkg/widget"
)

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"presets/compact.yaml": {Data: []byte(`
presets:
  compact:
    description: Small controls
    field:
      containerClass: mb-1
      labelClass(): [small]
    defaultValues:
      text:
        class: form-control form-control-sm
`)},
		"presets/inline.json": {Data: []byte(`{"presets":{"inline":{"field":{"container":false}}}}`)},
		"presets/README.md":   {Data: []byte("ignored")},
	}

	presets, err := preset.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(presets) != 2 || presets[0].Name != "compact" || presets[1].Name != "inline" {
		t.Fatalf("unexpected presets: %+v", presets)
	}
	if presets[0].Description != "Small controls" {
		t.Fatalf("unexpected description %q", presets[0].Description)
	}
	opts, ok := presets[0].DefaultValues.Lookup(widget.NameText)
	if !ok || opts.Class == nil || *opts.Class != "form-control form-control-sm" {
		t.Fatalf("unexpected text defaults: %+v", opts)
	}

	f, err := presets[0].NewField()
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	got, err := f.Text(testsupport.TypeWithHintForm(), "password").Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<div class="mb-1">
<label class="small" for="typewithhintform-password">Password</label>
<input type="text" id="typewithhintform-password" class="form-control form-control-sm" name="TypeWithHintForm[password]" value="">
</div>`
	testsupport.AssertEqualWithoutLE(t, want, got)
}

func TestLoadIntoRegistry(t *testing.T) {
	fsys := fstest.MapFS{
		"extra.yml": {Data: []byte("presets:\n  extra:\n    field:\n      containerClass: extra\n")},
	}
	r := preset.NewDefaultRegistry()
	if err := preset.LoadInto(r, fsys); err != nil {
		t.Fatalf("load into: %v", err)
	}
	if !r.Has("extra") || !r.Has(preset.Bootstrap5) {
		t.Fatalf("unexpected names: %v", r.Names())
	}
}

func TestLoadFSErrors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty file":       {"a.yaml": {Data: []byte("  ")}},
		"invalid document": {"a.yaml": {Data: []byte("presets: [")}},
		"duplicate across files": {
			"a.yaml": {Data: []byte("presets:\n  same: {}\n")},
			"b.yaml": {Data: []byte("presets:\n  same: {}\n")},
		},
		"unknown option": {"a.yaml": {Data: []byte("presets:\n  bad:\n    defaultValues:\n      text:\n        colour: red\n")}},
		"bad field":      {"a.yaml": {Data: []byte("presets:\n  bad:\n    field:\n      colour: red\n")}},
	}
	for name, fsys := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := preset.LoadFS(fsys); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadFSNil(t *testing.T) {
	presets, err := preset.LoadFS(nil)
	if err != nil || presets != nil {
		t.Fatalf("expected no presets, got %v, %v", presets, err)
	}
}

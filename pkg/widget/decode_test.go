package widget_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/widget"
)

func TestDecodeOptionsAcceptsCallStyleKeys(t *testing.T) {
	opts, err := widget.DecodeOptions(map[string]any{
		"attributes()":     []any{map[string]any{"class": "btn btn-primary"}},
		"containerClass()": []any{"row"},
		"container()":      []any{false},
		"tag":              "span",
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := widget.Options{
		Attributes:     map[string]string{"class": "btn btn-primary"},
		ContainerClass: widget.String("row"),
		Container:      widget.Bool(false),
		Tag:            widget.String("span"),
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeDefaultValuesWithDefinitions(t *testing.T) {
	values, err := widget.DecodeDefaultValues(map[string]any{
		"buttonGroup": map[string]any{
			"containerClass": "container-class-widget",
			"definitions": map[string]any{
				"containerClass()": []any{"col-sm-10 offset-sm-2"},
				"container()":      []any{false},
			},
		},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := widget.DefaultValues{
		"buttonGroup": {
			ContainerClass: widget.String("container-class-widget"),
			Definitions: &widget.Options{
				ContainerClass: widget.String("col-sm-10 offset-sm-2"),
				Container:      widget.Bool(false),
			},
		},
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("default values mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAcceptsYAMLStyleMaps(t *testing.T) {
	values, err := widget.DecodeDefaultValues(map[string]any{
		"text": map[any]any{"attributes": map[string]any{"maxlength": 20}},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := values["text"].Attributes["maxlength"]; got != "20" {
		t.Fatalf("expected weakly typed attribute value, got %q", got)
	}
}

func TestDecodeRejectsUnknownOptions(t *testing.T) {
	_, err := widget.DecodeOptions(map[string]any{"colour": "red"})
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDecodeRejectsDuplicateKeys(t *testing.T) {
	_, err := widget.DecodeOptions(map[string]any{
		"container":   true,
		"container()": []any{false},
	})
	if err == nil || !strings.Contains(err.Error(), "set twice") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestDecodeRejectsBadArgumentLists(t *testing.T) {
	_, err := widget.DecodeOptions(map[string]any{"containerClass()": []any{"a", "b"}})
	if err == nil || !strings.Contains(err.Error(), "exactly one argument") {
		t.Fatalf("expected argument count error, got %v", err)
	}
}

func TestDecodeRejectsNonMapEntries(t *testing.T) {
	_, err := widget.DecodeDefaultValues(map[string]any{"text": "form-control"})
	if err == nil {
		t.Fatalf("expected error for non-map entry")
	}
}

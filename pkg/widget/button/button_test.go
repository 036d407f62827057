package button_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/widget"
	"github.com/goliatone/go-formfield/pkg/widget/button"
)

func TestButtonGeneratesIDAndName(t *testing.T) {
	ids := html.NewIDGenerator()
	got, err := button.New(button.Spec{Label: "Submit"}).IDGenerator(ids).Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<input type="button" id="w1-button" name="w1-button" value="Submit">`; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestButtonSpecOverrides(t *testing.T) {
	got, err := button.New(button.Spec{
		Label:      "Save",
		Type:       button.TypeSubmit,
		ID:         "save",
		Name:       "action",
		Attributes: map[string]string{"class": "btn btn-lg", "disabled": "true"},
	}, widget.Options{Class: widget.String("btn")}).Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<input type="submit" id="save" class="btn btn-lg" name="action" value="Save" disabled>`; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestButtonFixedAttributesWin(t *testing.T) {
	got, err := button.New(button.Spec{Label: "Go", ID: "go"}).
		Attributes(html.Attributes{"type": "text", "value": "ignored"}).
		Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<input type="button" id="go" name="go" value="Go">`; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestButtonEmptyTag(t *testing.T) {
	_, err := button.New(button.Spec{Label: "x"}, widget.Options{Tag: widget.String("")}).Render()
	if !errors.Is(err, html.ErrEmptyTagName) {
		t.Fatalf("expected ErrEmptyTagName, got %v", err)
	}
}

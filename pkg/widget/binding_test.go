package widget_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/widget"
)

func TestBindingResolveErrors(t *testing.T) {
	if _, err := (widget.Binding{}).Resolve(); !errors.Is(err, widget.ErrFormModelNotSet) {
		t.Fatalf("expected ErrFormModelNotSet, got %v", err)
	}
	form := model.NewForm("F", model.Attribute{Name: "login"})
	if _, err := widget.Bind(form, "").Resolve(); !errors.Is(err, widget.ErrAttributeNotSet) {
		t.Fatalf("expected ErrAttributeNotSet, got %v", err)
	}
	binding := widget.Bind(form, "login")
	if binding.InputID() != "f-login" || binding.InputName() != "F[login]" {
		t.Fatalf("unexpected id/name %q %q", binding.InputID(), binding.InputName())
	}
}

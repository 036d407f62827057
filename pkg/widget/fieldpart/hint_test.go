package fieldpart_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/testsupport"
	"github.com/goliatone/go-formfield/pkg/widget"
	"github.com/goliatone/go-formfield/pkg/widget/fieldpart"
)

func renderHint(t *testing.T, hint fieldpart.Hint) string {
	t.Helper()
	out, err := hint.Render()
	if err != nil {
		t.Fatalf("render hint: %v", err)
	}
	return out
}

func TestHintEncodeWithFalse(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint().
		For(testsupport.TypeWithHintForm(), "login").
		Encode(false).
		Text("Write&nbsp;your&nbsp;text."))
	if want := "<div>Write&nbsp;your&nbsp;text.</div>"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHintAttributeNotSet(t *testing.T) {
	_, err := fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "").Render()
	if !errors.Is(err, widget.ErrAttributeNotSet) {
		t.Fatalf("expected ErrAttributeNotSet, got %v", err)
	}
	if err.Error() != `Failed to create widget because "attribute" is not set.` {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestHintFormModelNotSet(t *testing.T) {
	_, err := fieldpart.NewHint().Render()
	if !errors.Is(err, widget.ErrFormModelNotSet) {
		t.Fatalf("expected ErrFormModelNotSet, got %v", err)
	}
	if err.Error() != "Failed to create widget because form model is not set." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestHintNilFormPointer(t *testing.T) {
	var form *model.Form
	_, err := fieldpart.NewHint().For(form, "login").Render()
	if !errors.Is(err, widget.ErrFormModelNotSet) {
		t.Fatalf("expected ErrFormModelNotSet, got %v", err)
	}
}

func TestHintText(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "login").Text("Write your text."))
	if want := "<div>Write your text.</div>"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHintID(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint().
		For(testsupport.TypeWithHintForm(), "login").
		ID("id-test").
		Attributes(html.Attributes{"class": "test-class"}))
	if want := `<div id="id-test" class="test-class">Please enter your login.</div>`; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHintImmutability(t *testing.T) {
	form := testsupport.TypeWithHintForm()
	hint := fieldpart.NewHint().For(form, "login")
	before := renderHint(t, hint)

	_ = hint.Attributes(html.Attributes{"class": "x"})
	_ = hint.Encode(false)
	_ = hint.For(form, "email")
	_ = hint.Text("changed")
	_ = hint.ResolvedText()
	_ = hint.ID("changed")
	_ = hint.Tag("")
	_ = hint.Options(widget.Options{Tag: widget.String("p")})

	if after := renderHint(t, hint); after != before {
		t.Fatalf("base hint changed after mutating copies: %s vs %s", before, after)
	}
}

func TestHintRender(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "login"))
	if want := "<div>Please enter your login.</div>"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHintRenderIsIdempotent(t *testing.T) {
	hint := fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "login").Class("form-text")
	if first, second := renderHint(t, hint), renderHint(t, hint); first != second {
		t.Fatalf("renders differ: %s vs %s", first, second)
	}
}

func TestHintTag(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "login").Tag("span"))
	if want := "<span>Please enter your login.</span>"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHintTagException(t *testing.T) {
	_, err := fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "login").Tag("").Render()
	if !errors.Is(err, html.ErrEmptyTagName) {
		t.Fatalf("expected ErrEmptyTagName, got %v", err)
	}
	if err.Error() != "Tag name cannot be empty." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestHintEmptyRendersNothing(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "password"))
	if got != "" {
		t.Fatalf("expected empty output for attribute without hint, got %q", got)
	}
	override := renderHint(t, fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "login").Text(""))
	if override != "" {
		t.Fatalf("expected empty override to suppress the hint, got %q", override)
	}
}

func TestHintResolvedTextRevertsOverride(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint().
		For(testsupport.TypeWithHintForm(), "login").
		Text("override").
		ResolvedText())
	if want := "<div>Please enter your login.</div>"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHintEncodesByDefault(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "login").Text("a <b> & c"))
	if want := "<div>a &lt;b&gt; &amp; c</div>"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHintSanitize(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint().
		For(testsupport.TypeWithHintForm(), "login").
		Encode(false).
		Sanitize(true).
		Text(`<b>Bold</b><script>alert(1)</script>`))
	if want := "<div><b>Bold</b></div>"; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHintUnknownAttribute(t *testing.T) {
	_, err := fieldpart.NewHint().For(testsupport.TypeWithHintForm(), "missing").Render()
	if !errors.Is(err, model.ErrUnknownAttribute) {
		t.Fatalf("expected ErrUnknownAttribute, got %v", err)
	}
}

func TestHintOptions(t *testing.T) {
	got := renderHint(t, fieldpart.NewHint(widget.Options{
		Tag:   widget.String("small"),
		Class: widget.String("form-text"),
	}).For(testsupport.TypeWithHintForm(), "login"))
	if want := `<small class="form-text">Please enter your login.</small>`; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

package input_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/testsupport"
	"github.com/goliatone/go-formfield/pkg/widget"
	"github.com/goliatone/go-formfield/pkg/widget/input"
)

func TestInputRender(t *testing.T) {
	cases := []struct {
		name string
		in   input.Input
		want string
	}{
		{
			name: "text with placeholder",
			in:   input.New(input.TypeText).For(testsupport.TypeWithHintForm(), "login"),
			want: `<input type="text" id="typewithhintform-login" name="TypeWithHintForm[login]" value="" placeholder="Your login">`,
		},
		{
			name: "email with value",
			in:   input.New(input.TypeEmail).For(testsupport.TypeWithHintForm(), "email").Class("form-control"),
			want: `<input type="email" id="typewithhintform-email" class="form-control" name="TypeWithHintForm[email]" value="ana@example.com">`,
		},
		{
			name: "password never echoes its value",
			in:   input.New(input.TypePassword).For(testsupport.TypeWithHintForm(), "password"),
			want: `<input type="password" id="typewithhintform-password" name="TypeWithHintForm[password]">`,
		},
		{
			name: "explicit id and attributes",
			in: input.New("", widget.Options{ID: widget.String("login")}).
				For(testsupport.TypeWithHintForm(), "login").
				Attributes(html.Attributes{"placeholder": "", "required": "true"}),
			want: `<input type="text" id="login" name="TypeWithHintForm[login]" value="" placeholder="" required>`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Render()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %s\ngot  %s", tc.want, got)
			}
		})
	}
}

func TestInputAddClass(t *testing.T) {
	got, err := input.New(input.TypeText).
		For(testsupport.TypeWithHintForm(), "password").
		Class("form-control").
		AddClass("is-invalid").
		Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<input type="text" id="typewithhintform-password" class="form-control is-invalid" name="TypeWithHintForm[password]" value="">`
	if got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
}

func TestInputRequiresBinding(t *testing.T) {
	if _, err := input.New(input.TypeText).Render(); !errors.Is(err, widget.ErrFormModelNotSet) {
		t.Fatalf("expected ErrFormModelNotSet, got %v", err)
	}
}

func TestTextAreaEncodesValue(t *testing.T) {
	got, err := input.NewTextArea().
		For(testsupport.TypeWithHintForm(), "bio").
		Attributes(html.Attributes{"rows": "3"}).
		Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<textarea id="typewithhintform-bio" name="TypeWithHintForm[bio]" rows="3">Hello &lt;world&gt;</textarea>`
	if got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
}

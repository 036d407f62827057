package model_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfield/pkg/model"
)

func TestLoadFormFSParsesYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/login.yaml": &fstest.MapFile{Data: []byte(`
name: LoginForm
validated: true
attributes:
  - name: login
    hint: Please enter your login.
    value: admin
    errors: ["Too short."]
  - name: age
    value: 42
`)},
	}

	form, err := model.LoadFormFS(fsys, "forms/login.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if form.FormName() != "LoginForm" {
		t.Fatalf("unexpected form name %q", form.FormName())
	}
	if got := form.FirstError("login"); got != "Too short." {
		t.Fatalf("unexpected first error %q", got)
	}
	value, err := form.AttributeValue("age")
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if model.FormatValue(value) != "42" {
		t.Fatalf("unexpected value %v", value)
	}
	if !form.Validated() {
		t.Fatalf("expected validated flag")
	}
}

func TestParseFormParsesJSON(t *testing.T) {
	form, err := model.ParseForm([]byte(`{"name":"F","attributes":[{"name":"email","label":"E-mail"}]}`), "inline.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := form.AttributeLabel("email"); got != "E-mail" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestParseFormRejectsDuplicates(t *testing.T) {
	_, err := model.ParseForm([]byte("attributes:\n  - name: a\n  - name: a\n"), "dup.yaml")
	if err == nil || !strings.Contains(err.Error(), "duplicate attribute") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestParseFormRejectsEmpty(t *testing.T) {
	if _, err := model.ParseForm([]byte("  \n"), "empty.yaml"); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

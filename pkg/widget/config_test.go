package widget_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/widget"
)

func TestConfigMutatorsDoNotAlterReceiver(t *testing.T) {
	base := widget.NewConfig().
		WithAttributes(html.Attributes{"class": "a"}).
		WithContainerAttributes(html.Attributes{"class": "c"}).
		WithTag("div")

	_ = base.WithAttributes(html.Attributes{"class": "b", "id": "x"})
	_ = base.WithContainerClass("d")
	_ = base.WithTag("")
	_ = base.WithContainer(false)
	_ = base.WithEncode(false)
	_ = base.ClearAttributes()
	_ = base.ClearContainerAttributes()

	if diff := cmp.Diff(html.Attributes{"class": "a"}, base.Attributes()); diff != "" {
		t.Fatalf("attributes changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(html.Attributes{"class": "c"}, base.ContainerAttributes()); diff != "" {
		t.Fatalf("container attributes changed (-want +got):\n%s", diff)
	}
	if base.Tag() != "div" || !base.Container() || !base.Encode() {
		t.Fatalf("scalar options changed: tag=%q container=%v encode=%v", base.Tag(), base.Container(), base.Encode())
	}
}

func TestConfigGettersReturnCopies(t *testing.T) {
	cfg := widget.NewConfig().WithAttributes(html.Attributes{"class": "a"})
	attrs := cfg.Attributes()
	attrs["class"] = "mutated"
	if cfg.Attributes()["class"] != "a" {
		t.Fatalf("getter leaked internal map")
	}
}

func TestConfigMergesMapsKeyByKey(t *testing.T) {
	cfg := widget.NewConfig().
		WithAttributes(html.Attributes{"class": "a", "title": "t"}).
		WithAttributes(html.Attributes{"class": "b"})

	want := html.Attributes{"class": "b", "title": "t"}
	if diff := cmp.Diff(want, cfg.Attributes()); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestContainerClassFollowsCallOrder(t *testing.T) {
	classFirst := widget.NewConfig().
		WithContainerClass("from-class").
		WithContainerAttributes(html.Attributes{"class": "from-attributes"})
	if got := classFirst.ContainerAttributes()["class"]; got != "from-attributes" {
		t.Fatalf("expected later container attributes to win, got %q", got)
	}

	attributesFirst := widget.NewConfig().
		WithContainerAttributes(html.Attributes{"class": "from-attributes", "id": "c"}).
		WithContainerClass("from-class")
	want := html.Attributes{"class": "from-class", "id": "c"}
	if diff := cmp.Diff(want, attributesFirst.ContainerAttributes()); diff != "" {
		t.Fatalf("container attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigContent(t *testing.T) {
	text := `Write&nbsp;<b>bold</b><script>x()</script>`
	encoded := widget.NewConfig().Content(text)
	if encoded != "Write&amp;nbsp;&lt;b&gt;bold&lt;/b&gt;&lt;script&gt;x()&lt;/script&gt;" {
		t.Fatalf("unexpected encoded content %q", encoded)
	}
	raw := widget.NewConfig().WithEncode(false).Content(text)
	if raw != text {
		t.Fatalf("expected raw content, got %q", raw)
	}
	sanitized := widget.NewConfig().WithEncode(false).WithSanitize(true).Content(text)
	if sanitized == text {
		t.Fatalf("expected sanitizer to alter unsafe content")
	}
}

func TestElementAttributesIncludeID(t *testing.T) {
	cfg := widget.NewConfig().WithAttributes(html.Attributes{"class": "x"}).WithID("hint-1")
	want := html.Attributes{"class": "x", "id": "hint-1"}
	if diff := cmp.Diff(want, cfg.ElementAttributes()); diff != "" {
		t.Fatalf("element attributes mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cfg.Attributes()["id"]; ok {
		t.Fatalf("id must not leak into configured attributes")
	}
}

package mainview

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	props := Props{
		Width:  100,
		Height: 50,
		Header: "HEADER",
		Body:   "BODY",
		Status: "Loading more...",
	}

	got := Render(props)

	for _, want := range []string{"HEADER", "BODY", "Loading more..."} {
		if !strings.Contains(got, want) {
			t.Errorf("Missing %q", want)
		}
	}
	if strings.Index(got, "BODY") > strings.Index(got, "Loading more...") {
		t.Error("status should be rendered below the body")
	}
}

func TestRender_OnlyBody(t *testing.T) {
	got := Render(Props{Width: 20, Height: 3, Body: "BODY"})
	if !strings.Contains(got, "BODY") {
		t.Error("Missing body")
	}
}

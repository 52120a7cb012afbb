package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderVersionPretty(t *testing.T) {
	payload := versionPayload{
		Tool:      "fjson",
		Version:   "1.2.3",
		GitCommit: "abc1234",
		BuildDate: "2026-08-27",
	}

	var buf bytes.Buffer
	renderVersionPretty(&buf, payload, false)
	want := "fjson 1.2.3\ncommit: abc1234\nbuilt:  2026-08-27\n"
	if buf.String() != want {
		t.Errorf("plain output:\ngot  %q\nwant %q", buf.String(), want)
	}

	buf.Reset()
	renderVersionPretty(&buf, payload, true)
	if !strings.Contains(buf.String(), "1.2.3") {
		t.Errorf("colored output lost the version: %q", buf.String())
	}
}

func TestRenderVersionPrettyOmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	renderVersionPretty(&buf, versionPayload{Tool: "fjson", Version: "dev"}, false)
	if buf.String() != "fjson dev\n" {
		t.Errorf("got %q", buf.String())
	}
}

package config

import (
	"strings"
	"testing"
)

func TestParseDotEnvLine(t *testing.T) {
	cases := []struct {
		line      string
		key, want string
		ok        bool
	}{
		{"ZONE_FILE=astoria.json", "ZONE_FILE", "astoria.json", true},
		{"export DEBUG=high", "DEBUG", "high", true},
		{`API_KEY="with space"`, "API_KEY", "with space", true},
		{"API_KEY='single'", "API_KEY", "single", true},
		{"PORT=8046 # preview port", "PORT", "8046", true},
		{"HOST=a#b", "HOST", "a#b", true},
		{"EMPTY=", "EMPTY", "", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"=value", "", "", false},
		{"novalue", "", "", false},
	}
	for _, tc := range cases {
		key, got, ok := parseDotEnvLine(tc.line)
		if ok != tc.ok || key != tc.key || got != tc.want {
			t.Fatalf("parseDotEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)", tc.line, key, got, ok, tc.key, tc.want, tc.ok)
		}
	}
}

func TestParseDotEnv(t *testing.T) {
	src := "# zonelight\nZONE_FILE=/media/CIRCUITPY/astoria.json\nPREVIEW=off\nPREVIEW=on\n"
	entries, err := parseDotEnv(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseDotEnv error: %v", err)
	}
	if entries["ZONE_FILE"] != "/media/CIRCUITPY/astoria.json" {
		t.Fatalf("ZONE_FILE mismatch: %q", entries["ZONE_FILE"])
	}
	if entries["PREVIEW"] != "on" {
		t.Fatalf("expected later entry to win, got %q", entries["PREVIEW"])
	}
}

func TestApplyArgs(t *testing.T) {
	c := &Config{Debug: "off", ZoneFile: DefaultZoneFile}
	applyArgs(c, []string{"-debug", "high", "-zone-file", "/tmp/z.json", "-debug"})
	if c.Debug != "high" {
		t.Fatalf("debug mismatch: %q", c.Debug)
	}
	if c.ZoneFile != "/tmp/z.json" {
		t.Fatalf("zone file mismatch: %q", c.ZoneFile)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("ZL_TEST_INT", "12")
	t.Setenv("ZL_TEST_BAD_INT", "x")
	t.Setenv("ZL_TEST_BOOL", "off")

	if got := getEnvInt("ZL_TEST_INT", 1); got != 12 {
		t.Fatalf("getEnvInt = %d", got)
	}
	if got := getEnvInt("ZL_TEST_BAD_INT", 7); got != 7 {
		t.Fatalf("expected default for bad int, got %d", got)
	}
	if getEnvBool("ZL_TEST_BOOL", true) {
		t.Fatalf("expected off to be false")
	}
	if !getEnvBool("ZL_TEST_UNSET", true) {
		t.Fatalf("expected default for unset bool")
	}
	if got := getEnv("ZL_TEST_UNSET", "dflt"); got != "dflt" {
		t.Fatalf("getEnv = %q", got)
	}
}

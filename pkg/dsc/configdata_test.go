package dsc

import (
	"strings"
	"testing"
)

func TestConfigurationDataRender(t *testing.T) {
	d := NewConfigurationData()
	d.Set("web01", "Role", "FrontEnd", "")
	d.Set("web01", "Port", 8080, "listener port")
	d.SetGlobal("Environment", "Production", "")
	d.SetGlobal("Features", []string{"Audit", "Backup"}, "")

	got := d.Render()

	for _, want := range []string{
		"AllNodes = @(",
		"NodeName = \"web01\"",
		"Role = \"FrontEnd\"",
		"Port = 8080 # listener port",
		"NonNodeData = @{",
		"Environment = \"Production\"",
		"Features = @(\"Audit\",\"Backup\")",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q in:\n%s", want, got)
		}
	}

	// The global section renders apart from the per-node section.
	if strings.Index(got, "NodeName = \"web01\"") > strings.Index(got, "NonNodeData") {
		t.Error("node entries should render before the global section")
	}
}

func TestConfigurationDataKeyUniqueness(t *testing.T) {
	d := NewConfigurationData()
	d.Set("web01", "Role", "FrontEnd", "")
	d.Set("web01", "Role", "BackEnd", "updated")

	got := d.Render()
	if strings.Contains(got, "FrontEnd") {
		t.Errorf("updated key should replace the old value:\n%s", got)
	}
	if strings.Count(got, "Role = ") != 1 {
		t.Errorf("key should render exactly once:\n%s", got)
	}
}

func TestConfigurationDataDeterminism(t *testing.T) {
	build := func(order []string) string {
		d := NewConfigurationData()
		for _, n := range order {
			d.Set(n, "Role", "x", "")
		}
		return d.Render()
	}

	a := build([]string{"web02", "web01", "db01"})
	b := build([]string{"db01", "web02", "web01"})
	if a != b {
		t.Errorf("node insertion order changed output:\n%q\nvs\n%q", a, b)
	}
}

func TestConfigurationDataClear(t *testing.T) {
	d := NewConfigurationData()
	d.Set("web01", "Role", "FrontEnd", "")
	d.Clear()

	if got := d.Render(); strings.Contains(got, "web01") {
		t.Errorf("Clear should drop all entries:\n%s", got)
	}
}

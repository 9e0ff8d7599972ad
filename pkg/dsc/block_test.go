package dsc

import (
	"strings"
	"testing"
)

func TestRenderBlock(t *testing.T) {
	params := []Parameter{
		{Name: "Items", Value: TextArrayValue([]string{"Item1", "Item2"})},
		{Name: "Name", Value: TextValue("Test")},
		{Name: "Enabled", Value: BoolValue(true)},
	}

	want := "Enabled              = $True;\r\n" +
		"Items                = @(\"Item1\",\"Item2\");\r\n" +
		"Name                 = \"Test\";\r\n"

	got := RenderBlock("Widget", params, nil)
	if got != want {
		t.Errorf("RenderBlock() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderBlockDeterminism(t *testing.T) {
	shuffled := [][]Parameter{
		{
			{Name: "Zeta", Value: TextValue("z")},
			{Name: "Alpha", Value: TextValue("a")},
			{Name: "Mid", Value: BoolValue(false)},
		},
		{
			{Name: "Mid", Value: BoolValue(false)},
			{Name: "Zeta", Value: TextValue("z")},
			{Name: "Alpha", Value: TextValue("a")},
		},
	}

	first := RenderBlock("Widget", shuffled[0], nil)
	second := RenderBlock("Widget", shuffled[1], nil)
	if first != second {
		t.Errorf("input order changed output:\n%q\nvs\n%q", first, second)
	}
	if RenderBlock("Widget", shuffled[0], nil) != first {
		t.Error("re-rendering the same input should be byte-identical")
	}

	lines := strings.Split(strings.TrimSuffix(first, "\r\n"), "\r\n")
	wantOrder := []string{"Alpha", "Mid", "Zeta"}
	for i, line := range lines {
		if !strings.HasPrefix(line, wantOrder[i]) {
			t.Errorf("line %d = %q, want prefix %q", i, line, wantOrder[i])
		}
	}
}

func TestRenderBlockDropsUnresolvableNulls(t *testing.T) {
	params := []Parameter{
		{Name: "Kept", Value: TextValue("v")},
		{Name: "Dropped", Value: NullValue()},
	}

	got := RenderBlock("Widget", params, nil)
	if strings.Contains(got, "Dropped") {
		t.Errorf("null parameter without resolved type should be dropped:\n%q", got)
	}
	if !strings.Contains(got, "Kept") {
		t.Errorf("non-null parameter missing:\n%q", got)
	}
}

func TestRenderBlockResolvesTypedNulls(t *testing.T) {
	resolver := StaticResolver{
		"Widget/Items": KindTextArray,
		"Title":        KindText,
	}
	params := []Parameter{
		{Name: "Items", Value: NullValue()},
		{Name: "Title", Value: NullValue()},
		{Name: "Unknown", Value: NullValue()},
	}

	got := RenderBlock("Widget", params, resolver)
	if !strings.Contains(got, "Items                = @();") {
		t.Errorf("typed null array should render empty array:\n%q", got)
	}
	if !strings.Contains(got, "Title                = \"\";") {
		t.Errorf("typed null text should render empty string:\n%q", got)
	}
	if strings.Contains(got, "Unknown") {
		t.Errorf("unresolvable null should be dropped:\n%q", got)
	}
}

func TestRenderBlockMetadataComments(t *testing.T) {
	params := []Parameter{
		{Name: "Ensure", Value: TextValue("Present")},
		{Name: MetadataPrefix + "Ensure", Value: TextValue("# drift detected")},
	}

	got := RenderBlock("Widget", params, nil)
	if strings.Contains(got, MetadataPrefix) {
		t.Errorf("metadata parameter should not render its own line:\n%q", got)
	}
	want := "Ensure               = \"Present\"; # drift detected\r\n"
	if got != want {
		t.Errorf("RenderBlock() = %q, want %q", got, want)
	}
}

func TestRenderBlockAlignment(t *testing.T) {
	// A name longer than the floor moves the alignment column for the
	// whole block.
	params := []Parameter{
		{Name: "A", Value: TextValue("1")},
		{Name: "AVeryLongParameterNameIndeed", Value: TextValue("2")},
	}

	got := RenderBlock("Widget", params, nil)
	lines := strings.Split(strings.TrimSuffix(got, "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%q", len(lines), got)
	}
	first := strings.Index(lines[0], "=")
	second := strings.Index(lines[1], "=")
	if first != second {
		t.Errorf("assignment columns differ: %d vs %d", first, second)
	}
	if want := len("AVeryLongParameterNameIndeed") + 1; first != want {
		t.Errorf("assignment column = %d, want %d", first, want)
	}
}

func TestRenderResourceBlock(t *testing.T) {
	params := []Parameter{
		{Name: "Name", Value: TextValue("Test")},
	}

	got := RenderResourceBlock("Widget", "Instance1", params, nil)
	want := "Widget \"Instance1\"\r\n" +
		"{\r\n" +
		"    Name                 = \"Test\";\r\n" +
		"}\r\n"
	if got != want {
		t.Errorf("RenderResourceBlock() =\n%q\nwant\n%q", got, want)
	}
}

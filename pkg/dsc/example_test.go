package dsc_test

import (
	"fmt"
	"strings"

	"github.com/dscforge/dscforge/pkg/dsc"
)

// ExampleRenderBlock demonstrates rendering a parameter set as aligned
// assignment lines.
func ExampleRenderBlock() {
	params := []dsc.Parameter{
		{Name: "Name", Value: dsc.TextValue("Test")},
		{Name: "Enabled", Value: dsc.BoolValue(true)},
		{Name: "Items", Value: dsc.TextArrayValue([]string{"Item1", "Item2"})},
	}

	block := dsc.RenderBlock("Widget", params, nil)
	for _, line := range strings.Split(strings.TrimSuffix(block, "\r\n"), "\r\n") {
		fmt.Println(strings.TrimRight(line, "\r"))
	}
	// Output:
	// Enabled              = $True;
	// Items                = @("Item1","Item2");
	// Name                 = "Test";
}

// ExampleStripQuotes demonstrates promoting a rendered string literal to
// a bare variable reference.
func ExampleStripQuotes() {
	block := "InstallAccount = \"$Credsfarmadmin\";\r\n"
	out := dsc.StripQuotes(block, "InstallAccount", false, false)
	fmt.Println(strings.TrimRight(strings.TrimSuffix(out, "\r\n"), "\r"))
	// Output:
	// InstallAccount = $Credsfarmadmin;
}

// ExampleRegistry demonstrates the credential registry shared across one
// extraction run.
func ExampleRegistry() {
	reg := dsc.NewRegistry()
	reg.Save(`CONTOSO\Admin-User.Name`)

	fmt.Println(reg.Contains(`contoso\admin-user.name`))
	fmt.Println(reg.ReferenceName(`CONTOSO\Admin-User.Name`))
	// Output:
	// true
	// $CredsAdmin_User_Name
}

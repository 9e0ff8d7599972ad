package dsc

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// GlobalNode is the reserved node identifier for entries that apply to
// the configuration as a whole rather than to a single node.
const GlobalNode = "NonNodeData"

// dataEntry is one key/value pair of a configuration data node.
type dataEntry struct {
	key         string
	value       any
	description string
}

// ConfigurationData accumulates per-node key/value entries over one
// extraction run and renders them as a configuration data document.
// Keys are unique within a node; setting an existing key updates its
// value in place and keeps the original position.
type ConfigurationData struct {
	mu    sync.Mutex
	order []string
	nodes map[string][]dataEntry
}

// NewConfigurationData returns an empty configuration data set.
func NewConfigurationData() *ConfigurationData {
	return &ConfigurationData{nodes: make(map[string][]dataEntry)}
}

// Set records an entry for the given node.
func (d *ConfigurationData) Set(node, key string, value any, description string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	entries, ok := d.nodes[node]
	if !ok {
		d.order = append(d.order, node)
	}
	for i := range entries {
		if entries[i].key == key {
			entries[i].value = value
			entries[i].description = description
			return
		}
	}
	d.nodes[node] = append(entries, dataEntry{key: key, value: value, description: description})
}

// SetGlobal records an entry under the reserved global node.
func (d *ConfigurationData) SetGlobal(key string, value any, description string) {
	d.Set(GlobalNode, key, value, description)
}

// Clear drops all recorded entries.
func (d *ConfigurationData) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.order = nil
	d.nodes = make(map[string][]dataEntry)
}

// Render emits the configuration data document: node entries inside an
// AllNodes array, global entries in a separate NonNodeData section.
// Values reuse the literal formatting rules of the renderer.
func (d *ConfigurationData) Render() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var b strings.Builder
	b.WriteString("@{" + lineBreak)
	b.WriteString("    AllNodes = @(" + lineBreak)
	for _, node := range d.sortedNodes() {
		b.WriteString("        @{" + lineBreak)
		fmt.Fprintf(&b, "            NodeName = %q%s", node, lineBreak)
		for _, e := range d.nodes[node] {
			writeDataEntry(&b, "            ", e)
		}
		b.WriteString("        }" + lineBreak)
	}
	b.WriteString("    )" + lineBreak)
	b.WriteString("    " + GlobalNode + " = @{" + lineBreak)
	for _, e := range d.nodes[GlobalNode] {
		writeDataEntry(&b, "        ", e)
	}
	b.WriteString("    }" + lineBreak)
	b.WriteString("}" + lineBreak)
	return b.String()
}

// sortedNodes returns the non-global node identifiers in sorted order so
// rendering is deterministic regardless of insertion order.
func (d *ConfigurationData) sortedNodes() []string {
	nodes := make([]string, 0, len(d.order))
	for _, n := range d.order {
		if n == GlobalNode {
			continue
		}
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

func writeDataEntry(b *strings.Builder, indent string, e dataEntry) {
	b.WriteString(indent)
	b.WriteString(e.key)
	b.WriteString(" = ")
	b.WriteString(renderDataValue(e.value))
	if e.description != "" {
		b.WriteString(" # " + e.description)
	}
	b.WriteString(lineBreak)
}

// renderDataValue renders a configuration data value with the same
// nested-value rules as the literal formatters; values outside the
// closed union fall back to a quoted best-effort stringification.
func renderDataValue(raw any) string {
	switch raw.(type) {
	case int, int32, int64, uint, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", raw)
	}
	if v, ok := Classify(raw); ok {
		return FormatLiteral("", v, FormatFlags{})
	}
	return `"` + Escape(fmt.Sprint(raw), false) + `"`
}

package engine

// RenderedBlock is one resource instance rendered as a block, after
// any quote promotions have been applied.
type RenderedBlock struct {
	// ResourceType is the DSC resource type name.
	ResourceType string

	// InstanceName is the instance name inside the document.
	InstanceName string

	// Text is the rendered block, CRLF terminated.
	Text string
}

// Result is the outcome of one extraction run.
type Result struct {
	// RunID identifies the persisted run. Empty when persistence is
	// disabled.
	RunID string

	// Document is the assembled configuration document.
	Document string

	// Data is the rendered configuration data file. Empty when the
	// manifest declares no data.
	Data string

	// Blocks are the rendered resource blocks in manifest order.
	Blocks []RenderedBlock

	// Credentials are the registered credential reference variable
	// names, sorted.
	Credentials []string
}

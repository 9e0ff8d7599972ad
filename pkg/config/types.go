package config

// Manifest is the root of an extraction manifest: the resource instances
// to render, where the output goes, and how the run is observed and
// persisted.
type Manifest struct {
	// Name identifies the generated configuration.
	Name string `yaml:"name" validate:"required"`

	// Output controls where rendered documents are written.
	Output OutputConfig `yaml:"output"`

	// Store configures run persistence. An empty path disables it.
	Store StoreConfig `yaml:"store"`

	// Logging configures structured logging for the run.
	Logging LoggingConfig `yaml:"logging"`

	// Resources are the resource instances to extract.
	Resources []ResourceInstance `yaml:"resources" validate:"required,min=1,dive"`

	// Promotions lists parameters whose rendered string literal is
	// promoted to a bare variable reference after assembly.
	Promotions []Promotion `yaml:"promotions,omitempty" validate:"dive"`

	// Data holds configuration data entries keyed by node identifier.
	Data map[string]map[string]any `yaml:"data,omitempty"`
}

// ResourceInstance is one resource to render as a block.
type ResourceInstance struct {
	// Type is the DSC resource type name (e.g. "xWebSite").
	Type string `yaml:"type" validate:"required"`

	// Name is the instance name inside the configuration document.
	Name string `yaml:"name" validate:"required"`

	// Parameters maps parameter names to raw values. Value kinds are
	// derived from the runtime type; null parameters fall back to the
	// declared Types entry.
	Parameters map[string]any `yaml:"parameters"`

	// Types declares literal kinds for parameters whose value is null
	// (kind names: text, bool, credential, map, textarray, intarray,
	// objectarray, enum, raw).
	Types map[string]string `yaml:"types,omitempty"`

	// Credentials names the parameters whose string values are
	// usernames to resolve into credential references.
	Credentials []string `yaml:"credentials,omitempty"`

	// NoEscape names the parameters rendered without the escaping pass.
	NoEscape []string `yaml:"no_escape,omitempty"`

	// AllowVariables names the parameters whose $ expressions stay live.
	AllowVariables []string `yaml:"allow_variables,omitempty"`

	// Comments maps parameter names to inline comments appended to
	// their rendered line.
	Comments map[string]string `yaml:"comments,omitempty"`
}

// Promotion requests a quote-boundary rewrite for one parameter of one
// resource instance.
type Promotion struct {
	// Resource is the instance name the promotion applies to.
	Resource string `yaml:"resource" validate:"required"`

	// Parameter is the parameter whose literal is promoted.
	Parameter string `yaml:"parameter" validate:"required"`

	// ArrayLike marks array-valued parameters for the nested-literal
	// scanning rules.
	ArrayLike bool `yaml:"array_like,omitempty"`

	// ObjectLike marks hashtable/CIM-valued parameters for the
	// nested-literal scanning rules.
	ObjectLike bool `yaml:"object_like,omitempty"`
}

// OutputConfig controls where rendered documents are written.
type OutputConfig struct {
	// Directory receives the rendered files. Empty means stdout.
	Directory string `yaml:"directory,omitempty"`

	// DocumentFile is the configuration document file name.
	DocumentFile string `yaml:"document_file,omitempty"`

	// DataFile is the configuration data file name.
	DataFile string `yaml:"data_file,omitempty"`
}

// StoreConfig configures extraction run persistence.
type StoreConfig struct {
	// Path is the SQLite database path. Empty disables persistence.
	Path string `yaml:"path,omitempty"`
}

// LoggingConfig mirrors telemetry.LoggingConfig in manifest form.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error fatal"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=console json"`
	Output string `yaml:"output,omitempty"`
}

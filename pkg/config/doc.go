// Package config defines the extraction manifest and its YAML loader.
//
// A manifest names the resource instances to render, the parameters and
// declared kinds for null values, credential and escaping markers,
// post-assembly promotions, and the output, logging and persistence
// settings for the run. Parsing is a plain decode followed by struct
// tag validation and cross-field semantic checks; errors carry enough
// context to fix the manifest without reading code.
package config

// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It discovers .hcl files, parses puzzle blocks, evaluates their
// attribute expressions into cty values, and translates the result into the
// format-agnostic config model.
package hcl

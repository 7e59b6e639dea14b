// Package hclconf is the HCL implementation of config.Loader. It reads the
// optional spvbuild.hcl manifest from the scan directory and merges it over
// the built-in defaults.
package hclconf

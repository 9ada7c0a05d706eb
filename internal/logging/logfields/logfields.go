// Package logfields defines common logging fields which are used across packages
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// File is a source file being scanned
	File = "file"

	// Path is an input root or output path
	Path = "path"

	// Identifier is a documented class or type name
	Identifier = "identifier"

	// Lang is the source language of a scanner
	Lang = "lang"

	// Count is a number of items
	Count = "count"
)

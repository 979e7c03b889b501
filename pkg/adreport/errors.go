package adreport

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidLayout indicates the report layout failed validation.
var ErrInvalidLayout = errors.New("invalid report layout")

// SheetError represents a failure while building or inspecting one sheet.
type SheetError struct {
	Op        string // "build" or "inspect"
	SheetName string
	Component string // "sheet", "widths", "banner", "table", "chart", "print_area", "cells", "save"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s error in sheet %q (%s): %v", e.Op, e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

func buildError(sheetName, component string, err error) *SheetError {
	return &SheetError{Op: "build", SheetName: sheetName, Component: component, Err: err}
}

func inspectError(sheetName, component string, err error) *SheetError {
	return &SheetError{Op: "inspect", SheetName: sheetName, Component: component, Err: err}
}

package domain

import "errors"

// ErrDocumentNotFound is returned when a document name cannot be found in a store.
var ErrDocumentNotFound = errors.New("document not found")

// ErrEmptyName is returned when an operation requires a document name and none was given.
var ErrEmptyName = errors.New("document name cannot be empty")

// ErrInvalidDefinition is returned when a declarative tree definition cannot be decoded.
var ErrInvalidDefinition = errors.New("invalid tree definition")

// ErrInvalidName is returned when a document name would escape its store, e.g. "../x.tex".
var ErrInvalidName = errors.New("invalid document name")

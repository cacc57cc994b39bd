package models

// AnnotationType represents the type of annotation found in source code
type AnnotationType int

const (
	AnnotationTypeFlow AnnotationType = iota
	AnnotationTypeModule
	AnnotationTypeService
)

// ServiceKind distinguishes how a declared service is realized in Go
type ServiceKind int

const (
	ServiceKindInterface ServiceKind = iota
	ServiceKindStruct
)

// ErrorType represents different types of generator errors
type ErrorType int

const (
	ErrorTypeAnnotationSyntax ErrorType = iota
	ErrorTypeValidation
	ErrorTypeGeneration
	ErrorTypeFileSystem
)

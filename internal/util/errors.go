package util

import "errors"

var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
)

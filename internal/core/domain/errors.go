package domain

import "go.trai.ch/zerr"

var (
	// ErrInputNotRegularFile is returned when the analyzer result path does not point to a regular file.
	ErrInputNotRegularFile = zerr.New("input is not a regular file")

	// ErrMissingAnalyzerResult is returned when a loaded report has no analyzer section.
	ErrMissingAnalyzerResult = zerr.New("report does not contain an analyzer result")

	// ErrUnsupportedReportFormat is returned when a report file extension is not recognized.
	ErrUnsupportedReportFormat = zerr.New("unsupported report format")

	// ErrUnknownOutputFormat is returned when an output format name is not registered.
	ErrUnknownOutputFormat = zerr.New("unknown output format")

	// ErrUnknownScanner is returned when a scanner name is not registered.
	ErrUnknownScanner = zerr.New("unknown scanner")

	// ErrScannerAlreadyRegistered is returned when registering a scanner name twice.
	ErrScannerAlreadyRegistered = zerr.New("scanner already registered")

	// ErrInvalidIdentifier is returned when an identifier cannot be parsed.
	ErrInvalidIdentifier = zerr.New("invalid identifier")

	// ErrInvalidScannerOption is returned when a backend option has the wrong type or value.
	ErrInvalidScannerOption = zerr.New("invalid scanner option")

	// ErrScanFailed is returned when the scan backend fails as a whole.
	ErrScanFailed = zerr.New("scan failed")

	// ErrNoInputFile is returned when no analyzer result path is given.
	ErrNoInputFile = zerr.New("no input file specified")

	// ErrNoOutputDir is returned when no output directory is given.
	ErrNoOutputDir = zerr.New("no output directory specified")
)

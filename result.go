package clisp

// Result is the outcome of evaluating one batch of top-level forms.
type Result struct {
	// Output is the full printed transcript, one line per top-level
	// form's result plus any PRINT output, exactly as the driver would
	// write to stdout.
	Output string
	// Value is the printed representation of the last form's result.
	Value string
}

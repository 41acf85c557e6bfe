package diag_test

import (
	"fmt"

	"github.com/structedit/structedit/internal/diag"
)

// ExampleDiagnostic_FormatForTerminal demonstrates terminal formatting.
func ExampleDiagnostic_FormatForTerminal() {
	sourceContent := `scope:
  regex: "(unterminated"
actions:
  - upper
`

	loc := diag.SourceLocation{
		File:   ".structedit.yaml",
		Line:   2,
		Column: 10,
		Length: 14,
	}

	err := diag.NewDiagnostic(
		"config",
		diag.ErrInvalidRegex,
		"invalid regular expression: missing closing parenthesis",
		loc,
		diag.Error,
	)

	err = diag.EnrichError(err, sourceContent)

	output := err.FormatForTerminal()
	fmt.Println(diag.StripColors(output))

	// Output includes error, location, context, and suggestion
}

// ExampleErrorRecovery demonstrates collecting multiple errors.
func ExampleErrorRecovery() {
	recovery := diag.NewErrorRecovery()

	for i := 1; i <= 3; i++ {
		loc := diag.SourceLocation{
			File:   ".structedit.yaml",
			Line:   i,
			Column: 1,
		}
		err := diag.NewDiagnostic(
			"config",
			diag.ErrConfigInvalidField,
			fmt.Sprintf("invalid field at line %d", i),
			loc,
			diag.Error,
		)
		recovery.Recover(err)
	}

	fmt.Printf("Collected %d errors\n", recovery.ErrorCount())
	fmt.Println(recovery.Summary())

	// Output:
	// Collected 3 errors
	// Found 3 error(s)
}

// ExampleFormatErrorsAsJSON demonstrates JSON output.
func ExampleFormatErrorsAsJSON() {
	loc := diag.SourceLocation{
		File:   ".structedit.yaml",
		Line:   5,
		Column: 10,
	}

	err := diag.NewDiagnostic(
		"action",
		diag.ErrUnknownAction,
		"unknown action \"uppercase\", did you mean \"upper\"?",
		loc,
		diag.Error,
	)

	jsonOutput, _ := err.FormatAsJSON()
	fmt.Println("JSON output available")
	_ = jsonOutput

	// Output:
	// JSON output available
}

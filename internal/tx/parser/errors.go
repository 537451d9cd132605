package parser

import "fmt"

// UnexpectedEOFError reports a read that would run past the end of the
// buffer. Position is where the cursor stood when the read was attempted.
type UnexpectedEOFError struct {
	Position int
	Expected int
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of data at position %d, expected %d bytes", e.Position, e.Expected)
}

// InvalidTransactionError reports a structurally invalid transaction, such
// as a zero input or output count.
type InvalidTransactionError struct {
	Reason string
}

func (e *InvalidTransactionError) Error() string {
	return "invalid transaction: " + e.Reason
}

// TrailingDataError reports unconsumed bytes left after the locktime field.
type TrailingDataError struct {
	Remaining int
}

func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("data remaining after parsing: %d bytes", e.Remaining)
}

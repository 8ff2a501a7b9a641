package app

// Operation tracks one CLI run: the command being executed, the parameters
// it was given, and whether it ultimately succeeded. The record is created
// in memory when the app is wired and written to the run log on Close;
// nothing about it survives the process.
type Operation struct {
	Name       string
	Parameters string
	Status     string // "success" or "error"
}

// NewOperation creates an operation record for the named command.
// Operations start out successful and turn failed on the first error.
func NewOperation(name, parameters string) *Operation {
	return &Operation{
		Name:       name,
		Parameters: parameters,
		Status:     "success",
	}
}

// Fail marks the operation as failed. Failing is one-way: a later success
// inside the same run does not reset the status.
func (op *Operation) Fail() {
	op.Status = "error"
}

// Failed returns true if any step of this run has failed.
func (op *Operation) Failed() bool {
	return op.Status == "error"
}

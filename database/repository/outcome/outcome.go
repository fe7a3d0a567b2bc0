// Package outcome defines the closed result vocabulary shared by every
// repository operation. Expected conditions (not found, failed referential
// validation) are reported through an Outcome value rather than an error;
// only unexpected storage failures travel on the error return.
package outcome

import "fmt"

// Status is the coarse classification of a repository call.
type Status int

const (
	Ok Status = iota
	NotFound
	ValidationError
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case NotFound:
		return "NotFound"
	case ValidationError:
		return "ValidationError"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Action records what the call actually did to the store.
type Action int

const (
	None Action = iota
	Created
	Updated
)

func (a Action) String() string {
	switch a {
	case None:
		return "None"
	case Created:
		return "Created"
	case Updated:
		return "Updated"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Outcome pairs a Status with an Action. Repositories only ever produce the
// five exported combinations below; the HTTP layer maps them to status codes.
type Outcome struct {
	Status Status
	Action Action
}

var (
	OkNone              = Outcome{Ok, None}
	OkCreated           = Outcome{Ok, Created}
	OkUpdated           = Outcome{Ok, Updated}
	NotFoundNone        = Outcome{NotFound, None}
	ValidationErrorNone = Outcome{ValidationError, None}
)

func (o Outcome) String() string {
	return o.Status.String() + "/" + o.Action.String()
}

// ValidationCause describes the referential check that failed and the value
// that failed it. It accompanies ValidationErrorNone outcomes.
type ValidationCause struct {
	Cause string `json:"cause"`
	Data  string `json:"data"`
}

func (c *ValidationCause) Error() string {
	return fmt.Sprintf("%s: %s", c.Cause, c.Data)
}

// PanicNilArg signals a nil required argument. These are caller bugs, kept
// strictly apart from domain outcomes.
func PanicNilArg(name string) {
	panic(fmt.Sprintf("required argument %q is nil", name))
}

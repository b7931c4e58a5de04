package plan

import (
	"errors"
	"fmt"

	"clone-generator/internal/analyze"
	"clone-generator/internal/common"
	"clone-generator/internal/diagnostic"
	"clone-generator/internal/model"
	"clone-generator/internal/policy"
)

// Method names of the generated operations.
const (
	MethodClone     = "Clone"
	MethodCloneSafe = "CloneSafe"
)

// ErrEmptyIdentity is returned when an artifact does not name its type.
var ErrEmptyIdentity = errors.New("artifact has an empty type identity")

// Operation selects one of the two generated clone operations.
type Operation int

const (
	// OperationFast is the unchecked Clone; it does not terminate on cyclic graphs.
	OperationFast Operation = iota
	// OperationSafe is CloneSafe, which threads a reference chain.
	OperationSafe
)

// String returns a human-readable representation of the Operation.
func (o Operation) String() string {
	switch o {
	case OperationFast:
		return "fast"
	case OperationSafe:
		return "safe"
	default:
		return common.UnknownStr
	}
}

// Method returns the generated method name of the operation.
func (o Operation) Method() string {
	if o == OperationSafe {
		return MethodCloneSafe
	}

	return MethodClone
}

// ActionKind describes what an operation does with one property.
type ActionKind int

const (
	// ActionAssign copies the value as is.
	ActionAssign ActionKind = iota
	// ActionCloneFast replaces the value with its Clone().
	ActionCloneFast
	// ActionCloneSafe replaces the value with its CloneSafe(chain).
	ActionCloneSafe
)

// String returns a human-readable representation of the ActionKind.
func (k ActionKind) String() string {
	switch k {
	case ActionAssign:
		return "assign"
	case ActionCloneFast:
		return "clone"
	case ActionCloneSafe:
		return "clone-safe"
	default:
		return common.UnknownStr
	}
}

// Action is one statement of a generated operation.
type Action struct {
	Field string
	Kind  ActionKind
	Shape model.Shape
}

// IsRecursive returns true if the action calls a clone method.
func (a Action) IsRecursive() bool {
	return a.Kind != ActionAssign
}

// Artifact is everything emission needs to render the two clone operations of
// one type.
type Artifact struct {
	Type          analyze.TypeID
	PkgName       string
	Dir           string
	Accessibility model.Accessibility
	Mode          model.SelectionMode

	// Properties is the ordered property plan, shallow copies first.
	Properties []policy.PropertyPlan
	// Excluded properties are left at their zero value.
	Excluded []policy.PropertyPlan

	Fast []Action
	Safe []Action
}

// Actions returns the action list of op.
func (a *Artifact) Actions(op Operation) []Action {
	if op == OperationSafe {
		return a.Safe
	}

	return a.Fast
}

// Validate checks the artifact contract expected by emission.
func (a *Artifact) Validate() error {
	if a == nil || a.Type.IsZero() || a.PkgName == "" {
		return ErrEmptyIdentity
	}

	if len(a.Fast) != len(a.Properties) || len(a.Safe) != len(a.Properties) {
		return fmt.Errorf("artifact %s: %d properties but %d fast and %d safe actions",
			a.Type, len(a.Properties), len(a.Fast), len(a.Safe))
	}

	return nil
}

// Result is the outcome of planning a whole graph.
type Result struct {
	// Artifacts holds one artifact per eligible type, sorted by TypeID.
	Artifacts []*Artifact
	// Diagnostics contains all warnings and errors from planning.
	Diagnostics diagnostic.Diagnostics
}

// Artifact returns the artifact of id, or nil.
func (r *Result) Artifact(id analyze.TypeID) *Artifact {
	for _, a := range r.Artifacts {
		if a.Type == id {
			return a
		}
	}

	return nil
}

package domain

// Operation is the trade direction of an in-progress conversation flow.
type Operation string

const (
	OperationNone Operation = ""
	OperationBuy  Operation = "BUY"
	OperationSell Operation = "SELL"
)

// Step is the point the conversation flow is waiting at.
type Step string

const (
	StepNone           Step = ""
	StepAwaitingAsset  Step = "AWAITING_ASSET"
	StepAwaitingAmount Step = "AWAITING_AMOUNT"
)

// ConversationState is the per-user, in-process state of a trade flow.
// The zero value means "idle". It is never persisted; a process restart
// drops all in-flight conversations.
type ConversationState struct {
	Operation Operation `json:"operation"`
	Step      Step      `json:"step"`
	Asset     string    `json:"asset"`
}

// Idle reports whether no flow is in progress.
func (s ConversationState) Idle() bool {
	return s.Operation == OperationNone && s.Step == StepNone
}

// Valid checks the state invariant: a non-idle step requires an operation.
func (s ConversationState) Valid() bool {
	return s.Step == StepNone || s.Operation != OperationNone
}

// StatePatch is a shallow-merge update to a ConversationState.
// Nil fields leave the existing value untouched.
type StatePatch struct {
	Operation *Operation
	Step      *Step
	Asset     *string
}

// Apply merges the patch into s.
func (p StatePatch) Apply(s *ConversationState) {
	if p.Operation != nil {
		s.Operation = *p.Operation
	}
	if p.Step != nil {
		s.Step = *p.Step
	}
	if p.Asset != nil {
		s.Asset = *p.Asset
	}
}

// PatchOperation returns a patch setting only the operation.
func PatchOperation(op Operation) StatePatch { return StatePatch{Operation: &op} }

// PatchStep returns a patch setting only the step.
func PatchStep(st Step) StatePatch { return StatePatch{Step: &st} }

// PatchAsset returns a patch setting only the asset.
func PatchAsset(asset string) StatePatch { return StatePatch{Asset: &asset} }

package models

// IdeaCategory is the closed set of idea buckets.
type IdeaCategory string

const (
	IdeaCategoryProduct  IdeaCategory = "Product"
	IdeaCategoryContent  IdeaCategory = "Content"
	IdeaCategoryBusiness IdeaCategory = "Business"
	IdeaCategoryLearning IdeaCategory = "Learning"
	IdeaCategoryLife     IdeaCategory = "Life"
)

// Valid reports whether c is a known idea category.
func (c IdeaCategory) Valid() bool {
	switch c {
	case IdeaCategoryProduct, IdeaCategoryContent, IdeaCategoryBusiness,
		IdeaCategoryLearning, IdeaCategoryLife:
		return true
	}
	return false
}

// Urgency ranks an idea.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Rank maps urgency to a sortable weight, highest first.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyHigh:
		return 0
	case UrgencyMedium:
		return 1
	case UrgencyLow:
		return 2
	}
	return 3
}

// IdeaStatus is the triage state of an idea.
type IdeaStatus string

const (
	IdeaStatusInbox    IdeaStatus = "Inbox"
	IdeaStatusArchived IdeaStatus = "Archived"
	IdeaStatusApproved IdeaStatus = "Approved"
)

// Valid reports whether s is a known idea status.
func (s IdeaStatus) Valid() bool {
	switch s {
	case IdeaStatusInbox, IdeaStatusArchived, IdeaStatusApproved:
		return true
	}
	return false
}

// Priority ranks a todo.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Rank maps priority to a sortable weight, most urgent first.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// TodoStatus is the lifecycle state of a todo. Transitions between any two
// states are allowed.
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "Pending"
	TodoStatusInProgress TodoStatus = "In Progress"
	TodoStatusCompleted  TodoStatus = "Completed"
)

// Valid reports whether s is a known todo status.
func (s TodoStatus) Valid() bool {
	switch s {
	case TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted:
		return true
	}
	return false
}

// OutcomeStatus grades a weekly outcome.
type OutcomeStatus string

const (
	OutcomeSuccessful OutcomeStatus = "Successful"
	OutcomePartial    OutcomeStatus = "Partial"
	OutcomeFailed     OutcomeStatus = "Failed"
)

// Valid reports whether s is a known outcome status.
func (s OutcomeStatus) Valid() bool {
	switch s {
	case OutcomeSuccessful, OutcomePartial, OutcomeFailed:
		return true
	}
	return false
}

// GateStatus is the state of a decision gate.
type GateStatus string

const (
	GateStatusPending GateStatus = "Pending"
	GateStatusDecided GateStatus = "Decided"
)

// Impact classifies a discovery's leverage.
type Impact string

const (
	ImpactLinear      Impact = "Linear"
	ImpactExponential Impact = "Exponential"
	ImpactDisruptive  Impact = "Disruptive"
)

// Rank maps impact to a sortable weight, biggest first.
func (i Impact) Rank() int {
	switch i {
	case ImpactDisruptive:
		return 0
	case ImpactExponential:
		return 1
	case ImpactLinear:
		return 2
	}
	return 3
}

// ExpenseCategory is the closed set of expense buckets.
type ExpenseCategory string

const (
	ExpenseCategoryTools         ExpenseCategory = "Tools"
	ExpenseCategorySubscriptions ExpenseCategory = "Subscriptions"
	ExpenseCategoryEducation     ExpenseCategory = "Education"
	ExpenseCategoryHardware      ExpenseCategory = "Hardware"
	ExpenseCategoryOther         ExpenseCategory = "Other"
)

// Valid reports whether c is a known expense category.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseCategoryTools, ExpenseCategorySubscriptions,
		ExpenseCategoryEducation, ExpenseCategoryHardware, ExpenseCategoryOther:
		return true
	}
	return false
}

package domain

import "time"

// TaskPriority orders the front-desk task list.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// Task is a front-desk to-do item.
type Task struct {
	ID        string       `json:"id" yaml:"id" mapstructure:"id"`
	Title     string       `json:"title" yaml:"title" mapstructure:"title"`
	DueDate   time.Time    `json:"due_date" yaml:"due_date" mapstructure:"due_date"`
	Completed bool         `json:"completed" yaml:"completed" mapstructure:"completed"`
	Reminded  bool         `json:"reminded" yaml:"reminded" mapstructure:"reminded"`
	Priority  TaskPriority `json:"priority" yaml:"priority" mapstructure:"priority"`
	PatientID *int         `json:"patient_id,omitempty" yaml:"patient_id,omitempty" mapstructure:"patient_id"`
}

// TaskPatch is a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title     *string       `json:"title,omitempty" mapstructure:"title"`
	DueDate   *time.Time    `json:"due_date,omitempty" mapstructure:"due_date"`
	Completed *bool         `json:"completed,omitempty" mapstructure:"completed"`
	Reminded  *bool         `json:"reminded,omitempty" mapstructure:"reminded"`
	Priority  *TaskPriority `json:"priority,omitempty" mapstructure:"priority"`
}

// Apply returns t with the non-nil patch fields applied.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Reminded != nil {
		t.Reminded = *p.Reminded
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	return t
}

// MessageStatus tracks a portal message in the inbox.
type MessageStatus string

const (
	MessageUnread  MessageStatus = "Unread"
	MessageRead    MessageStatus = "Read"
	MessageReplied MessageStatus = "Replied"
)

// PortalReply is a staff answer to a portal message.
type PortalReply struct {
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// PortalMessage is a message sent by a patient through the online portal.
type PortalMessage struct {
	ID        string        `json:"id" yaml:"id" mapstructure:"id"`
	PatientID int           `json:"patient_id" yaml:"patient_id" mapstructure:"patient_id"`
	Subject   string        `json:"subject" yaml:"subject" mapstructure:"subject"`
	Content   string        `json:"content" yaml:"content" mapstructure:"content"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp" mapstructure:"timestamp"`
	Status    MessageStatus `json:"status" yaml:"status" mapstructure:"status"`
	Category  string        `json:"category" yaml:"category" mapstructure:"category"`
	Replies   []PortalReply `json:"replies,omitempty" yaml:"replies,omitempty" mapstructure:"replies"`
}

// MedicalRecord is a health-history entry (medication, allergy, condition).
type MedicalRecord struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	PatientID   int    `json:"patient_id" yaml:"patient_id" mapstructure:"patient_id"`
	Type        string `json:"type" yaml:"type" mapstructure:"type"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	Date        string `json:"date" yaml:"date" mapstructure:"date"`
	Active      bool   `json:"active" yaml:"active" mapstructure:"active"`
}

// ToastKind selects how a toast is rendered.
type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification in the UI queue.
type Toast struct {
	ID      string    `json:"id" mapstructure:"id"`
	Message string    `json:"message" mapstructure:"message"`
	Kind    ToastKind `json:"kind" mapstructure:"kind"`
}

// LoggedAction is an audit record of a UI-level action (report runs, searches).
type LoggedAction struct {
	Type       string            `json:"type" mapstructure:"type"`
	ReportName string            `json:"report_name,omitempty" mapstructure:"report_name"`
	Details    map[string]string `json:"details,omitempty" mapstructure:"details"`
	Timestamp  time.Time         `json:"timestamp" mapstructure:"timestamp"`
}

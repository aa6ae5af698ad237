package domain

import "time"

// Kind identifies an action in the closed vocabulary accepted by the engine.
type Kind string

// Action is a single, typed request to change the session state.
type Action interface {
	Kind() Kind
}

// Action kinds.
const (
	KindSelectPatient    Kind = "SELECT_PATIENT"
	KindAddPatient       Kind = "ADD_PATIENT"
	KindAddFamilyMember  Kind = "ADD_FAMILY_MEMBER"
	KindUpdatePatient    Kind = "UPDATE_PATIENT"
	KindDeletePatient    Kind = "DELETE_PATIENT"
	KindScheduleAppts    Kind = "SCHEDULE_APPOINTMENTS"
	KindUpdateAppt       Kind = "UPDATE_APPOINTMENT"
	KindDeleteAppt       Kind = "DELETE_APPOINTMENT"
	KindCancelAppt       Kind = "CANCEL_APPOINTMENT"
	KindMoveAppt         Kind = "MOVE_APPOINTMENT"
	KindPinAppt          Kind = "PIN_APPOINTMENT"
	KindWaitlistAppt     Kind = "WAITLIST_APPOINTMENT"
	KindUpdateDayNote    Kind = "UPDATE_DAY_NOTE"
	KindAddLedgerEntry   Kind = "ADD_LEDGER_ENTRY"
	KindUpdateChart      Kind = "UPDATE_CHART"
	KindBulkUpdateChart  Kind = "BULK_UPDATE_CHART"
	KindMovePlannedTx    Kind = "MOVE_PLANNED_TREATMENT"
	KindLogAction        Kind = "LOG_ACTION"
	KindAddDocument      Kind = "ADD_DOCUMENT"
	KindAddUnassignedDoc Kind = "ADD_UNASSIGNED_DOCUMENT"
	KindUpdateUnassigned Kind = "UPDATE_UNASSIGNED_DOCUMENT"
	KindDeleteUnassigned Kind = "DELETE_UNASSIGNED_DOCUMENT"
	KindAssignDocument   Kind = "ASSIGN_DOCUMENT_TO_PATIENT"
	KindAddVerification  Kind = "ADD_VERIFICATION"
	KindUpdateVerif      Kind = "UPDATE_VERIFICATION"
	KindBulkUpdateVerifs Kind = "BULK_UPDATE_VERIFICATIONS"
	KindAddMedicalRecord Kind = "ADD_MEDICAL_RECORD"
	KindUpdateMedRecord  Kind = "UPDATE_MEDICAL_RECORD"
	KindAddToast         Kind = "ADD_TOAST"
	KindRemoveToast      Kind = "REMOVE_TOAST"
	KindAddTask          Kind = "ADD_TASK"
	KindUpdateTask       Kind = "UPDATE_TASK"
	KindToggleTask       Kind = "TOGGLE_TASK_COMPLETE"
	KindMarkTaskReminded Kind = "MARK_TASK_REMINDED"
	KindMarkMessageRead  Kind = "MARK_MESSAGE_READ"
	KindSendPortalReply  Kind = "SEND_PORTAL_REPLY"
	KindAddPreAuth       Kind = "ADD_PREAUTH"
	KindAddClaim         Kind = "ADD_CLAIM"
	KindUpdateClaim      Kind = "UPDATE_CLAIM"
	KindAddRecallType    Kind = "ADD_RECALL_TYPE"
	KindUpdateRecallType Kind = "UPDATE_RECALL_TYPE"
	KindUndo             Kind = "UNDO"
	KindRedo             Kind = "REDO"
	KindStartAssessment  Kind = "START_ASSESSMENT"
	KindEndAssessment    Kind = "END_ASSESSMENT"
	KindRestartAll       Kind = "RESTART_ALL"
)

// Undoable reports whether actions of this kind edit Records and therefore
// push an undo snapshot. Selection, toasts, audit logging and the assessment
// lifecycle are not undoable.
func (k Kind) Undoable() bool {
	switch k {
	case KindSelectPatient, KindLogAction, KindAddToast, KindRemoveToast,
		KindUndo, KindRedo, KindStartAssessment, KindEndAssessment, KindRestartAll:
		return false
	}
	return true
}

// -- Patients --

// SelectPatient focuses a patient, or clears the focus when PatientID is nil.
type SelectPatient struct {
	PatientID *int `mapstructure:"patient_id"`
}

// AddPatient registers a new patient; the engine assigns the ID.
type AddPatient struct {
	Patient Patient `mapstructure:"patient"`
}

// AddFamilyMember registers a patient linked to an existing family.
type AddFamilyMember struct {
	Patient      Patient `mapstructure:"patient"`
	FamilyLinkTo int     `mapstructure:"family_link_to"`
}

// UpdatePatient replaces a patient's demographic and insurance fields.
type UpdatePatient struct {
	Patient Patient `mapstructure:"patient"`
}

// DeletePatient removes a patient.
type DeletePatient struct {
	PatientID int `mapstructure:"patient_id"`
}

// -- Appointments --

// ScheduleAppointments places a batch of new appointments on the calendar.
type ScheduleAppointments struct {
	Appointments []Appointment `mapstructure:"appointments"`
}

// UpdateAppointment replaces an appointment wherever it is placed.
type UpdateAppointment struct {
	Appointment Appointment `mapstructure:"appointment"`
}

// DeleteAppointment removes an appointment from any placement.
type DeleteAppointment struct {
	AppointmentID string `mapstructure:"appointment_id"`
}

// CancelAppointment marks a calendar appointment as cancelled.
type CancelAppointment struct {
	AppointmentID string `mapstructure:"appointment_id"`
}

// MoveAppointment reschedules an appointment within its current placement.
// Source defaults to the calendar.
type MoveAppointment struct {
	AppointmentID string    `mapstructure:"appointment_id"`
	NewStartTime  time.Time `mapstructure:"new_start_time"`
	NewOperatory  int       `mapstructure:"new_operatory"`
	Source        Placement `mapstructure:"source"`
}

// PinAppointment moves a calendar appointment to the pinboard.
type PinAppointment struct {
	AppointmentID string `mapstructure:"appointment_id"`
}

// WaitlistAppointment moves an appointment to the waitlist.
type WaitlistAppointment struct {
	AppointmentID string `mapstructure:"appointment_id"`
}

// UpdateDayNote sets the schedule note for a date (YYYY-MM-DD).
type UpdateDayNote struct {
	Date string `mapstructure:"date"`
	Note string `mapstructure:"note"`
}

// -- Ledger & chart --

// AddLedgerEntry posts an entry; the engine assigns its ID and Balance.
type AddLedgerEntry struct {
	PatientID int         `mapstructure:"patient_id"`
	Entry     LedgerEntry `mapstructure:"entry"`
}

// UpdateChart appends a tooth state to a patient's chart.
type UpdateChart struct {
	PatientID  int        `mapstructure:"patient_id"`
	ToothState ToothState `mapstructure:"tooth_state"`
}

// BulkUpdateChart appends several tooth states at once.
type BulkUpdateChart struct {
	PatientID int          `mapstructure:"patient_id"`
	Updates   []ToothState `mapstructure:"updates"`
}

// MovePlannedTreatment moves planned work from one tooth to another.
type MovePlannedTreatment struct {
	PatientID   int `mapstructure:"patient_id"`
	SourceTooth int `mapstructure:"source_tooth"`
	TargetTooth int `mapstructure:"target_tooth"`
}

// LogAction records a UI-level event such as running a report.
type LogAction struct {
	Type       string            `mapstructure:"type"`
	ReportName string            `mapstructure:"report_name"`
	Details    map[string]string `mapstructure:"details"`
}

// -- Documents --

// AddDocument attaches a document to a patient.
type AddDocument struct {
	PatientID int             `mapstructure:"patient_id"`
	Document  PatientDocument `mapstructure:"document"`
}

// AddUnassignedDocument files a scanned document awaiting a patient.
type AddUnassignedDocument struct {
	Document PatientDocument `mapstructure:"document"`
}

// UpdateUnassignedDocument replaces an unassigned document.
type UpdateUnassignedDocument struct {
	Document PatientDocument `mapstructure:"document"`
}

// DeleteUnassignedDocument discards an unassigned document.
type DeleteUnassignedDocument struct {
	DocumentID string `mapstructure:"document_id"`
}

// AssignDocumentToPatient moves an unassigned document into a patient record.
type AssignDocumentToPatient struct {
	DocumentID    string          `mapstructure:"document_id"`
	PatientID     int             `mapstructure:"patient_id"`
	FinalDocument PatientDocument `mapstructure:"final_document"`
}

// -- Insurance & records --

// AddVerification records an insurance eligibility check.
type AddVerification struct {
	Verification InsuranceVerification `mapstructure:"verification"`
}

// UpdateVerification replaces an insurance verification.
type UpdateVerification struct {
	Verification InsuranceVerification `mapstructure:"verification"`
}

// BulkUpdateVerifications applies the same changes to several verifications.
type BulkUpdateVerifications struct {
	IDs     []string            `mapstructure:"ids"`
	Changes VerificationChanges `mapstructure:"changes"`
}

// AddMedicalRecord stores a medical history record.
type AddMedicalRecord struct {
	Record MedicalRecord `mapstructure:"record"`
}

// UpdateMedicalRecord replaces a medical history record.
type UpdateMedicalRecord struct {
	Record MedicalRecord `mapstructure:"record"`
}

// AddPreAuth submits a pre-authorization request.
type AddPreAuth struct {
	PreAuth PreAuthorization `mapstructure:"pre_auth"`
}

// AddClaim files an insurance claim.
type AddClaim struct {
	Claim InsuranceClaim `mapstructure:"claim"`
}

// UpdateClaim replaces a claim, recording status changes.
type UpdateClaim struct {
	Claim InsuranceClaim `mapstructure:"claim"`
}

// AddRecallType defines a recall interval.
type AddRecallType struct {
	RecallType RecallType `mapstructure:"recall_type"`
}

// UpdateRecallType replaces a recall definition.
type UpdateRecallType struct {
	RecallType RecallType `mapstructure:"recall_type"`
}

// -- Toasts, tasks, messages --

// AddToast shows a transient notification.
type AddToast struct {
	Message string    `mapstructure:"message"`
	Level   ToastKind `mapstructure:"kind"`
}

// RemoveToast dismisses a notification.
type RemoveToast struct {
	ToastID string `mapstructure:"toast_id"`
}

// AddTask creates a front-office task.
type AddTask struct {
	Task Task `mapstructure:"task"`
}

// UpdateTask patches a task.
type UpdateTask struct {
	TaskID  string    `mapstructure:"task_id"`
	Updates TaskPatch `mapstructure:"updates"`
}

// ToggleTaskComplete flips a task between open and done.
type ToggleTaskComplete struct {
	TaskID string `mapstructure:"task_id"`
}

// MarkTaskReminded records that a task reminder was sent.
type MarkTaskReminded struct {
	TaskID string `mapstructure:"task_id"`
}

// MarkMessageRead marks an unread portal message as read.
type MarkMessageRead struct {
	MessageID string `mapstructure:"message_id"`
}

// SendPortalReply answers a portal message.
type SendPortalReply struct {
	MessageID string `mapstructure:"message_id"`
	Content   string `mapstructure:"content"`
}

// -- History & assessment lifecycle --

// Undo restores the records before the last undoable action.
type Undo struct{}

// Redo reapplies the last undone change.
type Redo struct{}

// StartAssessment resets the session and begins a graded attempt.
type StartAssessment struct{}

// EndAssessment leaves assessment mode, keeping the progress.
type EndAssessment struct{}

// RestartAll resets the session to the seed without spending an attempt.
type RestartAll struct{}

func (SelectPatient) Kind() Kind            { return KindSelectPatient }
func (AddPatient) Kind() Kind               { return KindAddPatient }
func (AddFamilyMember) Kind() Kind          { return KindAddFamilyMember }
func (UpdatePatient) Kind() Kind            { return KindUpdatePatient }
func (DeletePatient) Kind() Kind            { return KindDeletePatient }
func (ScheduleAppointments) Kind() Kind     { return KindScheduleAppts }
func (UpdateAppointment) Kind() Kind        { return KindUpdateAppt }
func (DeleteAppointment) Kind() Kind        { return KindDeleteAppt }
func (CancelAppointment) Kind() Kind        { return KindCancelAppt }
func (MoveAppointment) Kind() Kind          { return KindMoveAppt }
func (PinAppointment) Kind() Kind           { return KindPinAppt }
func (WaitlistAppointment) Kind() Kind      { return KindWaitlistAppt }
func (UpdateDayNote) Kind() Kind            { return KindUpdateDayNote }
func (AddLedgerEntry) Kind() Kind           { return KindAddLedgerEntry }
func (UpdateChart) Kind() Kind              { return KindUpdateChart }
func (BulkUpdateChart) Kind() Kind          { return KindBulkUpdateChart }
func (MovePlannedTreatment) Kind() Kind     { return KindMovePlannedTx }
func (LogAction) Kind() Kind                { return KindLogAction }
func (AddDocument) Kind() Kind              { return KindAddDocument }
func (AddUnassignedDocument) Kind() Kind    { return KindAddUnassignedDoc }
func (UpdateUnassignedDocument) Kind() Kind { return KindUpdateUnassigned }
func (DeleteUnassignedDocument) Kind() Kind { return KindDeleteUnassigned }
func (AssignDocumentToPatient) Kind() Kind  { return KindAssignDocument }
func (AddVerification) Kind() Kind          { return KindAddVerification }
func (UpdateVerification) Kind() Kind       { return KindUpdateVerif }
func (BulkUpdateVerifications) Kind() Kind  { return KindBulkUpdateVerifs }
func (AddMedicalRecord) Kind() Kind         { return KindAddMedicalRecord }
func (UpdateMedicalRecord) Kind() Kind      { return KindUpdateMedRecord }
func (AddPreAuth) Kind() Kind               { return KindAddPreAuth }
func (AddClaim) Kind() Kind                 { return KindAddClaim }
func (UpdateClaim) Kind() Kind              { return KindUpdateClaim }
func (AddRecallType) Kind() Kind            { return KindAddRecallType }
func (UpdateRecallType) Kind() Kind         { return KindUpdateRecallType }
func (AddToast) Kind() Kind                 { return KindAddToast }
func (RemoveToast) Kind() Kind              { return KindRemoveToast }
func (AddTask) Kind() Kind                  { return KindAddTask }
func (UpdateTask) Kind() Kind               { return KindUpdateTask }
func (ToggleTaskComplete) Kind() Kind       { return KindToggleTask }
func (MarkTaskReminded) Kind() Kind         { return KindMarkTaskReminded }
func (MarkMessageRead) Kind() Kind          { return KindMarkMessageRead }
func (SendPortalReply) Kind() Kind          { return KindSendPortalReply }
func (Undo) Kind() Kind                     { return KindUndo }
func (Redo) Kind() Kind                     { return KindRedo }
func (StartAssessment) Kind() Kind          { return KindStartAssessment }
func (EndAssessment) Kind() Kind            { return KindEndAssessment }
func (RestartAll) Kind() Kind               { return KindRestartAll }

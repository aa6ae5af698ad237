package domain

// LedgerEntry is a single financial line on a patient's ledger.
// ID and Balance are assigned by the engine when the entry is posted.
type LedgerEntry struct {
	ID            string  `json:"id" yaml:"id" mapstructure:"id"`
	Date          string  `json:"date" yaml:"date" mapstructure:"date"`
	Description   string  `json:"description" yaml:"description" mapstructure:"description"`
	ProcedureCode string  `json:"procedure_code,omitempty" yaml:"procedure_code,omitempty" mapstructure:"procedure_code"`
	Charge        float64 `json:"charge" yaml:"charge" mapstructure:"charge"`
	Payment       float64 `json:"payment" yaml:"payment" mapstructure:"payment"`
	WriteOff      float64 `json:"write_off" yaml:"write_off" mapstructure:"write_off"`
	Balance       float64 `json:"balance" yaml:"balance" mapstructure:"balance"`
}

// Net returns the effect of the entry on the running balance.
func (e LedgerEntry) Net() float64 {
	return e.Charge - e.Payment - e.WriteOff
}

// PreAuthStatus is the payer decision on a pre-authorization.
type PreAuthStatus string

const (
	PreAuthPending          PreAuthStatus = "Pending"
	PreAuthApproved         PreAuthStatus = "Approved"
	PreAuthDenied           PreAuthStatus = "Denied"
	PreAuthMoreInfoRequired PreAuthStatus = "More Info Required"
)

// PreAuthItem is a single planned procedure on a pre-authorization.
type PreAuthItem struct {
	Tooth     int     `json:"tooth" yaml:"tooth" mapstructure:"tooth"`
	Procedure string  `json:"procedure" yaml:"procedure" mapstructure:"procedure"`
	Fee       float64 `json:"fee" yaml:"fee" mapstructure:"fee"`
}

// PreAuthorization asks a payer to approve planned treatment ahead of time.
type PreAuthorization struct {
	ID            string        `json:"id" yaml:"id" mapstructure:"id"`
	PatientID     int           `json:"patient_id" yaml:"patient_id" mapstructure:"patient_id"`
	DateSubmitted string        `json:"date_submitted" yaml:"date_submitted" mapstructure:"date_submitted"`
	Status        PreAuthStatus `json:"status" yaml:"status" mapstructure:"status"`
	Payer         string        `json:"payer" yaml:"payer" mapstructure:"payer"`
	TotalValue    float64       `json:"total_value" yaml:"total_value" mapstructure:"total_value"`
	Items         []PreAuthItem `json:"items" yaml:"items" mapstructure:"items"`
}

// ClaimStatus tracks an insurance claim through adjudication.
type ClaimStatus string

const (
	ClaimCreated  ClaimStatus = "Created"
	ClaimSent     ClaimStatus = "Sent"
	ClaimReceived ClaimStatus = "Received"
	ClaimPaid     ClaimStatus = "Paid"
	ClaimDenied   ClaimStatus = "Denied"
)

// ClaimStatusChange is one entry of a claim's status history.
type ClaimStatusChange struct {
	Date   string      `json:"date" yaml:"date" mapstructure:"date"`
	Status ClaimStatus `json:"status" yaml:"status" mapstructure:"status"`
}

// ClaimAttachments records what supporting material accompanies a claim.
type ClaimAttachments struct {
	Images             []string `json:"images" yaml:"images" mapstructure:"images"`
	PerioChartAttached bool     `json:"perio_chart_attached" yaml:"perio_chart_attached" mapstructure:"perio_chart_attached"`
	PhotoAttached      bool     `json:"photo_attached" yaml:"photo_attached" mapstructure:"photo_attached"`
	TxPlanAttached     bool     `json:"tx_plan_attached" yaml:"tx_plan_attached" mapstructure:"tx_plan_attached"`
}

// InsuranceClaim bills a carrier for completed procedures.
type InsuranceClaim struct {
	ID              string              `json:"id" yaml:"id" mapstructure:"id"`
	PatientID       int                 `json:"patient_id" yaml:"patient_id" mapstructure:"patient_id"`
	DateCreated     string              `json:"date_created" yaml:"date_created" mapstructure:"date_created"`
	Status          ClaimStatus         `json:"status" yaml:"status" mapstructure:"status"`
	Carrier         string              `json:"carrier" yaml:"carrier" mapstructure:"carrier"`
	TotalAmount     float64             `json:"total_amount" yaml:"total_amount" mapstructure:"total_amount"`
	ProcedureIDs    []string            `json:"procedure_ids" yaml:"procedure_ids" mapstructure:"procedure_ids"`
	DiagnosticCodes []string            `json:"diagnostic_codes" yaml:"diagnostic_codes" mapstructure:"diagnostic_codes"`
	StatusHistory   []ClaimStatusChange `json:"status_history" yaml:"status_history" mapstructure:"status_history"`
	Attachments     ClaimAttachments    `json:"attachments" yaml:"attachments" mapstructure:"attachments"`
}

// VerificationStatus is the outcome of an eligibility check.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationVerified VerificationStatus = "Verified"
	VerificationFailed   VerificationStatus = "Failed"
)

// InsuranceVerification is an eligibility/benefits check for an upcoming visit.
type InsuranceVerification struct {
	ID              string             `json:"id" yaml:"id" mapstructure:"id"`
	PatientID       int                `json:"patient_id" yaml:"patient_id" mapstructure:"patient_id"`
	AppointmentDate string             `json:"appointment_date" yaml:"appointment_date" mapstructure:"appointment_date"`
	Carrier         string             `json:"carrier" yaml:"carrier" mapstructure:"carrier"`
	Status          VerificationStatus `json:"status" yaml:"status" mapstructure:"status"`
	LastChecked     string             `json:"last_checked,omitempty" yaml:"last_checked,omitempty" mapstructure:"last_checked"`
	Notes           string             `json:"notes,omitempty" yaml:"notes,omitempty" mapstructure:"notes"`
}

// VerificationChanges is a partial update applied to several verifications at once.
// Nil fields are left untouched.
type VerificationChanges struct {
	Status      *VerificationStatus `json:"status,omitempty" mapstructure:"status"`
	LastChecked *string             `json:"last_checked,omitempty" mapstructure:"last_checked"`
	Notes       *string             `json:"notes,omitempty" mapstructure:"notes"`
}

// RecallType configures a recurring recall (e.g. six-month prophylaxis).
type RecallType struct {
	ID            string `json:"id" yaml:"id" mapstructure:"id"`
	ShortName     string `json:"short_name" yaml:"short_name" mapstructure:"short_name"`
	Description   string `json:"description" yaml:"description" mapstructure:"description"`
	IntervalDays  int    `json:"interval_days" yaml:"interval_days" mapstructure:"interval_days"`
	ProcedureCode string `json:"procedure_code" yaml:"procedure_code" mapstructure:"procedure_code"`
}

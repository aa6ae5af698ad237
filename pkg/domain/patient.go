package domain

import "strings"

// PatientStatus is the lifecycle status of a patient record.
type PatientStatus string

const (
	PatientActive   PatientStatus = "Active"
	PatientInactive PatientStatus = "Inactive"
)

// Patient is a clinic patient with its financial and clinical history.
// The ledger and chart are owned exclusively by the patient and only ever grow.
type Patient struct {
	ID               int           `json:"id" yaml:"id" mapstructure:"id"`
	FirstName        string        `json:"first_name" yaml:"first_name" mapstructure:"first_name"`
	LastName         string        `json:"last_name" yaml:"last_name" mapstructure:"last_name"`
	Preferred        string        `json:"preferred,omitempty" yaml:"preferred,omitempty" mapstructure:"preferred"`
	DateOfBirth      string        `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty" mapstructure:"date_of_birth"`
	Gender           string        `json:"gender,omitempty" yaml:"gender,omitempty" mapstructure:"gender"`
	Phone            string        `json:"phone,omitempty" yaml:"phone,omitempty" mapstructure:"phone"`
	Email            string        `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`
	Address          string        `json:"address,omitempty" yaml:"address,omitempty" mapstructure:"address"`
	Provider         string        `json:"provider,omitempty" yaml:"provider,omitempty" mapstructure:"provider"`
	InsuranceCarrier string        `json:"insurance_carrier,omitempty" yaml:"insurance_carrier,omitempty" mapstructure:"insurance_carrier"`
	Status           PatientStatus `json:"status" yaml:"status" mapstructure:"status"`

	// FamilyLinkID references another patient as kin. It is an association, not ownership.
	FamilyLinkID *int `json:"family_link_id,omitempty" yaml:"family_link_id,omitempty" mapstructure:"family_link_id"`

	MedicalAlerts []string `json:"medical_alerts,omitempty" yaml:"medical_alerts,omitempty" mapstructure:"medical_alerts"`

	// Automation preferences for appointment reminders.
	AutomationActive       bool `json:"automation_active" yaml:"automation_active" mapstructure:"automation_active"`
	SendConfirmation14Days bool `json:"send_confirmation_14_days" yaml:"send_confirmation_14_days" mapstructure:"send_confirmation_14_days"`
	SendReminder2Days      bool `json:"send_reminder_2_days" yaml:"send_reminder_2_days" mapstructure:"send_reminder_2_days"`
	SendFollowUpOnCancel   bool `json:"send_follow_up_on_cancel" yaml:"send_follow_up_on_cancel" mapstructure:"send_follow_up_on_cancel"`

	PhotoURL string `json:"photo_url,omitempty" yaml:"photo_url,omitempty" mapstructure:"photo_url"`

	Ledger    []LedgerEntry     `json:"ledger" yaml:"ledger" mapstructure:"ledger"`
	Chart     []ToothState      `json:"chart" yaml:"chart" mapstructure:"chart"`
	Documents []PatientDocument `json:"documents,omitempty" yaml:"documents,omitempty" mapstructure:"documents"`
}

// Name returns the display name of the patient.
func (p Patient) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Balance returns the running balance of the last ledger entry, or zero.
func (p Patient) Balance() float64 {
	if len(p.Ledger) == 0 {
		return 0
	}
	return p.Ledger[len(p.Ledger)-1].Balance
}

// PatientDocument is a scanned or uploaded document, either assigned to a
// patient or waiting in the unassigned inbox.
type PatientDocument struct {
	ID         string `json:"id" yaml:"id" mapstructure:"id"`
	Name       string `json:"name" yaml:"name" mapstructure:"name"`
	Category   string `json:"category,omitempty" yaml:"category,omitempty" mapstructure:"category"`
	UploadDate string `json:"upload_date,omitempty" yaml:"upload_date,omitempty" mapstructure:"upload_date"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`
	Notes      string `json:"notes,omitempty" yaml:"notes,omitempty" mapstructure:"notes"`
}

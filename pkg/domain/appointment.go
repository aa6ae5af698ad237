package domain

import "time"

// AppointmentStatus is the confirmation status shown on the schedule.
type AppointmentStatus string

const (
	AppointmentUnconfirmed AppointmentStatus = "Unconfirmed"
	AppointmentFirm        AppointmentStatus = "FIRM"
	AppointmentLeftMessage AppointmentStatus = "Left Message"
	AppointmentArrived     AppointmentStatus = "Arrived"
	AppointmentComplete    AppointmentStatus = "Complete"
	AppointmentCancelled   AppointmentStatus = "Cancelled"
)

// Placement is the mutually exclusive collection an appointment belongs to.
type Placement string

const (
	PlacementCalendar Placement = "calendar"
	PlacementPinboard Placement = "pinboard"
	PlacementWaitlist Placement = "waitlist"
)

// Valid reports whether p names one of the three placements.
func (p Placement) Valid() bool {
	switch p {
	case PlacementCalendar, PlacementPinboard, PlacementWaitlist:
		return true
	}
	return false
}

// Appointment is a patient visit or a provider block on the schedule.
type Appointment struct {
	ID              string            `json:"id" yaml:"id" mapstructure:"id"`
	PatientID       int               `json:"patient_id" yaml:"patient_id" mapstructure:"patient_id"`
	StartTime       time.Time         `json:"start_time" yaml:"start_time" mapstructure:"start_time"`
	DurationMinutes int               `json:"duration_minutes" yaml:"duration_minutes" mapstructure:"duration_minutes"`
	Operatory       int               `json:"operatory" yaml:"operatory" mapstructure:"operatory"`
	Provider        string            `json:"provider" yaml:"provider" mapstructure:"provider"`
	Procedure       string            `json:"procedure,omitempty" yaml:"procedure,omitempty" mapstructure:"procedure"`
	Note            string            `json:"note,omitempty" yaml:"note,omitempty" mapstructure:"note"`
	Status          AppointmentStatus `json:"status" yaml:"status" mapstructure:"status"`

	// IsBlock marks blocked provider time rather than a patient visit.
	IsBlock bool `json:"is_block,omitempty" yaml:"is_block,omitempty" mapstructure:"is_block"`

	Placement Placement `json:"placement" yaml:"placement" mapstructure:"placement"`
}

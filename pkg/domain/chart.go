package domain

// ToothStatus is the clinical condition recorded for a tooth.
type ToothStatus string

const (
	ToothHealthy          ToothStatus = "Healthy"
	ToothMissing          ToothStatus = "Missing"
	ToothTreatmentPlanned ToothStatus = "TreatmentPlanned"
	ToothCompleted        ToothStatus = "Completed"
	ToothExisting         ToothStatus = "Existing"
	ToothWatch            ToothStatus = "Watch"
)

// ToothState is one entry of a patient's chart. Charts are append-only, so the
// current condition of a tooth is its most recent entry.
type ToothState struct {
	ToothNumber int         `json:"tooth_number" yaml:"tooth_number" mapstructure:"tooth_number"`
	Status      ToothStatus `json:"status" yaml:"status" mapstructure:"status"`
	Procedure   string      `json:"procedure,omitempty" yaml:"procedure,omitempty" mapstructure:"procedure"`
	Notes       string      `json:"notes,omitempty" yaml:"notes,omitempty" mapstructure:"notes"`
	Date        string      `json:"date,omitempty" yaml:"date,omitempty" mapstructure:"date"`
}

// LatestToothState returns the most recent chart entry for a tooth.
func LatestToothState(chart []ToothState, tooth int) (ToothState, bool) {
	for i := len(chart) - 1; i >= 0; i-- {
		if chart[i].ToothNumber == tooth {
			return chart[i], true
		}
	}
	return ToothState{}, false
}

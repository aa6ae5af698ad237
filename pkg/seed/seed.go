// Package seed provides the static initial datasets a training session starts from.
//
// The engine treats a Dataset as opaque: it is cloned into every fresh session
// and never validated.
package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/dentsim/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Dataset is the initial content of a session.
type Dataset struct {
	Records           domain.Records `yaml:",inline"`
	SelectedPatientID *int           `yaml:"selected_patient_id"`
}

// Load reads a dataset from a YAML file.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read seed dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("failed to parse seed dataset: %w", err)
	}
	if ds.Records.DayNotes == nil {
		ds.Records.DayNotes = map[string]string{}
	}
	return ds, nil
}

// Default builds the built-in clinic dataset with dates relative to now.
func Default(now time.Time) Dataset {
	first := 1
	return Dataset{
		Records: domain.Records{
			Patients:          patients(now),
			Appointments:      appointments(now),
			Verifications:     verifications(now),
			MedicalRecords:    medicalRecords(now),
			Tasks:             tasks(now),
			PortalMessages:    portalMessages(now),
			PreAuthorizations: preAuthorizations(now),
			Claims:            claims(now),
			RecallTypes:       recallTypes(),
			DayNotes:          map[string]string{},
		},
		SelectedPatientID: &first,
	}
}

func day(now time.Time, offset int) string {
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

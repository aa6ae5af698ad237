package domain

// Records groups every clinic collection that user actions edit.
// It is the unit captured by undo/redo snapshots.
type Records struct {
	Patients            []Patient               `json:"patients" yaml:"patients"`
	Appointments        []Appointment           `json:"appointments" yaml:"appointments"`
	Pinboard            []Appointment           `json:"pinboard" yaml:"pinboard"`
	Waitlist            []Appointment           `json:"waitlist" yaml:"waitlist"`
	UnassignedDocuments []PatientDocument       `json:"unassigned_documents" yaml:"unassigned_documents"`
	Verifications       []InsuranceVerification `json:"verifications" yaml:"verifications"`
	MedicalRecords      []MedicalRecord         `json:"medical_records" yaml:"medical_records"`
	Tasks               []Task                  `json:"tasks" yaml:"tasks"`
	PortalMessages      []PortalMessage         `json:"portal_messages" yaml:"portal_messages"`
	PreAuthorizations   []PreAuthorization      `json:"pre_authorizations" yaml:"pre_authorizations"`
	Claims              []InsuranceClaim        `json:"claims" yaml:"claims"`
	RecallTypes         []RecallType            `json:"recall_types" yaml:"recall_types"`
	DayNotes            map[string]string       `json:"day_notes" yaml:"day_notes"`
}

// History holds undo/redo snapshots, oldest first.
type History struct {
	Past   []Records `json:"past"`
	Future []Records `json:"future"`
}

// State is the aggregate snapshot of a training session.
// Values returned by the engine must be treated as read-only: transitions share
// unchanged collections between successive states.
type State struct {
	Records

	// SelectedPatientID is advisory; it may reference a patient that does not exist.
	SelectedPatientID *int `json:"selected_patient_id"`

	Actions []LoggedAction `json:"actions"`
	Toasts  []Toast        `json:"toasts"`
	History History        `json:"history"`

	// Progress is derived: only the verification pass writes it.
	Progress Grid `json:"progress"`

	AssessmentMode     bool `json:"assessment_mode"`
	AssessmentAttempts int  `json:"assessment_attempts"`

	// Sequence feeds deterministic id generation.
	Sequence int `json:"sequence"`
}

// FindPatient returns the index of the patient with the given id.
func (s *State) FindPatient(id int) (int, bool) {
	return indexOf(s.Patients, func(p Patient) bool { return p.ID == id })
}

// FindAppointment locates an appointment in the given placement.
func (s *State) FindAppointment(id string, in Placement) (int, bool) {
	return indexOf(s.Placed(in), func(a Appointment) bool { return a.ID == id })
}

// Locate finds which placement holds an appointment.
func (s *State) Locate(id string) (Placement, int, bool) {
	for _, p := range []Placement{PlacementCalendar, PlacementPinboard, PlacementWaitlist} {
		if i, ok := s.FindAppointment(id, p); ok {
			return p, i, true
		}
	}
	return "", -1, false
}

// Placed returns the collection backing a placement.
func (s *State) Placed(p Placement) []Appointment {
	switch p {
	case PlacementPinboard:
		return s.Pinboard
	case PlacementWaitlist:
		return s.Waitlist
	default:
		return s.Appointments
	}
}

// SetPlaced replaces the collection backing a placement.
func (s *State) SetPlaced(p Placement, appts []Appointment) {
	switch p {
	case PlacementPinboard:
		s.Pinboard = appts
	case PlacementWaitlist:
		s.Waitlist = appts
	default:
		s.Appointments = appts
	}
}

// Clone returns a deep copy of the state, safe to hand to stores and callers
// that need to mutate.
func (s State) Clone() State {
	next := s
	next.Records = s.Records.Clone()
	if s.SelectedPatientID != nil {
		id := *s.SelectedPatientID
		next.SelectedPatientID = &id
	}
	next.Actions = cloneSlice(s.Actions)
	next.Toasts = cloneSlice(s.Toasts)
	next.History = History{
		Past:   cloneRecordsList(s.History.Past),
		Future: cloneRecordsList(s.History.Future),
	}
	next.Progress = s.Progress.Clone()
	return next
}

// Clone returns a deep copy of the records.
func (r Records) Clone() Records {
	next := r
	next.Patients = make([]Patient, len(r.Patients))
	for i, p := range r.Patients {
		p.Ledger = cloneSlice(p.Ledger)
		p.Chart = cloneSlice(p.Chart)
		p.Documents = cloneSlice(p.Documents)
		p.MedicalAlerts = cloneSlice(p.MedicalAlerts)
		next.Patients[i] = p
	}
	next.Appointments = cloneSlice(r.Appointments)
	next.Pinboard = cloneSlice(r.Pinboard)
	next.Waitlist = cloneSlice(r.Waitlist)
	next.UnassignedDocuments = cloneSlice(r.UnassignedDocuments)
	next.Verifications = cloneSlice(r.Verifications)
	next.MedicalRecords = cloneSlice(r.MedicalRecords)
	next.Tasks = cloneSlice(r.Tasks)
	next.PortalMessages = make([]PortalMessage, len(r.PortalMessages))
	for i, m := range r.PortalMessages {
		m.Replies = cloneSlice(m.Replies)
		next.PortalMessages[i] = m
	}
	next.PreAuthorizations = make([]PreAuthorization, len(r.PreAuthorizations))
	for i, pa := range r.PreAuthorizations {
		pa.Items = cloneSlice(pa.Items)
		next.PreAuthorizations[i] = pa
	}
	next.Claims = make([]InsuranceClaim, len(r.Claims))
	for i, c := range r.Claims {
		c.ProcedureIDs = cloneSlice(c.ProcedureIDs)
		c.DiagnosticCodes = cloneSlice(c.DiagnosticCodes)
		c.StatusHistory = cloneSlice(c.StatusHistory)
		c.Attachments.Images = cloneSlice(c.Attachments.Images)
		next.Claims[i] = c
	}
	next.RecallTypes = cloneSlice(r.RecallTypes)
	next.DayNotes = make(map[string]string, len(r.DayNotes))
	for k, v := range r.DayNotes {
		next.DayNotes[k] = v
	}
	return next
}

func cloneRecordsList(list []Records) []Records {
	if list == nil {
		return nil
	}
	out := make([]Records, len(list))
	for i, r := range list {
		out[i] = r.Clone()
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func indexOf[T any](list []T, match func(T) bool) (int, bool) {
	for i, v := range list {
		if match(v) {
			return i, true
		}
	}
	return -1, false
}

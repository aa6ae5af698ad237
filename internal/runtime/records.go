package runtime

import (
	"github.com/aretw0/dentsim/pkg/domain"
)

func (e *Engine) logAction(s *domain.State, a domain.LogAction) *domain.Diagnostic {
	var details map[string]string
	if len(a.Details) > 0 {
		details = make(map[string]string, len(a.Details))
		for k, v := range a.Details {
			details[k] = v
		}
	}
	s.Actions = appended(s.Actions, domain.LoggedAction{
		Type:       a.Type,
		ReportName: a.ReportName,
		Details:    details,
		Timestamp:  e.clock(),
	})
	return nil
}

// -- Documents --

func (e *Engine) newDocument(s *domain.State, doc domain.PatientDocument) domain.PatientDocument {
	if doc.ID == "" {
		doc.ID = e.nextID(s, "doc")
	}
	if doc.UploadDate == "" {
		doc.UploadDate = e.today()
	}
	return doc
}

func byDocument(id string) func(domain.PatientDocument) bool {
	return func(d domain.PatientDocument) bool { return d.ID == id }
}

func (e *Engine) addDocument(s *domain.State, a domain.AddDocument) *domain.Diagnostic {
	if hit := patientByID(s, a.PatientID); !hit.OK {
		return notFound("patient", a.PatientID)
	}
	doc := e.newDocument(s, a.Document)
	return withPatient(s, a.PatientID, func(p *domain.Patient) {
		p.Documents = appended(p.Documents, doc)
	})
}

func (e *Engine) addUnassignedDocument(s *domain.State, a domain.AddUnassignedDocument) *domain.Diagnostic {
	s.UnassignedDocuments = appended(s.UnassignedDocuments, e.newDocument(s, a.Document))
	return nil
}

func (e *Engine) updateUnassignedDocument(s *domain.State, a domain.UpdateUnassignedDocument) *domain.Diagnostic {
	hit := lookup(s.UnassignedDocuments, byDocument(a.Document.ID))
	if !hit.OK {
		return notFound("document", a.Document.ID)
	}
	s.UnassignedDocuments = replaced(s.UnassignedDocuments, hit.Index, a.Document)
	return nil
}

func (e *Engine) deleteUnassignedDocument(s *domain.State, a domain.DeleteUnassignedDocument) *domain.Diagnostic {
	hit := lookup(s.UnassignedDocuments, byDocument(a.DocumentID))
	if !hit.OK {
		return notFound("document", a.DocumentID)
	}
	s.UnassignedDocuments = removed(s.UnassignedDocuments, hit.Index)
	return nil
}

// assignDocument files an inbox document under a patient. FinalDocument carries
// the metadata chosen while filing; its id falls back to the inbox id.
func (e *Engine) assignDocument(s *domain.State, a domain.AssignDocumentToPatient) *domain.Diagnostic {
	hit := lookup(s.UnassignedDocuments, byDocument(a.DocumentID))
	if !hit.OK {
		return notFound("document", a.DocumentID)
	}
	if p := patientByID(s, a.PatientID); !p.OK {
		return notFound("patient", a.PatientID)
	}

	doc := a.FinalDocument
	if doc.ID == "" {
		doc.ID = hit.Value.ID
	}
	if doc.Name == "" {
		doc.Name = hit.Value.Name
	}
	if doc.UploadDate == "" {
		doc.UploadDate = hit.Value.UploadDate
	}
	if doc.URL == "" {
		doc.URL = hit.Value.URL
	}
	s.UnassignedDocuments = removed(s.UnassignedDocuments, hit.Index)
	return withPatient(s, a.PatientID, func(p *domain.Patient) {
		p.Documents = appended(p.Documents, doc)
	})
}

// -- Medical records --

func (e *Engine) addMedicalRecord(s *domain.State, a domain.AddMedicalRecord) *domain.Diagnostic {
	r := a.Record
	if r.ID == "" {
		r.ID = e.nextID(s, "mr")
	}
	if r.Date == "" {
		r.Date = e.today()
	}
	s.MedicalRecords = appended(s.MedicalRecords, r)
	return nil
}

func (e *Engine) updateMedicalRecord(s *domain.State, a domain.UpdateMedicalRecord) *domain.Diagnostic {
	hit := lookup(s.MedicalRecords, func(r domain.MedicalRecord) bool { return r.ID == a.Record.ID })
	if !hit.OK {
		return notFound("medical record", a.Record.ID)
	}
	s.MedicalRecords = replaced(s.MedicalRecords, hit.Index, a.Record)
	return nil
}

// -- Toasts --

func (e *Engine) addToast(s *domain.State, a domain.AddToast) *domain.Diagnostic {
	kind := a.Level
	if kind == "" {
		kind = domain.ToastInfo
	}
	s.Toasts = appended(s.Toasts, domain.Toast{
		ID:      e.nextID(s, "toast"),
		Message: a.Message,
		Kind:    kind,
	})
	return nil
}

func (e *Engine) removeToast(s *domain.State, a domain.RemoveToast) *domain.Diagnostic {
	hit := lookup(s.Toasts, func(t domain.Toast) bool { return t.ID == a.ToastID })
	if !hit.OK {
		return notFound("toast", a.ToastID)
	}
	s.Toasts = removed(s.Toasts, hit.Index)
	return nil
}

// -- Tasks --

func (e *Engine) addTask(s *domain.State, a domain.AddTask) *domain.Diagnostic {
	t := a.Task
	if t.ID == "" {
		t.ID = e.nextID(s, "task")
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	s.Tasks = appended(s.Tasks, t)
	return nil
}

func (e *Engine) editTask(s *domain.State, id string, edit func(domain.Task) domain.Task) *domain.Diagnostic {
	hit := lookup(s.Tasks, func(t domain.Task) bool { return t.ID == id })
	if !hit.OK {
		return notFound("task", id)
	}
	s.Tasks = replaced(s.Tasks, hit.Index, edit(hit.Value))
	return nil
}

func (e *Engine) updateTask(s *domain.State, a domain.UpdateTask) *domain.Diagnostic {
	return e.editTask(s, a.TaskID, a.Updates.Apply)
}

func (e *Engine) toggleTask(s *domain.State, a domain.ToggleTaskComplete) *domain.Diagnostic {
	return e.editTask(s, a.TaskID, func(t domain.Task) domain.Task {
		t.Completed = !t.Completed
		return t
	})
}

func (e *Engine) markTaskReminded(s *domain.State, a domain.MarkTaskReminded) *domain.Diagnostic {
	return e.editTask(s, a.TaskID, func(t domain.Task) domain.Task {
		t.Reminded = true
		return t
	})
}

// -- Portal messages --

func (e *Engine) editMessage(s *domain.State, id string, edit func(domain.PortalMessage) domain.PortalMessage) *domain.Diagnostic {
	hit := lookup(s.PortalMessages, func(m domain.PortalMessage) bool { return m.ID == id })
	if !hit.OK {
		return notFound("message", id)
	}
	s.PortalMessages = replaced(s.PortalMessages, hit.Index, edit(hit.Value))
	return nil
}

// markMessageRead only moves unread messages; replied ones keep their status.
func (e *Engine) markMessageRead(s *domain.State, a domain.MarkMessageRead) *domain.Diagnostic {
	return e.editMessage(s, a.MessageID, func(m domain.PortalMessage) domain.PortalMessage {
		if m.Status == domain.MessageUnread {
			m.Status = domain.MessageRead
		}
		return m
	})
}

func (e *Engine) sendPortalReply(s *domain.State, a domain.SendPortalReply) *domain.Diagnostic {
	reply := domain.PortalReply{Content: a.Content, Timestamp: e.clock()}
	return e.editMessage(s, a.MessageID, func(m domain.PortalMessage) domain.PortalMessage {
		m.Replies = appended(m.Replies, reply)
		m.Status = domain.MessageReplied
		return m
	})
}

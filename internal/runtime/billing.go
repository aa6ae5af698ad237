package runtime

import (
	"github.com/aretw0/dentsim/pkg/domain"
)

// addLedgerEntry posts an entry with an engine-assigned id and running balance.
func (e *Engine) addLedgerEntry(s *domain.State, a domain.AddLedgerEntry) *domain.Diagnostic {
	if hit := patientByID(s, a.PatientID); !hit.OK {
		return notFound("patient", a.PatientID)
	}
	entry := a.Entry
	entry.ID = e.nextID(s, "l")
	if entry.Date == "" {
		entry.Date = e.today()
	}
	return withPatient(s, a.PatientID, func(p *domain.Patient) {
		entry.Balance = p.Balance() + entry.Net()
		p.Ledger = appended(p.Ledger, entry)
	})
}

func (e *Engine) addPreAuth(s *domain.State, a domain.AddPreAuth) *domain.Diagnostic {
	pa := a.PreAuth
	if pa.ID == "" {
		pa.ID = e.nextID(s, "PA")
	}
	if pa.Status == "" {
		pa.Status = domain.PreAuthPending
	}
	if pa.TotalValue == 0 {
		for _, item := range pa.Items {
			pa.TotalValue += item.Fee
		}
	}
	s.PreAuthorizations = appended(s.PreAuthorizations, pa)
	return nil
}

func (e *Engine) addClaim(s *domain.State, a domain.AddClaim) *domain.Diagnostic {
	c := a.Claim
	if c.ID == "" {
		c.ID = e.nextID(s, "CLM")
	}
	if c.Status == "" {
		c.Status = domain.ClaimCreated
	}
	if c.DateCreated == "" {
		c.DateCreated = e.today()
	}
	if len(c.StatusHistory) == 0 {
		c.StatusHistory = []domain.ClaimStatusChange{{Date: c.DateCreated, Status: c.Status}}
	}
	s.Claims = appended(s.Claims, c)
	return nil
}

// updateClaim replaces the claim but keeps the recorded status history,
// appending to it when the status changes.
func (e *Engine) updateClaim(s *domain.State, a domain.UpdateClaim) *domain.Diagnostic {
	hit := lookup(s.Claims, func(c domain.InsuranceClaim) bool { return c.ID == a.Claim.ID })
	if !hit.OK {
		return notFound("claim", a.Claim.ID)
	}
	c := a.Claim
	c.StatusHistory = hit.Value.StatusHistory
	if c.Status != hit.Value.Status {
		c.StatusHistory = appended(c.StatusHistory, domain.ClaimStatusChange{Date: e.today(), Status: c.Status})
	}
	s.Claims = replaced(s.Claims, hit.Index, c)
	return nil
}

func byVerification(id string) func(domain.InsuranceVerification) bool {
	return func(v domain.InsuranceVerification) bool { return v.ID == id }
}

func (e *Engine) addVerification(s *domain.State, a domain.AddVerification) *domain.Diagnostic {
	v := a.Verification
	if v.ID == "" {
		v.ID = e.nextID(s, "v")
	}
	if v.Status == "" {
		v.Status = domain.VerificationPending
	}
	s.Verifications = appended(s.Verifications, v)
	return nil
}

func (e *Engine) updateVerification(s *domain.State, a domain.UpdateVerification) *domain.Diagnostic {
	hit := lookup(s.Verifications, byVerification(a.Verification.ID))
	if !hit.OK {
		return notFound("verification", a.Verification.ID)
	}
	s.Verifications = replaced(s.Verifications, hit.Index, a.Verification)
	return nil
}

// bulkUpdateVerifications is all-or-nothing: one unknown id skips the batch.
func (e *Engine) bulkUpdateVerifications(s *domain.State, a domain.BulkUpdateVerifications) *domain.Diagnostic {
	next := make([]domain.InsuranceVerification, len(s.Verifications))
	copy(next, s.Verifications)
	for _, id := range a.IDs {
		hit := lookup(next, byVerification(id))
		if !hit.OK {
			return notFound("verification", id)
		}
		v := hit.Value
		if a.Changes.Status != nil {
			v.Status = *a.Changes.Status
		}
		if a.Changes.LastChecked != nil {
			v.LastChecked = *a.Changes.LastChecked
		}
		if a.Changes.Notes != nil {
			v.Notes = *a.Changes.Notes
		}
		next[hit.Index] = v
	}
	s.Verifications = next
	return nil
}

func (e *Engine) addRecallType(s *domain.State, a domain.AddRecallType) *domain.Diagnostic {
	r := a.RecallType
	if r.ID == "" {
		r.ID = e.nextID(s, "r")
	}
	s.RecallTypes = appended(s.RecallTypes, r)
	return nil
}

func (e *Engine) updateRecallType(s *domain.State, a domain.UpdateRecallType) *domain.Diagnostic {
	hit := lookup(s.RecallTypes, func(r domain.RecallType) bool { return r.ID == a.RecallType.ID })
	if !hit.OK {
		return notFound("recall type", a.RecallType.ID)
	}
	s.RecallTypes = replaced(s.RecallTypes, hit.Index, a.RecallType)
	return nil
}

package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_DocumentInbox(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	s := e.Initial()

	s, out := e.Apply(ctx, s, domain.AddUnassignedDocument{Document: domain.PatientDocument{Name: "scan.pdf"}})
	require.True(t, out.Applied)
	require.Len(t, s.UnassignedDocuments, 1)
	doc := s.UnassignedDocuments[0]
	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, "2025-03-10", doc.UploadDate)

	doc.Notes = "insurance card"
	s, out = e.Apply(ctx, s, domain.UpdateUnassignedDocument{Document: doc})
	require.True(t, out.Applied)

	s, out = e.Apply(ctx, s, domain.AssignDocumentToPatient{
		DocumentID:    doc.ID,
		PatientID:     2,
		FinalDocument: domain.PatientDocument{Category: "Insurance"},
	})
	require.True(t, out.Applied)
	assert.Empty(t, s.UnassignedDocuments)
	filed := s.Patients[1].Documents
	require.Len(t, filed, 1)
	assert.Equal(t, "doc-1", filed[0].ID)
	assert.Equal(t, "scan.pdf", filed[0].Name)
	assert.Equal(t, "Insurance", filed[0].Category)

	_, out = e.Apply(ctx, s, domain.DeleteUnassignedDocument{DocumentID: doc.ID})
	assert.False(t, out.Applied)
}

func TestApply_Tasks(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	s := e.Initial()

	s, _ = e.Apply(ctx, s, domain.AddTask{Task: domain.Task{Title: "Order gloves"}})
	added := s.Tasks[len(s.Tasks)-1]
	assert.Equal(t, "task-1", added.ID)
	assert.Equal(t, domain.PriorityMedium, added.Priority)

	title := "Order nitrile gloves"
	high := domain.PriorityHigh
	s, out := e.Apply(ctx, s, domain.UpdateTask{TaskID: added.ID, Updates: domain.TaskPatch{Title: &title, Priority: &high}})
	require.True(t, out.Applied)
	s, _ = e.Apply(ctx, s, domain.ToggleTaskComplete{TaskID: added.ID})
	s, _ = e.Apply(ctx, s, domain.MarkTaskReminded{TaskID: added.ID})

	got := s.Tasks[len(s.Tasks)-1]
	assert.Equal(t, title, got.Title)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.True(t, got.Completed)
	assert.True(t, got.Reminded)
}

func TestApply_PortalMessages(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	s := e.Initial()

	s, _ = e.Apply(ctx, s, domain.SendPortalReply{MessageID: "m1", Content: "Sensitivity is normal for a week."})
	s, out := e.Apply(ctx, s, domain.MarkMessageRead{MessageID: "m1"})
	require.True(t, out.Applied)

	m := s.PortalMessages[0]
	assert.Equal(t, domain.MessageReplied, m.Status)
	require.Len(t, m.Replies, 1)
	assert.Equal(t, fixedNow, m.Replies[0].Timestamp)

	s, _ = e.Apply(ctx, s, domain.MarkMessageRead{MessageID: "m2"})
	assert.Equal(t, domain.MessageRead, s.PortalMessages[1].Status)
}

func TestApply_ClaimStatusHistory(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	s := e.Initial()

	s, out := e.Apply(ctx, s, domain.AddClaim{Claim: domain.InsuranceClaim{PatientID: 2, Carrier: "Delta Dental", TotalAmount: 320}})
	require.True(t, out.Applied)
	assert.Contains(t, out.Verified, cell(2, 4))
	c := s.Claims[len(s.Claims)-1]
	assert.Equal(t, domain.ClaimCreated, c.Status)
	require.Len(t, c.StatusHistory, 1)

	c.Status = domain.ClaimSent
	c.StatusHistory = nil
	s, _ = e.Apply(ctx, s, domain.UpdateClaim{Claim: c})
	got := s.Claims[len(s.Claims)-1]
	require.Len(t, got.StatusHistory, 2)
	assert.Equal(t, domain.ClaimSent, got.StatusHistory[1].Status)

	s, _ = e.Apply(ctx, s, domain.UpdateClaim{Claim: got})
	assert.Len(t, s.Claims[len(s.Claims)-1].StatusHistory, 2, "unchanged status adds no entry")
}

func TestApply_BulkVerifications(t *testing.T) {
	e := newEngine()
	s := e.Initial()
	verified := domain.VerificationVerified
	checked := "2025-03-10"

	next, out := e.Apply(context.Background(), s, domain.BulkUpdateVerifications{
		IDs:     []string{"v2", "v3"},
		Changes: domain.VerificationChanges{Status: &verified, LastChecked: &checked},
	})

	require.True(t, out.Applied)
	for _, v := range next.Verifications {
		if v.ID == "v2" || v.ID == "v3" {
			assert.Equal(t, verified, v.Status)
			assert.Equal(t, checked, v.LastChecked)
		}
	}
	assert.Equal(t, domain.VerificationPending, s.Verifications[1].Status)
}

func TestApply_MovePlannedTreatment(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	s := e.Initial()

	// Patient 1 has a crown planned on tooth 14.
	next, out := e.Apply(ctx, s, domain.MovePlannedTreatment{PatientID: 1, SourceTooth: 14, TargetTooth: 15})
	require.True(t, out.Applied)

	chart := next.Patients[0].Chart
	target, ok := domain.LatestToothState(chart, 15)
	require.True(t, ok)
	assert.Equal(t, domain.ToothTreatmentPlanned, target.Status)
	assert.Equal(t, "D2740", target.Procedure)
	source, _ := domain.LatestToothState(chart, 14)
	assert.Equal(t, domain.ToothHealthy, source.Status)
	assert.Len(t, chart, len(s.Patients[0].Chart)+2)

	_, out = e.Apply(ctx, s, domain.MovePlannedTreatment{PatientID: 1, SourceTooth: 2, TargetTooth: 3})
	assert.False(t, out.Applied)
	require.Len(t, out.Diagnostics, 1)
}

func TestApply_LogActionAndReports(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	s := e.Initial()

	s, out := e.Apply(ctx, s, domain.LogAction{Type: "run_report", ReportName: "Day Sheet"})
	require.True(t, out.Applied)
	assert.ElementsMatch(t, []domain.Cell{cell(3, 0), cell(3, 1)}, out.Verified)
	require.Len(t, s.Actions, 1)
	assert.Equal(t, fixedNow, s.Actions[0].Timestamp)
	assert.Empty(t, s.History.Past, "logging is not undoable")

	s, out = e.Apply(ctx, s, domain.AddToast{Message: "Export complete", Level: domain.ToastSuccess})
	assert.Equal(t, []domain.Cell{cell(3, 5)}, out.Verified)
	toast := s.Toasts[0]
	assert.Equal(t, domain.ToastSuccess, toast.Kind)

	s, out = e.Apply(ctx, s, domain.RemoveToast{ToastID: toast.ID})
	require.True(t, out.Applied)
	assert.Empty(t, s.Toasts)
}

func TestApply_DayNotes(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	s := e.Initial()

	s, _ = e.Apply(ctx, s, domain.UpdateDayNote{Date: "2025-03-11", Note: "Dr. Jones out"})
	assert.Equal(t, "Dr. Jones out", s.DayNotes["2025-03-11"])

	s, _ = e.Apply(ctx, s, domain.UpdateDayNote{Date: "2025-03-11"})
	assert.NotContains(t, s.DayNotes, "2025-03-11")
}

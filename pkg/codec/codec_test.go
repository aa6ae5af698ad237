package codec_test

import (
	"testing"
	"time"

	"github.com/aretw0/dentsim/pkg/codec"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.Action
	}{
		{
			name: "select patient",
			in:   `{"type":"SELECT_PATIENT","payload":{"patient_id":4}}`,
			want: domain.SelectPatient{PatientID: ptr(4)},
		},
		{
			name: "clear selection",
			in:   `{"type":"SELECT_PATIENT","payload":{"patient_id":null}}`,
			want: domain.SelectPatient{},
		},
		{
			name: "ledger entry",
			in:   `{"type":"ADD_LEDGER_ENTRY","payload":{"patient_id":1,"entry":{"payment":100,"description":"copay"}}}`,
			want: domain.AddLedgerEntry{PatientID: 1, Entry: domain.LedgerEntry{Payment: 100, Description: "copay"}},
		},
		{
			name: "move with timestamp",
			in:   `{"type":"MOVE_APPOINTMENT","payload":{"appointment_id":"apt-1","new_start_time":"2025-03-10T14:00:00Z","new_operatory":2}}`,
			want: domain.MoveAppointment{
				AppointmentID: "apt-1",
				NewStartTime:  time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
				NewOperatory:  2,
			},
		},
		{
			name: "log action details",
			in:   `{"type":"LOG_ACTION","payload":{"type":"run_report","report_name":"Day Sheet","details":{"range":"today"}}}`,
			want: domain.LogAction{Type: "run_report", ReportName: "Day Sheet", Details: map[string]string{"range": "today"}},
		},
		{
			name: "toast level",
			in:   `{"type":"ADD_TOAST","payload":{"message":"Saved","kind":"success"}}`,
			want: domain.AddToast{Message: "Saved", Level: domain.ToastSuccess},
		},
		{
			name: "no payload",
			in:   `{"type":"UNDO"}`,
			want: domain.Undo{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.DecodeJSON([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_NestedRecords(t *testing.T) {
	a, err := codec.Decode(codec.Envelope{
		Type: domain.KindScheduleAppts,
		Payload: map[string]any{
			"appointments": []any{
				map[string]any{"id": "n1", "patient_id": 2, "start_time": "2025-03-10", "provider": "Dr. Smith", "is_block": true},
			},
		},
	})
	require.NoError(t, err)

	sched, ok := a.(domain.ScheduleAppointments)
	require.True(t, ok)
	require.Len(t, sched.Appointments, 1)
	assert.True(t, sched.Appointments[0].IsBlock)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), sched.Appointments[0].StartTime)
}

func TestDecode_TaskPatch(t *testing.T) {
	a, err := codec.DecodeJSON([]byte(`{"type":"UPDATE_TASK","payload":{"task_id":"t1","updates":{"completed":true,"due_date":"2025-03-11T08:00:00Z"}}}`))
	require.NoError(t, err)

	u := a.(domain.UpdateTask)
	require.NotNil(t, u.Updates.Completed)
	assert.True(t, *u.Updates.Completed)
	require.NotNil(t, u.Updates.DueDate)
	assert.Nil(t, u.Updates.Title)
}

func TestDecode_Errors(t *testing.T) {
	_, err := codec.DecodeJSON([]byte(`{"type":"FORMAT_DISK"}`))
	assert.ErrorIs(t, err, domain.ErrUnknownAction)

	_, err = codec.DecodeJSON([]byte(`{"type":`))
	assert.ErrorIs(t, err, codec.ErrInvalidPayload)

	_, err = codec.DecodeJSON([]byte(`{"type":"MOVE_APPOINTMENT","payload":{"new_start_time":"yesterday"}}`))
	assert.ErrorIs(t, err, codec.ErrInvalidPayload)
	assert.NotErrorIs(t, err, domain.ErrUnknownAction)
}

func TestKinds_CoverVocabulary(t *testing.T) {
	kinds := codec.Kinds()
	assert.Len(t, kinds, 46)
	assert.Contains(t, kinds, domain.KindRestartAll)
	assert.IsNonDecreasing(t, kinds)
}

func ptr[T any](v T) *T { return &v }

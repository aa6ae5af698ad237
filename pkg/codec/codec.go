// Package codec converts wire envelopes into typed actions.
//
// An envelope names an action kind and carries its payload as a loosely typed
// map (decoded JSON or YAML). Decode resolves the kind against a closed
// registry and decodes the payload into the matching action struct, so
// unknown kinds are rejected here rather than reaching the engine.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Envelope is the wire form of an action.
type Envelope struct {
	Type    domain.Kind `json:"type" yaml:"type"`
	Payload any         `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// ErrInvalidPayload marks envelopes that could not be parsed or whose payload
// does not fit the named kind.
var ErrInvalidPayload = errors.New("invalid action payload")

type decoder func(payload any) (domain.Action, error)

var registry = map[domain.Kind]decoder{}

func register[A domain.Action]() {
	var zero A
	registry[zero.Kind()] = func(payload any) (domain.Action, error) {
		var a A
		if err := decodeInto(payload, &a); err != nil {
			return nil, err
		}
		return a, nil
	}
}

func init() {
	register[domain.SelectPatient]()
	register[domain.AddPatient]()
	register[domain.AddFamilyMember]()
	register[domain.UpdatePatient]()
	register[domain.DeletePatient]()
	register[domain.ScheduleAppointments]()
	register[domain.UpdateAppointment]()
	register[domain.DeleteAppointment]()
	register[domain.CancelAppointment]()
	register[domain.MoveAppointment]()
	register[domain.PinAppointment]()
	register[domain.WaitlistAppointment]()
	register[domain.UpdateDayNote]()
	register[domain.AddLedgerEntry]()
	register[domain.UpdateChart]()
	register[domain.BulkUpdateChart]()
	register[domain.MovePlannedTreatment]()
	register[domain.LogAction]()
	register[domain.AddDocument]()
	register[domain.AddUnassignedDocument]()
	register[domain.UpdateUnassignedDocument]()
	register[domain.DeleteUnassignedDocument]()
	register[domain.AssignDocumentToPatient]()
	register[domain.AddVerification]()
	register[domain.UpdateVerification]()
	register[domain.BulkUpdateVerifications]()
	register[domain.AddMedicalRecord]()
	register[domain.UpdateMedicalRecord]()
	register[domain.AddPreAuth]()
	register[domain.AddClaim]()
	register[domain.UpdateClaim]()
	register[domain.AddRecallType]()
	register[domain.UpdateRecallType]()
	register[domain.AddToast]()
	register[domain.RemoveToast]()
	register[domain.AddTask]()
	register[domain.UpdateTask]()
	register[domain.ToggleTaskComplete]()
	register[domain.MarkTaskReminded]()
	register[domain.MarkMessageRead]()
	register[domain.SendPortalReply]()
	register[domain.Undo]()
	register[domain.Redo]()
	register[domain.StartAssessment]()
	register[domain.EndAssessment]()
	register[domain.RestartAll]()
}

// Decode turns an envelope into a typed action.
// Unknown kinds fail with domain.ErrUnknownAction.
func Decode(env Envelope) (domain.Action, error) {
	dec, ok := registry[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, env.Type)
	}
	a, err := dec(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %w", ErrInvalidPayload, env.Type, err)
	}
	return a, nil
}

// DecodeJSON parses and decodes a JSON envelope.
func DecodeJSON(data []byte) (domain.Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return Decode(env)
}

// Kinds lists the registered kinds in lexical order.
func Kinds() []domain.Kind {
	kinds := make([]domain.Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func decodeInto(payload, out any) error {
	if payload == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			timeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(payload)
}

var timeType = reflect.TypeOf(time.Time{})

// timeHook accepts RFC 3339 timestamps and bare dates for time.Time fields.
func timeHook(from, to reflect.Type, data any) (any, error) {
	if to != timeType || from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("invalid timestamp %q", s)
}

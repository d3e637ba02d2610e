package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRequisitionLineFailedEvent_KeepsBackendDetail(t *testing.T) {
	evt := RequisitionLineFailedEvent{
		EventID:             uuid.New(),
		Version:             1,
		RequisitionHeaderID: 500,
		ItemID:              42,
		FailureStatus:       400,
		FailureDetail:       json.RawMessage(`{"title":"Bad Request"}`),
		OccurredAt:          time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw["requisition_header_id"] != float64(500) {
		t.Fatalf("header id lost: %v", raw["requisition_header_id"])
	}
	detail, ok := raw["failure_detail"].(map[string]any)
	if !ok || detail["title"] != "Bad Request" {
		t.Fatalf("failure detail must stay structured JSON, got %v", raw["failure_detail"])
	}
}

func TestTopics_Distinct(t *testing.T) {
	topics := map[string]bool{}
	for _, topic := range []string{TopicRequisitionSubmitted, TopicRequisitionLineFailed, TopicSupplierRatingRecorded} {
		if topics[topic] {
			t.Fatalf("duplicate topic %q", topic)
		}
		topics[topic] = true
	}
}

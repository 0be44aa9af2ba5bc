package queue

import (
	"encoding/json"
	"testing"

	"github.com/VPodolski/MakiMora/internal/constants"

	"github.com/google/uuid"
)

func TestNewOrderStatusNotifyTask(t *testing.T) {
	orderID := uuid.New()
	task, err := NewOrderStatusNotifyTask(OrderStatusNotifyPayload{OrderID: orderID, Status: constants.OrderStatusReady})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if task.Type() != constants.TaskOrderStatusNotify {
		t.Fatalf("unexpected task type: %s", task.Type())
	}

	var payload OrderStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		t.Fatalf("decode payload failed: %v", err)
	}
	if payload.OrderID != orderID {
		t.Fatalf("order id mismatch: %s", payload.OrderID)
	}
	if payload.Status != constants.OrderStatusReady {
		t.Fatalf("status mismatch: %s", payload.Status)
	}
}

func TestNewOrderTimeoutCancelTask(t *testing.T) {
	orderID := uuid.New()
	task, err := NewOrderTimeoutCancelTask(OrderTimeoutCancelPayload{OrderID: orderID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if task.Type() != constants.TaskOrderTimeoutCancel {
		t.Fatalf("unexpected task type: %s", task.Type())
	}

	var payload OrderTimeoutCancelPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		t.Fatalf("decode payload failed: %v", err)
	}
	if payload.OrderID != orderID {
		t.Fatalf("order id mismatch: %s", payload.OrderID)
	}
}

func TestDisabledClientEnqueuesNothing(t *testing.T) {
	client := &Client{}
	if client.Enabled() {
		t.Fatalf("zero client must report disabled")
	}
	if err := client.EnqueueOrderStatusNotify(uuid.New(), constants.OrderStatusReady); err != nil {
		t.Fatalf("disabled enqueue must be a no-op, got %v", err)
	}
	if err := client.EnqueueCourierEarningAccrue(uuid.New()); err != nil {
		t.Fatalf("disabled enqueue must be a no-op, got %v", err)
	}
}

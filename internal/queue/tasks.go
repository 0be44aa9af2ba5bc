package queue

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/VPodolski/MakiMora/internal/constants"
)

const (
	// TaskOrderStatusNotify notifies the customer about a status change.
	TaskOrderStatusNotify = constants.TaskOrderStatusNotify
	// TaskCourierEarningAccrue writes the delivery fee ledger row.
	TaskCourierEarningAccrue = constants.TaskCourierEarningAccrue
	// TaskOrderTimeoutCancel cancels orders stuck in pending.
	TaskOrderTimeoutCancel = constants.TaskOrderTimeoutCancel
)

// OrderStatusNotifyPayload carries the status change notification.
type OrderStatusNotifyPayload struct {
	OrderID uuid.UUID `json:"order_id"`
	Status  string    `json:"status"`
}

// CourierEarningAccruePayload carries the delivered order.
type CourierEarningAccruePayload struct {
	OrderID uuid.UUID `json:"order_id"`
}

// OrderTimeoutCancelPayload carries the order to cancel on timeout.
type OrderTimeoutCancelPayload struct {
	OrderID uuid.UUID `json:"order_id"`
}

// NewOrderStatusNotifyTask builds the notification task.
func NewOrderStatusNotifyTask(payload OrderStatusNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusNotify, body), nil
}

// NewCourierEarningAccrueTask builds the earning accrual task.
func NewCourierEarningAccrueTask(payload CourierEarningAccruePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCourierEarningAccrue, body), nil
}

// NewOrderTimeoutCancelTask builds the timeout cancel task.
func NewOrderTimeoutCancelTask(payload OrderTimeoutCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderTimeoutCancel, body), nil
}

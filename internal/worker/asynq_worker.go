package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/logger"
	"github.com/VPodolski/MakiMora/internal/provider"
	"github.com/VPodolski/MakiMora/internal/queue"
	"github.com/VPodolski/MakiMora/internal/service"
)

// Consumer handles queued order tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers to the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusNotify, c.handleOrderStatusNotify)
	mux.HandleFunc(queue.TaskCourierEarningAccrue, c.handleCourierEarningAccrue)
	mux.HandleFunc(queue.TaskOrderTimeoutCancel, c.handleOrderTimeoutCancel)
}

// handleOrderStatusNotify delivers the customer-facing status update.
// There is no outbound channel wired yet, so the notification lands in
// the structured log where the dispatch desk tails it.
func (c *Consumer) handleOrderStatusNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == uuid.Nil {
		logger.Debugw("worker_order_status_notify_skip_invalid_payload")
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_notify_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_notify_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	logger.Infow("order_status_notification",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"customer_name", order.CustomerName,
		"customer_phone", order.CustomerPhone,
		"status", payload.Status,
	)
	return nil
}

func (c *Consumer) handleCourierEarningAccrue(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_earning_accrue_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CourierEarningAccruePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_earning_accrue_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == uuid.Nil {
		logger.Debugw("worker_earning_accrue_skip_invalid_payload")
		return nil
	}
	if c.EarningService == nil {
		logger.Warnw("worker_earning_accrue_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.EarningService.AccrueDeliveryFee(payload.OrderID); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			logger.Debugw("worker_earning_accrue_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		case errors.Is(err, service.ErrNoCourierAssigned):
			logger.Warnw("worker_earning_accrue_skip_no_courier", "order_id", payload.OrderID)
			return nil
		case errors.Is(err, service.ErrIllegalTransition):
			// Not delivered yet, retry later.
			logger.Debugw("worker_earning_accrue_retry_not_delivered", "order_id", payload.OrderID)
			return err
		default:
			logger.Warnw("worker_earning_accrue_failed", "order_id", payload.OrderID, "error", err)
			return err
		}
	}
	return nil
}

func (c *Consumer) handleOrderTimeoutCancel(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_timeout_cancel_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderTimeoutCancelPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_timeout_cancel_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == uuid.Nil {
		logger.Debugw("worker_order_timeout_cancel_skip_invalid_payload")
		return nil
	}
	if c.OrderService == nil {
		logger.Warnw("worker_order_timeout_cancel_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_timeout_cancel_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_timeout_cancel_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	pending, err := c.Statuses.OrderStatus(constants.OrderStatusPending)
	if err != nil {
		return err
	}
	// Only unconfirmed orders expire.
	if order.StatusID != pending.ID {
		logger.Debugw("worker_order_timeout_cancel_skip_already_progressed", "order_id", payload.OrderID)
		return nil
	}
	_, err = c.OrderService.TransitionOrder(service.SystemActor, service.TransitionInput{
		OrderID: payload.OrderID,
		Target:  constants.OrderStatusCancelled,
		Note:    "cancelled automatically: confirmation timeout",
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			logger.Debugw("worker_order_timeout_cancel_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		case errors.Is(err, service.ErrIllegalTransition):
			// The order already moved past pending, nothing to cancel.
			logger.Debugw("worker_order_timeout_cancel_skip_already_progressed", "order_id", payload.OrderID)
			return nil
		case errors.Is(err, service.ErrVersionConflict):
			logger.Debugw("worker_order_timeout_cancel_retry_conflict", "order_id", payload.OrderID)
			return err
		default:
			logger.Warnw("worker_order_timeout_cancel_failed", "order_id", payload.OrderID, "error", err)
			return err
		}
	}
	return nil
}

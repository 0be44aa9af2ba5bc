package constants

// Order status names (stable keys of the order_statuses lookup table)
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusAssembled = "assembled"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order item status names
const (
	ItemStatusPending   = "pending"
	ItemStatusPreparing = "preparing"
	ItemStatusPrepared  = "prepared"
	ItemStatusAssembled = "assembled"
	ItemStatusDelivered = "delivered"
	ItemStatusCancelled = "cancelled"
)

// Staff role names
const (
	RoleHR        = "hr"
	RoleManager   = "manager"
	RoleSushiChef = "sushi_chef"
	RolePacker    = "packer"
	RoleCourier   = "courier"
)

// Inventory supply statuses
const (
	SupplyStatusPending   = "pending"
	SupplyStatusDelivered = "delivered"
	SupplyStatusCancelled = "cancelled"
)

// Courier earning types
const (
	EarningTypeDeliveryFee = "delivery_fee"
	EarningTypeBonus       = "bonus"
	EarningTypePenalty     = "penalty"
)

// Queue constants
const (
	QueueDefault             = "default"
	TaskOrderStatusNotify    = "order:status_notify"
	TaskCourierEarningAccrue = "courier:earning_accrue"
	TaskOrderTimeoutCancel   = "order:timeout_cancel"
)

// Cache defaults
const (
	RedisPrefixDefault = "mm"
)

// WebSocket event types published on location channels
const (
	WSEventOrderCreated    = "order_created"
	WSEventOrderStatus     = "order_status_changed"
	WSEventOrderItemStatus = "order_item_status_changed"
)

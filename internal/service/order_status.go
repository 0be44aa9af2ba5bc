package service

import "github.com/VPodolski/MakiMora/internal/constants"

// Legal order transitions. The happy path is a straight line; cancel
// is reachable from every non-terminal state; delivered and cancelled
// have no exits.
var orderTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusPreparing: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusPreparing: {
		constants.OrderStatusReady:     true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusReady: {
		constants.OrderStatusAssembled: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusAssembled: {
		constants.OrderStatusPickedUp:  true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusPickedUp: {
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCancelled: {},
}

// Legal item transitions, with cancelled absorbing from every
// non-terminal state.
var itemTransitions = map[string]map[string]bool{
	constants.ItemStatusPending: {
		constants.ItemStatusPreparing: true,
		constants.ItemStatusCancelled: true,
	},
	constants.ItemStatusPreparing: {
		constants.ItemStatusPrepared:  true,
		constants.ItemStatusCancelled: true,
	},
	constants.ItemStatusPrepared: {
		constants.ItemStatusAssembled: true,
		constants.ItemStatusCancelled: true,
	},
	constants.ItemStatusAssembled: {
		constants.ItemStatusDelivered: true,
		constants.ItemStatusCancelled: true,
	},
	constants.ItemStatusDelivered: {},
	constants.ItemStatusCancelled: {},
}

// CanTransitionOrder reports whether from -> to is legal for orders.
func CanTransitionOrder(from, to string) bool {
	next, ok := orderTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// CanTransitionItem reports whether from -> to is legal for items.
func CanTransitionItem(from, to string) bool {
	next, ok := itemTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// IsTerminalOrderStatus reports whether the status has no exits.
func IsTerminalOrderStatus(status string) bool {
	next, ok := orderTransitions[status]
	return ok && len(next) == 0
}

// IsTerminalItemStatus reports whether the status has no exits.
func IsTerminalItemStatus(status string) bool {
	next, ok := itemTransitions[status]
	return ok && len(next) == 0
}

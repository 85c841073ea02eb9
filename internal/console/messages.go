package console

// User-visible message text shared across the order-building views.
const (
	MsgExistingCustomer = "Existing customer loaded."
	MsgNewCustomer      = "New customer. Enter details."
	MsgSearchError      = "Error searching customer."
	MsgNotEnoughStock   = "Not enough stock."
	MsgCartEmpty        = "Cart is empty."
	MsgCreateError      = "Error creating order."
	MsgProductsError    = "Could not load products."
	MsgOrderUpdated     = "Order updated successfully"
	MsgUpdateError      = "Error updating order"
	MsgLoadError        = "Error loading order"
	MsgCannotCancel     = "Cannot cancel: shipment not pending."
)

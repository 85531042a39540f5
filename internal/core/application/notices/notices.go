// Package notices builds the short confirmations shown to the seller after an
// action succeeds. Delivery (toasts, queues, logs) is up to ports.Notifier.
package notices

import (
	"fmt"
	"time"
)

// Kind tells consumers which action produced a notice.
type Kind string

const (
	KindOrderStatusChanged Kind = "order.status_changed"
	KindOrderReceived      Kind = "order.received"
	KindProductAdded       Kind = "product.added"
	KindProductUpdated     Kind = "product.updated"
	KindProductDeleted     Kind = "product.deleted"
	KindProfileSaved       Kind = "profile.saved"
)

type Notice struct {
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subject     string    `json:"subject,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// OrderStatusChanged reads "Order ORD-001 status changed to shipped.".
func OrderStatusChanged(orderID, status string) Notice {
	return newNotice(KindOrderStatusChanged, "Order Updated",
		fmt.Sprintf("Order %s status changed to %s.", orderID, status), orderID)
}

func OrderReceived(orderID, productName string) Notice {
	return newNotice(KindOrderReceived, "New Order",
		fmt.Sprintf("Order %s for %s has been received.", orderID, productName), orderID)
}

func ProductAdded(productID, name string) Notice {
	return newNotice(KindProductAdded, "Product Added",
		fmt.Sprintf("%s has been added to your store.", name), productID)
}

func ProductUpdated(productID, name string) Notice {
	return newNotice(KindProductUpdated, "Product Updated",
		fmt.Sprintf("%s has been updated.", name), productID)
}

func ProductDeleted(productID, name string) Notice {
	return newNotice(KindProductDeleted, "Product Deleted",
		fmt.Sprintf("%s has been removed from your store.", name), productID)
}

func ProfileSaved() Notice {
	return newNotice(KindProfileSaved, "Profile Updated",
		"Your profile information has been saved successfully.", "")
}

func newNotice(kind Kind, title, description, subject string) Notice {
	return Notice{
		Kind:        kind,
		Title:       title,
		Description: description,
		Subject:     subject,
		OccurredAt:  time.Now().UTC(),
	}
}

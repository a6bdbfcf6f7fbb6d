// Package metrics registers the storefront's Prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CartMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cart",
		Name:      "mutations_total",
		Help:      "Cart mutations by operation (update, remove, clear).",
	}, []string{"op"})

	CartEntriesPruned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cart",
		Name:      "entries_pruned_total",
		Help:      "Cart entries removed because their product left the catalog.",
	})

	CheckoutBlocked = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cart",
		Name:      "checkout_blocked_total",
		Help:      "Checkout attempts rejected by the admission check.",
	}, []string{"reason"})

	AvatarRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "profile",
		Name:      "avatar_rejected_total",
		Help:      "Avatar uploads rejected by validation.",
	})
)

func init() {
	prometheus.MustRegister(CartMutations, CartEntriesPruned, CheckoutBlocked, AvatarRejected)
}

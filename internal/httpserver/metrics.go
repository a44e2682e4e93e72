package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ordersSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coffee_orders_settled_total",
		Help: "Orders settled through checkout.",
	})
	checkoutRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coffee_checkout_rejected_total",
		Help: "Checkout attempts refused, by reason.",
	}, []string{"reason"})
	reservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coffee_reservations_created_total",
		Help: "Table reservations accepted.",
	})
	reservationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coffee_reservations_rejected_total",
		Help: "Table reservations refused, by reason.",
	}, []string{"reason"})
	discountPreviews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coffee_discount_previews_total",
		Help: "Promotional code previews, by outcome.",
	}, []string{"outcome"})
)

func metricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
)

const bookingSessionHeader = "X-Booking-Session"

// TransactionAttributes annotates the current New Relic transaction with
// the booking session id, so one guest's wizard flow can be followed across
// requests. Must run after nrgin's middleware; a no-op when instrumentation
// is disabled.
func TransactionAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		txn := nrgin.Transaction(c)
		if txn == nil {
			c.Next()
			return
		}

		if id := c.GetHeader(bookingSessionHeader); id != "" {
			txn.AddAttribute("booking.session_id", id)
		}

		c.Next()

		for _, err := range c.Errors {
			txn.NoticeError(err.Err)
		}
	}
}

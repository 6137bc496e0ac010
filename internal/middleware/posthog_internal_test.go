package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventName(t *testing.T) {
	assert.Equal(t, "enquiry_created", eventName("POST", "/api/v1/enquiries"))
	assert.Equal(t, "payment_updated", eventName("PUT", "/api/v1/payments/:paymentID"))
	assert.Equal(t, "get_api_v1_enquiries_enquiryid_payment", eventName("GET", "/api/v1/enquiries/:enquiryID/payment"))
}

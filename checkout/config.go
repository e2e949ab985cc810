package checkout

import "github.com/kabaddi-academy/academy-pay/checkout/models"

// Config is a configuration for the payment flow
type Config struct {
	// BaseURL is the backend origin; endpoint paths below are joined to it.
	BaseURL string

	KeyPath     string
	OrderPath   string
	VerifyPath  string
	FailurePath string

	// MerchantName and Description are shown inside the hosted checkout.
	MerchantName string
	Description  string
	// Currency applies when the backend omits one from the order.
	Currency string
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:      "http://localhost:5001",
		KeyPath:      "/get_key",
		OrderPath:    "/create_order",
		VerifyPath:   "/payment_success",
		FailurePath:  "/payment_failed",
		MerchantName: "Kabaddi Academy",
		Description:  "Registration Fee",
		Currency:     models.DefaultCurrency,
	}
}

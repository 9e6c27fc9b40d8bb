package entities

// GatewayMode selects the Payonom endpoint set.

type GatewayMode string

const (
	GatewayModeSandbox GatewayMode = "sandbox"
	GatewayModeLive    GatewayMode = "live"
)

// GatewayConfig holds the merchant configuration for one payment attempt.
//
// It is read at redirect-build time and again at callback time; both reads
// must observe the same values for a given attempt (no mid-flight mode
// switch), which the env-backed store guarantees by loading once at startup.
type GatewayConfig struct {
	Enabled      bool        `json:"enabled"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	ClientID     string      `json:"client_id"`
	ClientSecret string      `json:"-"`
	Mode         GatewayMode `json:"mode"`

	// CallbackBaseURL is this system's externally reachable base; the
	// redirect URL embeds CallbackBaseURL + the callback route.
	CallbackBaseURL string `json:"-"`

	// Shopper-facing result destinations.
	OrderReceivedURL string `json:"-"`
	OrderHistoryURL  string `json:"-"`

	// CurrencyCodes maps ISO currency codes to Payonom numeric ids.
	// Operators extend it via configuration; unknown currencies fall back
	// to DefaultCurrencyCode.
	CurrencyCodes map[string]int `json:"-"`
}

// DefaultCurrencyCode is the Payonom id used for currencies absent from
// CurrencyCodes.
const DefaultCurrencyCode = 0

// CurrencyCode resolves the Payonom numeric id for an ISO currency code.
func (c GatewayConfig) CurrencyCode(currency string) int {
	if id, ok := c.CurrencyCodes[currency]; ok {
		return id
	}
	return DefaultCurrencyCode
}

// BaseURL returns the Payonom base endpoint for the configured mode.
func (c GatewayConfig) BaseURL() string {
	if c.Mode == GatewayModeLive {
		return "https://live.payonom.com"
	}
	return "https://sandbox.payonom.com"
}

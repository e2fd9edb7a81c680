package types

// UnlimitedCustomizations is the sentinel limit applied on the first
// free-to-pro transition. Historical usage counts are kept but no longer
// enforced against it.
const UnlimitedCustomizations = 1<<31 - 1

// EntitlementStatus is the result of a customization entitlement check.
type EntitlementStatus struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
	IsPro     bool `json:"is_pro"`
}

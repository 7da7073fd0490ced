package ports

// CloudflareClient performs provider-side operations for a zone. All calls
// are delegated to an external tool; this interface only sees credentials
// and the operation parameters.
type CloudflareClient interface {
	// PurgeZone purges the entire cache of the given zone.
	PurgeZone(email, token, zone string) error
	// CreateProxiedCNAME creates a proxied CNAME record in the given zone.
	// It returns created == false with a nil error when an identical record
	// already exists, so callers can treat that outcome as idempotent.
	CreateProxiedCNAME(email, token, zone, name, content string) (created bool, err error)
}

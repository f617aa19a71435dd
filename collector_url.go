package echoclient

// CollectorURL identifies one of the known Echo collector endpoints. It is a closed
// enumeration rather than a free-form string, so a Payload can never carry a malformed
// destination. The zero value is StageCollectorURL.
type CollectorURL int

const (
	// StageCollectorURL is the staging collector endpoint. This is the default destination
	// for a Payload.
	StageCollectorURL CollectorURL = iota
	// ProdCollectorURL is the production collector endpoint.
	ProdCollectorURL
)

const (
	stageCollectorURI = "https://echocollector-stage.kroger.com/echo/messages"
	prodCollectorURI  = "https://echocollector.kroger.com/echo/messages"
)

// String returns the literal URL of the collector endpoint.
func (u CollectorURL) String() string {
	if u == ProdCollectorURL {
		return prodCollectorURI
	}
	return stageCollectorURI
}

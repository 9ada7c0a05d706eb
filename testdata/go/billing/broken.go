package billing

// @ubiquitous Broken
type Broken struct {

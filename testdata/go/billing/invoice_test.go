package billing

// @ubiquitous Test Fixture
type fixture struct{}

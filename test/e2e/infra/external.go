package infra

// ExternalInfraManager implements InfraManager for a server that is already
// running. StartForkpool only reports the configured URL.
type ExternalInfraManager struct {
	apiURL string
}

func NewExternalInfraManager(apiURL string) *ExternalInfraManager {
	return &ExternalInfraManager{apiURL: apiURL}
}

func (e *ExternalInfraManager) StartForkpool(_ ServeConfig) (string, error) {
	return e.apiURL, nil
}

func (e *ExternalInfraManager) StopForkpool() error    { return nil }
func (e *ExternalInfraManager) RestartForkpool() error { return nil }

package domain

const (
	AzukiAPIBaseURL = "https://production.api.azuki.co"
	AzukiWebBaseURL = "https://www.azuki.co"
	NyaaBaseURL     = "https://nyaa.si"
)

// Service names a remote service that one of the credential sets
// authenticates against.
type Service struct {
	Name    string
	BaseURL string
}

var (
	Azuki = Service{Name: "azuki", BaseURL: AzukiWebBaseURL}
	Nyaa  = Service{Name: "nyaa", BaseURL: NyaaBaseURL}
)

func (s Service) String() string {
	return s.Name
}

// Credentials pairs each configured credential set with its service.
func (c *Config) Credentials() map[Service]Credential {
	return map[Service]Credential{
		Nyaa:  c.NyaaAuth,
		Azuki: c.AzukiAuth,
	}
}

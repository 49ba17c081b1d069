package config

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2"
)

type OpenSearchConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

func DefaultOpenSearchConfig() *OpenSearchConfig {
	return &OpenSearchConfig{
		Host:     getEnvWithDefault("OPENSEARCH_HOST", "localhost"),
		Port:     getEnvWithDefault("OPENSEARCH_PORT", "9200"),
		Username: getEnvWithDefault("OPENSEARCH_USERNAME", ""),
		Password: getEnvWithDefault("OPENSEARCH_PASSWORD", ""),
	}
}

func (c *OpenSearchConfig) GetClient() (*opensearch.Client, error) {
	config := opensearch.Config{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
		Addresses: []string{
			fmt.Sprintf("http://%s:%s", c.Host, c.Port),
		},
	}

	if c.Username != "" && c.Password != "" {
		config.Username = c.Username
		config.Password = c.Password
	}

	return opensearch.NewClient(config)
}

// GetIndexName returns the design index name for an account.
// Format: designs_<account_id>
func (c *OpenSearchConfig) GetIndexName(accountID string) string {
	return fmt.Sprintf("designs_%s", accountID)
}

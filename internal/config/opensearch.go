package config

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
)

type OpenSearchConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	// InsecureSkipVerify is meant for local clusters with self-signed certificates.
	InsecureSkipVerify bool
}

func DefaultOpenSearchConfig() *OpenSearchConfig {
	return &OpenSearchConfig{
		Host:     getEnv("OPENSEARCH_HOST", "localhost"),
		Port:     getEnv("OPENSEARCH_PORT", "9200"),
		Username: getEnv("OPENSEARCH_USERNAME", ""),
		Password: getEnv("OPENSEARCH_PASSWORD", ""),

		InsecureSkipVerify: getEnvBool("OPENSEARCH_INSECURE", true),
	}
}

func (c *OpenSearchConfig) GetClient() (*opensearch.Client, error) {
	config := opensearch.Config{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: c.InsecureSkipVerify,
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

// GetIndexName returns the monthly index a landlord's document lands in.
// Format: documents_<user_id>_YYYY_MM
func (c *OpenSearchConfig) GetIndexName(userID string, t time.Time) string {
	return fmt.Sprintf("documents_%s_%s", userID, t.UTC().Format("2006_01"))
}

// GetIndexPattern matches every document index of a landlord.
func (c *OpenSearchConfig) GetIndexPattern(userID string) string {
	return fmt.Sprintf("documents_%s_*", userID)
}

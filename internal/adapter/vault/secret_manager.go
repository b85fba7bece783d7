package vault

import (
	"fmt"

	"github.com/hashicorp/vault/api"
)

type SecretManager struct {
	client *api.Client
}

func NewSecretManager(address, token string) (*SecretManager, error) {
	config := api.DefaultConfig()
	config.Address = address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, err
	}

	client.SetToken(token)

	return &SecretManager{client: client}, nil
}

func (sm *SecretManager) GetDatabaseCredentials() (string, error) {
	return sm.readString("secret/data/database", "connection_string")
}

func (sm *SecretManager) GetSendGridAPIKey() (string, error) {
	return sm.readString("secret/data/sendgrid", "api_key")
}

func (sm *SecretManager) readString(path, key string) (string, error) {
	secret, err := sm.client.Logical().Read(path)
	if err != nil {
		return "", err
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault: secret %s not found", path)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("vault: secret %s has no data", path)
	}
	value, ok := data[key].(string)
	if !ok {
		return "", fmt.Errorf("vault: secret %s missing key %s", path, key)
	}
	return value, nil
}

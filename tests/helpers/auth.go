package helpers

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"testing"
)

func randInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// RandomPassword generates a password that satisfies common complexity rules
func RandomPassword() string {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		special = "!@#$%^&*"
		numbers = "0123456789"
		all     = lower + upper + special + numbers
	)

	password := make([]byte, 10)
	password[0] = upper[randInt(len(upper))]
	password[1] = special[randInt(len(special))]
	password[2] = numbers[randInt(len(numbers))]

	for i := 3; i < 10; i++ {
		password[i] = all[randInt(len(all))]
	}

	for i := range password {
		j := randInt(len(password))
		password[i], password[j] = password[j], password[i]
	}

	return string(password)
}

// Login authenticates against a running service and returns the access token
func Login(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		t.Fatalf("Failed to marshal login body: %v", err)
	}

	resp, err := http.Post(baseURL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Login request failed: %v", err)
	}
	AssertStatus(t, resp, http.StatusOK)

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	ParseJSON(t, resp, &envelope)
	if envelope.Data.AccessToken == "" {
		t.Fatalf("Login returned no access token for %s", username)
	}

	return envelope.Data.AccessToken
}

// RegisterUser registers a new account through a running service using an admin token
func RegisterUser(t *testing.T, baseURL, adminToken string, input map[string]string) {
	t.Helper()

	body, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("Failed to marshal register body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/auth/register", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to create register request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Register request failed: %v", err)
	}
	AssertStatus(t, resp, http.StatusOK)
	resp.Body.Close()
}

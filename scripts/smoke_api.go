package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 2 * time.Minute} // synthesis calls an LLM
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decode(body []byte) map[string]interface{} {
	var m map[string]interface{}
	json.Unmarshal(body, &m)
	return m
}

func main() {
	color.Cyan("Starting CRM API smoke test\n")

	email := fmt.Sprintf("smoke+%d@example.com", time.Now().Unix())

	// 1. Register
	color.Yellow("\n1. Register user")
	resp, body, err := sendRequest("POST", "/auth/v1/register", "", map[string]interface{}{
		"email":     email,
		"password":  "smoke-test-password",
		"full_name": "Smoke Tester",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 2. Login
	color.Yellow("\n2. Login")
	resp, body, err = sendRequest("POST", "/auth/v1/login", "", map[string]interface{}{
		"email":    email,
		"password": "smoke-test-password",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	loginResp := decode(body)
	token, _ := loginResp["data"].(map[string]interface{})["token"].(string)
	if token == "" {
		color.Red("No token in login response")
		os.Exit(1)
	}

	// 3. Create contact
	color.Yellow("\n3. Create contact")
	resp, body, err = sendRequest("POST", "/contact/v1", token, map[string]interface{}{
		"full_name": "Maya Chen",
		"tier":      1,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	contactResp := decode(body)
	prettyPrint(contactResp)
	contactId, _ := contactResp["data"].(map[string]interface{})["id"].(string)

	// 4. Process a note (full synthesis pipeline)
	color.Yellow("\n4. Process note")
	resp, body, err = sendRequest("POST", "/note/v1/process", token, map[string]interface{}{
		"contact_id": contactId,
		"note":       "Met Maya for coffee. She just started training for a marathon and wants to switch jobs into climate tech by next year. Follow up: send her the intro to Raj.",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 5. Contact detail with categorized data
	color.Yellow("\n5. Contact detail")
	resp, body, err = sendRequest("GET", "/contact/v1/"+contactId, token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 6. Contact logs (audit trail)
	color.Yellow("\n6. Contact logs")
	resp, body, err = sendRequest("GET", "/contact/v1/"+contactId+"/logs", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	color.Cyan("\nSmoke test completed")
}

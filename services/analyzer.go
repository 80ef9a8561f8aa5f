// services/analyzer.go - External biometric analyzer client
//
// The ML inference service is an opaque collaborator: it takes a voice
// sample and a face image and returns a fatigue/stress pair in [0,1]. No
// model logic lives in this process.
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

// BiometricAnalysis is the analyzer's verdict. Both fields are in [0,1].
type BiometricAnalysis struct {
	Fatigue float64 `json:"fatigue"`
	Stress  float64 `json:"stress"`
}

type AnalyzerClient struct {
	baseURL string
	client  *http.Client
}

// NewAnalyzerClient reads the analyzer endpoint from ML_SERVICE_URL.
func NewAnalyzerClient() *AnalyzerClient {
	baseURL := os.Getenv("ML_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	return &AnalyzerClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Analyze submits the raw audio and image bytes and returns the analyzer's
// fatigue/stress pair.
func (a *AnalyzerClient) Analyze(audio, image []byte) (*BiometricAnalysis, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	audioPart, err := writer.CreateFormFile("audioFile", "audio.wav")
	if err != nil {
		return nil, err
	}
	if _, err := audioPart.Write(audio); err != nil {
		return nil, err
	}

	imagePart, err := writer.CreateFormFile("imageFile", "image.jpg")
	if err != nil {
		return nil, err
	}
	if _, err := imagePart.Write(image); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, a.baseURL+"/analyze", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyzer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, payload)
	}

	var analysis BiometricAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, fmt.Errorf("invalid analyzer response: %w", err)
	}

	return &analysis, nil
}

package main

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Glue endpoints: file upload, URL shortening and SMS relay. These sit
// outside the workspace core; they reuse the blob store (shortlinks) and the
// local filesystem (uploads) and never touch the ledger or schedule state.

var uploadDir = getEnvOrDefault("UPLOAD_DIR", "uploads")

const shortCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newShortCode generates a 6-character link code.
func newShortCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate short code: %w", err)
	}
	// The modulo fold is slightly biased toward the low end of the
	// alphabet; codes only need to be unguessable-ish and unique.
	for i, b := range buf {
		buf[i] = shortCodeAlphabet[int(b)%len(shortCodeAlphabet)]
	}
	return string(buf), nil
}

// @Summary Upload file
// @Description Store an uploaded file under the upload directory and return its serve path
// @Tags glue
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]interface{} "Stored file path"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/upload [post]
func uploadFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Printf("Error creating upload directory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing file"})
		return
	}

	stored := uuid.NewString() + filepath.Ext(header.Filename)
	out, err := os.Create(filepath.Join(uploadDir, stored))
	if err != nil {
		log.Printf("Error creating upload file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing file"})
		return
	}
	defer out.Close()

	if _, err := out.ReadFrom(file); err != nil {
		log.Printf("Error writing upload file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"file_name": header.Filename,
		"path":      "/files/" + stored,
	})
}

// @Summary Shorten URL
// @Description Create a short code for a URL. The code map is persisted through the blob store.
// @Tags glue
// @Accept json
// @Produce json
// @Param link body object{url=string} true "URL to shorten"
// @Success 201 {object} map[string]interface{} "Short code and path"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/shorten [post]
func shortenURL(c *gin.Context) {
	var request struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	parsed, err := url.ParseRequestURI(request.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL must be absolute http or https"})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	code, err := newShortCode()
	for err == nil && ws.Shortlinks[code] != "" {
		code, err = newShortCode()
	}
	if err != nil {
		log.Printf("Error generating short code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating short code"})
		return
	}
	ws.Shortlinks[code] = request.URL
	ws.persistShortlinks()

	c.JSON(http.StatusCreated, gin.H{"code": code, "path": "/s/" + code})
}

// @Summary Resolve short link
// @Description Redirect a short code to its URL
// @Tags glue
// @Param code path string true "Short code"
// @Success 302 {string} string "Redirect"
// @Failure 404 {object} map[string]interface{} "Unknown code"
// @Router /s/{code} [get]
func resolveShortlink(c *gin.Context) {
	code := c.Param("code")

	ws.mu.Lock()
	target := ws.Shortlinks[code]
	ws.mu.Unlock()

	if target == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown link"})
		return
	}

	c.Redirect(http.StatusFound, target)
}

// @Summary Relay SMS
// @Description Forward an SMS message to the configured gateway. No retry: a failed relay is reported immediately.
// @Tags glue
// @Accept json
// @Produce json
// @Param message body object{to=string,body=string} true "Message"
// @Success 200 {object} map[string]interface{} "Message relayed"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 502 {object} map[string]interface{} "Gateway failure"
// @Failure 503 {object} map[string]interface{} "No gateway configured"
// @Router /api/sms [post]
func relaySMS(c *gin.Context) {
	gateway := os.Getenv("SMS_GATEWAY_URL")
	if gateway == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No SMS gateway configured"})
		return
	}

	var request struct {
		To   string `json:"to" binding:"required"`
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	payload, _ := json.Marshal(request)
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(gateway, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("Error relaying SMS: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "SMS gateway unreachable"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("SMS gateway returned %d", resp.StatusCode)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SMS relayed successfully"})
}

package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Client Twilio Verify (API v2). Les identifiants sont relus dans l'environnement à
// chaque appel (TWILIO_SID / TWILIO_AUTH_TOKEN / TWILIO_VERIFY_SID), jamais mis en cache.

type TwilioClient struct {
	BaseURL string // surchargable en test
	DryRun  bool   // mode dry-run : aucun appel HTTP
	HTTP    *http.Client
}

type twilioVerification struct {
	SID    string `json:"sid"`
	Status string `json:"status"` // pending | approved | canceled
	Valid  bool   `json:"valid"`
}

func NewTwilioClient(dryRun bool) *TwilioClient {
	return &TwilioClient{
		BaseURL: "https://verify.twilio.com/v2",
		DryRun:  dryRun,
		HTTP:    &http.Client{},
	}
}

func twilioCreds() (sid, token, serviceSID string) {
	return os.Getenv("TWILIO_SID"), os.Getenv("TWILIO_AUTH_TOKEN"), os.Getenv("TWILIO_VERIFY_SID")
}

// StartVerification — déclenche l'envoi d'un OTP par SMS vers `to` ("+228...").
func (c *TwilioClient) StartVerification(to string) error {
	if c.DryRun {
		log.Printf("[twilio][dry-run] verification to=%s", to)
		return nil
	}
	sid, token, serviceSID := twilioCreds()
	if sid == "" || token == "" || serviceSID == "" {
		return fmt.Errorf("twilio credentials missing from environment")
	}

	form := url.Values{"To": {to}, "Channel": {"sms"}}
	endpoint := fmt.Sprintf("%s/Services/%s/Verifications", c.BaseURL, serviceSID)
	var v twilioVerification
	if err := c.postForm(endpoint, sid, token, form, &v); err != nil {
		return err
	}
	log.Printf("[twilio][start] to=%s status=%s", to, v.Status)
	return nil
}

// CheckVerification — contrôle le code saisi ; true si le fournisseur l'approuve.
func (c *TwilioClient) CheckVerification(to, code string) (bool, error) {
	if c.DryRun {
		// en dry-run, tout code "000000" est accepté (tests manuels)
		return code == "000000", nil
	}
	sid, token, serviceSID := twilioCreds()
	if sid == "" || token == "" || serviceSID == "" {
		return false, fmt.Errorf("twilio credentials missing from environment")
	}

	form := url.Values{"To": {to}, "Code": {code}}
	endpoint := fmt.Sprintf("%s/Services/%s/VerificationCheck", c.BaseURL, serviceSID)
	var v twilioVerification
	if err := c.postForm(endpoint, sid, token, form, &v); err != nil {
		return false, err
	}
	return v.Valid || v.Status == "approved", nil
}

func (c *TwilioClient) postForm(endpoint, sid, token string, form url.Values, out any) error {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio request: %w", err)
	}
	req.SetBasicAuth(sid, token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		log.Printf("[twilio][err] status=%d body=%s", resp.StatusCode, string(body))
		return fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("twilio parse response: %w", err)
	}
	return nil
}

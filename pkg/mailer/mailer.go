package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"Sistem-Manajemen-Parkir/config"
)

const resendAPI = "https://api.resend.com/emails"

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

// Mailer mengirim email transaksional lewat Resend API. Tanpa API key,
// email di-mock ke stdout supaya development lokal tetap jalan.
type Mailer struct {
	apiKey string
	from   string
}

func NewMailer(cfg *config.AppConfig) *Mailer {
	return &Mailer{apiKey: cfg.RESEND_API_KEY, from: cfg.MAIL_FROM}
}

func (m *Mailer) send(to, subject, htmlBody, textBody string) error {
	if m.apiKey == "" {
		log.Printf("Warning: RESEND_API_KEY kosong, email di-mock. To=%s Subject=%s", to, subject)
		fmt.Printf("\n--- MOCK EMAIL ---\nTo: %s\nSubject: %s\nBody:\n%s\n-------------------\n", to, subject, textBody)
		return nil
	}

	payload := resendEmail{
		From:    m.from,
		To:      to,
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequest("POST", resendAPI, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("gagal membuat request email: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim email via Resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("Resend API error: %s", resp.Status)
	}

	return nil
}

// SendOTP mengirim kode OTP login ke email user. Kode tidak pernah ikut
// masuk ke log aplikasi.
func (m *Mailer) SendOTP(toEmail, code string) error {
	html := fmt.Sprintf(`
		<h2>Kode OTP Login</h2>
		<p>Kode login satu kali Anda adalah:</p>
		<h1 style="letter-spacing: 4px;">%s</h1>
		<p>Kode berlaku selama 5 menit. Jangan bagikan kode ini kepada siapa pun.</p>`, code)
	text := fmt.Sprintf("Kode OTP login Anda: %s (berlaku 5 menit)", code)

	return m.send(toEmail, "Kode OTP Sistem Manajemen Parkir", html, text)
}

package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type IMailService interface {
	SendWelcome(to string) error
	SendResetPassword(to, token string) error
	SendDeletionScheduled(to string) error
}

type SMTPConfig struct {
	Host       string
	Port       int  // 587 STARTTLS or 465 SMTPS
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	RequireTLS bool

	AppName    string
	AppBaseURL string
}

func LoadSMTPConfig() SMTPConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "CultureCompass",
		UseSSL:     port == 465,
		RequireTLS: true,
		AppName:    "CultureCompass",
		AppBaseURL: strings.TrimRight(os.Getenv("FRONTEND_URL"), "/"),
	}
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl, err := template.New("html").Parse(mailHTMLTemplate)
	if err != nil {
		return nil, err
	}
	textTpl, err := template.New("text").Parse(mailTextTemplate)
	if err != nil {
		return nil, err
	}
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
	}, nil
}

func (s *smtpMailService) SendWelcome(to string) error {
	return s.compose(to, mailData{
		Subject: "Welcome to CultureCompass",
		Intro: "Your cultural compass is ready. Browse etiquette guides, save phrases, " +
			"and start your 7-day free trial whenever you like.",
		ButtonURL: s.cfg.AppBaseURL,
		ButtonTxt: "Start Exploring",
	})
}

func (s *smtpMailService) SendResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.AppBaseURL, url.QueryEscape(token))
	return s.compose(to, mailData{
		Subject: "Reset your password",
		Intro: "We received a request to reset your CultureCompass password. " +
			"The link below expires in 30 minutes. If you didn't request this, ignore this email.",
		ButtonURL: link,
		ButtonTxt: "Reset Password",
	})
}

func (s *smtpMailService) SendDeletionScheduled(to string) error {
	return s.compose(to, mailData{
		Subject: "Your account deletion request",
		Intro: "We received your request to delete your CultureCompass account. " +
			"Your data will be removed within 30 days. Sign in again before then to cancel the request.",
	})
}

type mailData struct {
	Subject   string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Subject}}</title>
  <style>
    body { margin:0; padding:0; background:#f4f1ea; color:#2d2a26;
      font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif; }
    .wrapper { width:100%; padding:40px 16px; box-sizing:border-box; }
    .container { max-width:600px; margin:0 auto; background:#ffffff;
      border-radius:12px; overflow:hidden; box-shadow:0 8px 30px rgba(45,42,38,0.12); }
    .header { padding:28px 32px; background:#1d4e4a; }
    .brand { font-weight:700; letter-spacing:1px; font-size:20px; color:#f4e9d8; text-transform:uppercase; }
    .hero { padding:36px 32px; }
    h1 { margin:0 0 16px; font-size:26px; color:#1d4e4a; line-height:1.3; }
    p { margin:0 0 20px; line-height:1.7; color:#4a453e; font-size:16px; }
    .btn { display:inline-block; padding:14px 30px; background:#c2703d; color:#ffffff !important;
      text-decoration:none; border-radius:8px; font-weight:600; font-size:16px; }
    .muted { color:#8a8378; font-size:13px; line-height:1.6; word-break:break-all; }
    .footer { padding:22px 32px; color:#8a8378; font-size:13px; text-align:center;
      border-top:1px solid #ece7dd; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header"><div class="brand">{{.AppName}}</div></div>
      <div class="hero">
        <h1>{{.Subject}}</h1>
        <p>{{.Intro}}</p>
        {{if .ButtonURL}}
          <p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>
          <p class="muted">If the button doesn't work, copy this link into your browser:<br>{{.ButtonURL}}</p>
        {{end}}
      </div>
      <div class="footer">&copy; {{.Year}} {{.AppName}}. Safe travels.</div>
    </div>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Subject}}

{{.Intro}}

{{if .ButtonURL}}Open this link:
{{.ButtonURL}}
{{end}}
— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) compose(to string, data mailData) error {
	data.AppName = s.cfg.AppName
	data.Year = time.Now().Year()

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	return s.send(to, data.Subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()
		return s.transmit(c, auth, to, msg.Bytes())
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err := c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("smtp server %s does not support STARTTLS", s.cfg.Host)
	}

	return s.transmit(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) transmit(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}

package outage

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"
)

var (
	alertFrom        = os.Getenv("ALERT_FROM")
	alertTo          = os.Getenv("ALERT_TO")
	smtpServer       = os.Getenv("SMTP_SERVER")
	smtpPort         = os.Getenv("SMTP_PORT")
	smtpUser         = os.Getenv("SMTP_USER")
	smtpPassword     = os.Getenv("SMTP_PASS")
	smtpAuthDisabled = os.Getenv("SMTP_AUTH_DISABLED")
)

// StartDailySummary emails an outage digest at the end of every day. It never
// returns; run it on its own goroutine.
func (l *Log) StartDailySummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		l.SendDailySummary()
	}
}

// SendDailySummary reads and clears the accumulated outage log and mails an
// HTML digest. Nothing is sent when the log is empty.
func (l *Log) SendDailySummary() {
	summary, err := l.Summarize(true)
	if err != nil || summary.Total == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Service Outage Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total fallbacks: <strong>%d</strong></p>", summary.Total))

	sb.WriteString("<h3>By Service</h3><ul>")
	for service, count := range summary.ByService {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", service, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>By Operation</h3><ul>")
	for op, count := range summary.ByOp {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", op, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, entry := range summary.Entries {
		sb.WriteString(fmt.Sprintf("<li><b>%s %s</b>: %s at %s</li>",
			entry.Service, entry.Op, entry.Reason, entry.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	msg := strings.Join([]string{
		"From: " + alertFrom,
		"To: " + alertTo,
		"Subject: Daily Service Outage Report",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)
	if smtpAuthDisabled != "" {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, alertFrom, []string{alertTo}, []byte(msg)); err != nil {
			log.Printf("Failed to send outage summary: %v", err)
		} else {
			log.Println("Daily outage summary sent via SMTP.")
		}
	}()
}

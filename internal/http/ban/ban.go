package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/erp-dashboard/internal/redissvc"
)

var (
	alertFrom        = os.Getenv("ALERT_FROM")
	alertTo          = os.Getenv("ALERT_TO")
	smtpServer       = os.Getenv("SMTP_SERVER")
	smtpPort         = os.Getenv("SMTP_PORT")
	smtpUser         = os.Getenv("SMTP_USER")
	smtpPassword     = os.Getenv("SMTP_PASS")
	smtpAuthDisabled = os.Getenv("SMTP_AUTH_DISABLED")

	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

// StrikeEntry is one rejected request recorded for the daily abuse report.
type StrikeEntry struct {
	Target string    `json:"target"`
	Route  string    `json:"route"`
	Time   time.Time `json:"time"`
}

const DailyStrikeLogKey = "ratelimit:strikelog:daily"

// RecordStrike appends a rate-limit rejection to the daily log. A missing
// Redis connection is tolerated; the limiter itself still protects the
// route, only the reporting is lost.
func RecordStrike(target, route string) {
	if rdb == nil {
		return
	}
	entry := StrikeEntry{
		Target: target,
		Route:  route,
		Time:   time.Now(),
	}
	data, _ := json.Marshal(entry)
	if err := rdb.RPush(ctx, DailyStrikeLogKey, data).Err(); err != nil {
		log.Printf("failed to record strike: %v", err)
	}
}

func StartDailySummaryLoop(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailySummary()
	}
}

// SendDailySummary drains the strike log, aggregates it by route and by
// client, and mails an HTML report. Nothing is sent on an empty day.
func SendDailySummary() {
	if rdb == nil {
		return
	}
	entries, err := rdb.LRange(ctx, DailyStrikeLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyStrikeLogKey).Err()

	var logs []StrikeEntry
	routeCounts := make(map[string]int)
	targetCounts := make(map[string]int)

	for _, item := range entries {
		var entry StrikeEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
			routeCounts[entry.Route]++
			targetCounts[entry.Target]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Rate-Limit Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total rejections: <strong>%d</strong></p>", len(logs)))

	sb.WriteString("<h3>By Route</h3><ul>")
	for route, count := range routeCounts {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", route, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>By Client</h3><ul>")
	for target, count := range targetCounts {
		sb.WriteString(fmt.Sprintf("<li>%s: %d</li>", target, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, entry := range logs {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b> on <code>%s</code> at %s</li>",
			entry.Target, entry.Route, entry.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	msg := strings.Join([]string{
		"From: " + alertFrom,
		"To: " + alertTo,
		"Subject: Daily Rate-Limit Report",
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
			log.Printf("failed to send daily rate-limit summary: %v", err)
		}
	}()
}

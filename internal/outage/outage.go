package outage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DailyLogKey = "outage:log:daily"

// Entry records one remote-service failure that forced a local fallback.
type Entry struct {
	ID      string    `json:"id"`
	Service string    `json:"service"`
	Op      string    `json:"op"`
	Reason  string    `json:"reason"`
	Time    time.Time `json:"time"`
}

// Summary aggregates the entries accumulated since the last reset.
type Summary struct {
	Total     int            `json:"total"`
	ByService map[string]int `json:"by_service"`
	ByOp      map[string]int `json:"by_op"`
	Entries   []Entry        `json:"entries"`
}

// Log persists outage entries to a redis list so fallback activity is
// observable across restarts of this service.
type Log struct {
	rdb *redis.Client
	ctx context.Context
}

func NewLog(rdb *redis.Client, ctx context.Context) *Log {
	return &Log{rdb: rdb, ctx: ctx}
}

// Record appends one outage entry. Failures to record are swallowed: the
// outage log must never turn a successful fallback into an error.
func (l *Log) Record(service, op string, cause error) {
	if l == nil || l.rdb == nil {
		return
	}
	entry := Entry{
		ID:      uuid.New().String(),
		Service: service,
		Op:      op,
		Reason:  cause.Error(),
		Time:    time.Now(),
	}
	data, _ := json.Marshal(entry)
	_ = l.rdb.RPush(l.ctx, DailyLogKey, data).Err()
}

// Summarize reads all accumulated entries and aggregates them by service and
// operation. When reset is true the log is cleared after reading, as the
// daily reporter does.
func (l *Log) Summarize(reset bool) (Summary, error) {
	s := Summary{ByService: map[string]int{}, ByOp: map[string]int{}, Entries: []Entry{}}
	if l == nil || l.rdb == nil {
		return s, nil
	}

	items, err := l.rdb.LRange(l.ctx, DailyLogKey, 0, -1).Result()
	if err != nil {
		return s, err
	}
	if reset && len(items) > 0 {
		_ = l.rdb.Del(l.ctx, DailyLogKey).Err()
	}

	for _, item := range items {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		s.Entries = append(s.Entries, entry)
		s.ByService[entry.Service]++
		s.ByOp[entry.Service+" "+entry.Op]++
	}
	s.Total = len(s.Entries)
	return s, nil
}

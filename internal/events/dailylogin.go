package events

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-errors"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// EventTypeDailyLogin names the daily login event.
const EventTypeDailyLogin = "daily_login"

// Reward day boundaries are anchored to a fixed UTC-7 offset, not the
// user's local timezone.
var rewardZone = time.FixedZone("UTC-7", -7*60*60)

const debugCooldown = time.Second

// DailyLoginConfig describes the daily login reward: a normal and a weekly
// bonus configuration, gold bases, and the message template.
type DailyLoginConfig struct {
	Normal          RewardConfig `json:"normal"`
	WeeklyBonus     RewardConfig `json:"weeklyBonus"`
	BaseGold        int          `json:"baseGold"`
	WeeklyBonusGold int          `json:"weeklyBonusGold"`
	MessageTemplate string       `json:"messageTemplate"`
	Debug           bool         `json:"debug"`
}

// Validate checks the config is well formed, including the message
// template.
func (c *DailyLoginConfig) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Normal.Validate())
	el.Add(c.WeeklyBonus.Validate())
	if c.BaseGold <= 0 || c.WeeklyBonusGold <= 0 {
		el.Add(fmt.Errorf("gold bases must be positive"))
	}
	if c.MessageTemplate == "" {
		el.Add(fmt.Errorf("daily login must have a message template"))
	} else if _, err := parseMessageTemplate(c.MessageTemplate); err != nil {
		el.Add(fmt.Errorf("parsing message template: %w", err))
	}

	return el.Err()
}

func parseMessageTemplate(text string) (*template.Template, error) {
	return template.New("reward").Funcs(sprig.TxtFuncMap()).Parse(text)
}

// LoadDailyLoginConfig reads the daily login reward definition from a JSON
// file.
func LoadDailyLoginConfig(path string) (*DailyLoginConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading daily login config: %w", err)
	}

	var c DailyLoginConfig
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing daily login config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// rewardDay returns the UTC-7 calendar day as a day count, so two
// timestamps compare by strict day ordering.
func rewardDay(t time.Time) int64 {
	loc := t.In(rewardZone)
	midnight := time.Date(loc.Year(), loc.Month(), loc.Day(), 0, 0, 0, 0, rewardZone)
	return midnight.Unix() / (24 * 60 * 60)
}

// CanClaimReward reports whether now falls on a strictly later UTC-7
// calendar day than the last claim. In debug mode the day boundary is
// replaced by a short fixed cooldown.
func (c *DailyLoginConfig) CanClaimReward(now time.Time, lastClaim time.Time) bool {
	if c.Debug {
		return now.Sub(lastClaim) >= debugCooldown
	}
	return rewardDay(now) > rewardDay(lastClaim)
}

// IsWeeklyBonus reports whether the streak lands on a weekly bonus day.
func IsWeeklyBonus(streak int) bool {
	return streak%7 == 0
}

// DailyLogin claims rewards against a config using an injected generator.
type DailyLogin struct {
	cfg *DailyLoginConfig
	gen *RewardGenerator
}

// NewDailyLogin wires the daily login event handler.
func NewDailyLogin(cfg *DailyLoginConfig, cat *item.Catalog, rng *rand.Rand) *DailyLogin {
	return &DailyLogin{cfg: cfg, gen: NewRewardGenerator(cat, rng)}
}

// Config returns the reward definition.
func (d *DailyLogin) Config() *DailyLoginConfig { return d.cfg }

// Claim attempts a daily login claim for the event's user, advancing the
// streak and producing the reward bundle. The streak restarts at 1 when a
// UTC-7 day was skipped; the event is only mutated on success.
func (d *DailyLogin) Claim(ev *UserEvent, inventoryID string, now time.Time) *result.Result[*EventReward] {
	last := time.UnixMilli(ev.LastOccurrence())
	if !d.cfg.CanClaimReward(now, last) {
		return result.Fail[*EventReward]("daily reward not ready yet")
	}

	streak := ev.Streak() + 1
	if !d.cfg.Debug && rewardDay(now) > rewardDay(last)+1 {
		streak = 1
	}

	cfg := d.cfg.Normal
	gold := d.cfg.BaseGold
	weekly := IsWeeklyBonus(streak)
	if weekly {
		cfg = d.cfg.WeeklyBonus
		gold = d.cfg.WeeklyBonusGold
	}

	bundle := d.gen.GenerateBundle(cfg)
	if !bundle.Success() {
		return result.Fail[*EventReward](bundle.Messages...)
	}
	total := d.gen.GoldReward(gold)

	message, err := d.renderMessage(ev.User(), streak, total, weekly)
	if err != nil {
		return result.Failf[*EventReward]("rendering reward message: %v", err)
	}

	reward := NewEventReward(EventTypeDailyLogin, ev.User(), inventoryID, streak, bundle.Payload, total, message)
	ev.record(now, streak, reward)
	return result.Ok(reward)
}

func (d *DailyLogin) renderMessage(user string, streak, gold int, weekly bool) (string, error) {
	tmpl, err := parseMessageTemplate(d.cfg.MessageTemplate)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	err = tmpl.Execute(&sb, map[string]any{
		"User":   user,
		"Streak": streak,
		"Gold":   gold,
		"Weekly": weekly,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

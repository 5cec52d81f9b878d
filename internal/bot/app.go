// Package bot wires config, storage, the extraction pipeline, the scheduler
// and the chat transport into the running assistant and routes user updates.
package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yusufisl4m/pera-assistant/internal/config"
	"github.com/yusufisl4m/pera-assistant/internal/health"
	"github.com/yusufisl4m/pera-assistant/internal/i18n"
	"github.com/yusufisl4m/pera-assistant/internal/notifier"
	"github.com/yusufisl4m/pera-assistant/internal/plan"
	"github.com/yusufisl4m/pera-assistant/internal/reminder"
	"github.com/yusufisl4m/pera-assistant/internal/sched"
	"github.com/yusufisl4m/pera-assistant/internal/session"
	"github.com/yusufisl4m/pera-assistant/internal/storage"
	"github.com/yusufisl4m/pera-assistant/internal/transport"
	"github.com/yusufisl4m/pera-assistant/internal/transport/telegram"
	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

// briefingTriggerID is the reserved scheduler id of the morning briefing.
const briefingTriggerID = "morning_briefing"

const storeTimeout = 3 * time.Second

type App struct {
	cfgm *config.Manager
	logs *logx.Service
	log  logx.Logger

	store    storage.Store
	sessions session.Sessions
	norm     *plan.Normalizer
	pipe     *plan.Pipeline
	sched    *sched.Service
	notif    *notifier.Service
	rem      *reminder.Service
	adapter  transport.Adapter
	health   *health.Service

	loc     *time.Location
	updates chan transport.Update

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(cfgPath string) (*App, error) {
	bootLog := logx.NewConsole("info")
	cfgm := config.NewManager(cfgPath, bootLog.With(logx.String("comp", "config")))
	cfg, err := cfgm.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logs, log, err := logx.New(logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	adapter, err := telegram.New(telegram.Config{
		Token:       cfg.Telegram.Token,
		PollTimeout: cfg.Telegram.PollTimeout.Std(),
	}, log.With(logx.String("comp", "telegram")))
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(storage.Config{
		Path:        cfg.Storage.Path,
		BusyTimeout: cfg.Storage.BusyTimeout.Std(),
	}, log.With(logx.String("comp", "storage")))
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	loc := cfg.Location()
	norm := plan.NewNormalizer(cfg.Planner.Vocabulary, cfg.Planner.FuzzyThreshold)
	pipe := plan.NewPipeline(norm, func() time.Time { return time.Now().In(loc) })

	schedSvc := sched.New(loc, log.With(logx.String("comp", "scheduler")))
	notifSvc := notifier.New(notifier.Config{
		Workers:    cfg.Notifier.Workers,
		QueueSize:  cfg.Notifier.QueueSize,
		RatePerSec: cfg.Notifier.RatePerSec,
	}, sender{adapter}, log.With(logx.String("comp", "notifier")))

	a := &App{
		cfgm:     cfgm,
		logs:     logs,
		log:      log.With(logx.String("comp", "app")),
		store:    store,
		sessions: session.NewRegistry(),
		norm:     norm,
		pipe:     pipe,
		sched:    schedSvc,
		notif:    notifSvc,
		adapter:  adapter,
		loc:      loc,
		updates:  make(chan transport.Update, 256),
	}
	a.rem = reminder.New(store, schedSvc, a.deliverReminder, log.With(logx.String("comp", "reminder")))
	if cfg.Health.Enabled {
		a.health = health.New(cfg.Health.Addr, log.With(logx.String("comp", "health")))
	}
	return a, nil
}

// sender adapts the transport to the notifier's minimal contract.
type sender struct{ a transport.Adapter }

func (s sender) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := s.a.SendText(ctx, chatID, text, nil)
	return err
}

func (a *App) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	// Triggers must converge to the persisted task set before anything fires.
	rehCtx, rehCancel := context.WithTimeout(runCtx, 30*time.Second)
	installed, err := a.rem.Rehydrate(rehCtx)
	rehCancel()
	if err != nil {
		cancel()
		return fmt.Errorf("rehydrate: %w", err)
	}
	a.log.Info("triggers rehydrated", logx.Int("count", installed))

	a.scheduleBriefing(a.cfgm.Get())

	a.notif.Start(runCtx)
	a.sched.Start(runCtx)
	if a.health != nil {
		a.health.Start()
	}
	if err := a.adapter.Start(runCtx, a.updates); err != nil {
		cancel()
		// Unwind the services started above so a failed boot leaves nothing
		// running behind the returned error.
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		a.sched.Stop(stopCtx)
		a.notif.Stop(stopCtx)
		if a.health != nil {
			a.health.Stop(stopCtx)
		}
		stopCancel()
		return err
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.dispatchLoop(runCtx)
	}()

	sub := a.cfgm.Subscribe(4)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.cfgm.Unsubscribe(sub)
		for {
			select {
			case <-runCtx.Done():
				return
			case cfg, ok := <-sub:
				if !ok {
					return
				}
				a.applyConfig(cfg)
			}
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		_ = a.cfgm.Watch(runCtx)
	}()

	a.log.Info("app started")
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	a.log.Info("stopping")
	if a.cancel != nil {
		a.cancel()
	}

	_ = a.adapter.Stop(ctx)
	a.sched.Stop(ctx)
	a.notif.Stop(ctx)
	if a.health != nil {
		a.health.Stop(ctx)
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		a.log.Warn("shutdown timed out waiting for loops")
	}

	if err := a.store.Close(); err != nil {
		a.log.Warn("storage close", logx.Err(err))
	}
	a.log.Info("stopped")
	return a.logs.Close()
}

// applyConfig applies the hot-reloadable subset of a republished config.
func (a *App) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if err := a.logs.Apply(logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	}); err != nil {
		a.log.Warn("logging reload failed", logx.Err(err))
	}
	a.norm.Apply(cfg.Planner.Vocabulary, cfg.Planner.FuzzyThreshold)
	a.notif.Apply(notifier.Config{
		Workers:    cfg.Notifier.Workers,
		QueueSize:  cfg.Notifier.QueueSize,
		RatePerSec: cfg.Notifier.RatePerSec,
	})
	a.scheduleBriefing(cfg)
	a.log.Info("config applied")
}

// scheduleBriefing (re)installs the daily morning-briefing trigger.
func (a *App) scheduleBriefing(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if !cfg.Briefing.Enabled || cfg.Telegram.AdminChatID == 0 {
		a.sched.Cancel(briefingTriggerID)
		return
	}
	admin := cfg.Telegram.AdminChatID
	at := fmt.Sprintf("%02d:%02d", cfg.Briefing.Hour, cfg.Briefing.Minute)
	err := a.sched.Schedule(briefingTriggerID, at, nil, func(ctx context.Context) {
		a.sendBriefing(ctx, admin, true)
	})
	if err != nil {
		a.log.Warn("briefing schedule failed", logx.Err(err))
	}
}

// deliverReminder is the trigger payload: localize and hand off to the
// async notifier. Failures are logged, never retried.
func (a *App) deliverReminder(owner int64, description string) {
	lang := a.language(owner)
	text := fmt.Sprintf(i18n.T(lang, "reminder"), description)
	if err := a.notif.Deliver(owner, text); err != nil {
		a.log.Warn("reminder enqueue failed", logx.Int64("owner", owner), logx.Err(err))
	}
}

// language resolves a user's persisted language, defaulting to TR.
func (a *App) language(userID int64) i18n.Lang {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	v, err := a.store.GetLanguage(ctx, userID)
	if err != nil {
		return i18n.TR
	}
	return i18n.Normalize(v)
}

package bot

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/yusufisl4m/pera-assistant/internal/i18n"
	"github.com/yusufisl4m/pera-assistant/internal/session"
	"github.com/yusufisl4m/pera-assistant/internal/transport"
	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

func (a *App) dispatchLoop(ctx context.Context) {
	a.log.Info("dispatcher started")
	for {
		select {
		case <-ctx.Done():
			a.log.Info("dispatcher stopped")
			return
		case up := <-a.updates:
			a.routeUpdate(ctx, up)
		}
	}
}

func (a *App) routeUpdate(ctx context.Context, up transport.Update) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("panic in update handler", logx.Any("panic", r), logx.String("stack", string(debug.Stack())))
		}
	}()

	switch up.Kind {
	case transport.UpdateMessage:
		if up.Message != nil {
			a.routeMessage(ctx, up.Message)
		}
	case transport.UpdateCallback:
		if up.Callback != nil {
			a.routeCallback(ctx, up.Callback)
		}
	}
}

func (a *App) routeMessage(ctx context.Context, msg *transport.Message) {
	uid := msg.FromID
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	// Plan entry: raw text while awaiting is plan input, but a command aborts
	// the entry silently without being processed as plan text.
	if a.sessions.Get(uid).State == session.AwaitingText {
		if strings.HasPrefix(text, "/") {
			a.sessions.Reset(uid)
			return
		}
		a.handleSubmitPlan(ctx, msg, text)
		return
	}

	if strings.HasPrefix(text, "/") {
		if cmd, _, _ := strings.Cut(strings.TrimPrefix(text, "/"), " "); strings.SplitN(cmd, "@", 2)[0] == "start" {
			a.handleStart(ctx, msg)
		}
		return
	}

	// Persistent menu buttons match catalog text in either language.
	switch {
	case a.isMenuButton(text, "btn_tasks"):
		a.handleListTasks(ctx, msg)
	case a.isMenuButton(text, "btn_briefing"):
		a.sendBriefing(ctx, msg.ChatID, false)
	case a.isMenuButton(text, "btn_github"):
		lang := a.language(uid)
		_, _ = a.adapter.SendText(ctx, msg.ChatID, i18n.T(lang, "github_placeholder"), nil)
	case a.isMenuButton(text, "btn_settings"):
		a.handleSettings(ctx, msg)
	}
}

func (a *App) isMenuButton(text, key string) bool {
	return text == i18n.T(i18n.TR, key) || text == i18n.T(i18n.EN, key)
}

func (a *App) routeCallback(ctx context.Context, cb *transport.Callback) {
	data := strings.TrimSpace(cb.Data)
	switch {
	case strings.HasPrefix(data, "lang_"):
		a.cbSelectLanguage(ctx, cb, strings.TrimPrefix(data, "lang_"))
	case data == "conf_tasks":
		a.cbTaskManagement(ctx, cb)
	case data == "conf_lang":
		a.cbLanguageMenu(ctx, cb)
	case data == "conf_info":
		a.cbInfo(ctx, cb)
	case data == "back_settings":
		a.cbBackToSettings(ctx, cb)
	case data == "action_add_task":
		a.cbBeginPlanEntry(ctx, cb)
	case strings.HasPrefix(data, "del_"):
		a.cbDeleteTask(ctx, cb, strings.TrimPrefix(data, "del_"))
	case data == "confirm_plan":
		a.cbConfirmPlan(ctx, cb)
	case data == "cancel_plan":
		a.cbCancelPlan(ctx, cb)
	default:
		_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
	}
}

package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/yusufisl4m/pera-assistant/internal/i18n"
	"github.com/yusufisl4m/pera-assistant/internal/plan"
	"github.com/yusufisl4m/pera-assistant/internal/storage"
	"github.com/yusufisl4m/pera-assistant/internal/transport"
	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

func (a *App) handleStart(ctx context.Context, msg *transport.Message) {
	_, _ = a.adapter.SendText(ctx, msg.ChatID, i18n.T(i18n.TR, "welcome_title"), nil)
	_, _ = a.adapter.SendText(ctx, msg.ChatID, i18n.T(i18n.TR, "select_lang"), &transport.SendOptions{
		Markup: languageKeyboard(i18n.TR, false),
	})
}

func (a *App) cbSelectLanguage(ctx context.Context, cb *transport.Callback, code string) {
	lang := i18n.Normalize(code)
	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	err := a.store.SetLanguage(sctx, cb.FromID, string(lang))
	cancel()
	if err != nil {
		a.log.Warn("set language failed", logx.Int64("user", cb.FromID), logx.Err(err))
	}
	_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
	_, _ = a.adapter.SendText(ctx, cb.ChatID, i18n.T(lang, "menu_msg"), &transport.SendOptions{
		Markup: menuKeyboard(lang),
	})
}

func (a *App) handleListTasks(ctx context.Context, msg *transport.Message) {
	lang := a.language(msg.FromID)
	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	tasks, err := a.rem.List(sctx, msg.FromID)
	cancel()
	if err != nil {
		a.log.Warn("list tasks failed", logx.Int64("user", msg.FromID), logx.Err(err))
		return
	}
	if len(tasks) == 0 {
		_, _ = a.adapter.SendText(ctx, msg.ChatID, i18n.T(lang, "no_tasks"), nil)
		return
	}
	_, _ = a.adapter.SendText(ctx, msg.ChatID, tasksText(lang, tasks), nil)
}

// sendBriefing renders today's digest for chatID. When silentWhenEmpty is set
// (the scheduled morning run), a user with no tasks at all gets nothing;
// pressing the menu button always answers.
func (a *App) sendBriefing(ctx context.Context, chatID int64, silentWhenEmpty bool) {
	lang := a.language(chatID)
	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	valid, total, err := a.rem.Digest(sctx, chatID, a.pipe.Now())
	cancel()
	if err != nil {
		a.log.Warn("digest failed", logx.Int64("user", chatID), logx.Err(err))
		return
	}
	switch {
	case total == 0:
		if !silentWhenEmpty {
			_, _ = a.adapter.SendText(ctx, chatID, i18n.T(lang, "no_tasks"), nil)
		}
	case len(valid) == 0:
		_, _ = a.adapter.SendText(ctx, chatID, i18n.T(lang, "digest_empty"), nil)
	default:
		_, _ = a.adapter.SendText(ctx, chatID, digestText(lang, valid), nil)
	}
}

func (a *App) handleSettings(ctx context.Context, msg *transport.Message) {
	lang := a.language(msg.FromID)
	_, _ = a.adapter.SendText(ctx, msg.ChatID, i18n.T(lang, "settings_title"), &transport.SendOptions{
		Markup: settingsKeyboard(lang),
	})
}

func (a *App) cbTaskManagement(ctx context.Context, cb *transport.Callback) {
	lang := a.language(cb.FromID)
	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	tasks, err := a.rem.List(sctx, cb.FromID)
	cancel()
	if err != nil {
		a.log.Warn("list tasks failed", logx.Int64("user", cb.FromID), logx.Err(err))
		_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
		return
	}
	_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
	_ = a.adapter.EditText(ctx, ref(cb), i18n.T(lang, "task_mgmt"), &transport.SendOptions{
		Markup: taskManagementKeyboard(lang, tasks),
	})
}

func (a *App) cbLanguageMenu(ctx context.Context, cb *transport.Callback) {
	lang := a.language(cb.FromID)
	_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
	_ = a.adapter.EditText(ctx, ref(cb), i18n.T(lang, "select_lang"), &transport.SendOptions{
		Markup: languageKeyboard(lang, true),
	})
}

func (a *App) cbInfo(ctx context.Context, cb *transport.Callback) {
	lang := a.language(cb.FromID)
	_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
	_ = a.adapter.EditText(ctx, ref(cb), i18n.T(lang, "info_msg"), &transport.SendOptions{
		Markup: settingsKeyboard(lang),
	})
}

func (a *App) cbBackToSettings(ctx context.Context, cb *transport.Callback) {
	a.sessions.Reset(cb.FromID)
	lang := a.language(cb.FromID)
	_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
	_ = a.adapter.EditText(ctx, ref(cb), i18n.T(lang, "settings_title"), &transport.SendOptions{
		Markup: settingsKeyboard(lang),
	})
}

func (a *App) cbBeginPlanEntry(ctx context.Context, cb *transport.Callback) {
	a.sessions.BeginEntry(cb.FromID)
	lang := a.language(cb.FromID)
	_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
	_, _ = a.adapter.SendText(ctx, cb.ChatID, i18n.T(lang, "enter_task"), nil)
}

func (a *App) handleSubmitPlan(ctx context.Context, msg *transport.Message, text string) {
	lang := a.language(msg.FromID)

	jobs, err := a.pipe.BuildDraft(text)
	if err != nil {
		a.sessions.Reset(msg.FromID)
		if errors.Is(err, plan.ErrNoTimeTokens) {
			_, _ = a.adapter.SendText(ctx, msg.ChatID, i18n.T(lang, "format_error"), nil)
			return
		}
		a.log.Warn("draft build failed", logx.Int64("user", msg.FromID), logx.Err(err))
		return
	}

	a.sessions.StageDraft(msg.FromID, jobs)
	_, _ = a.adapter.SendText(ctx, msg.ChatID, previewText(lang, jobs), &transport.SendOptions{
		Markup: confirmKeyboard(lang),
	})
}

func (a *App) cbConfirmPlan(ctx context.Context, cb *transport.Callback) {
	lang := a.language(cb.FromID)
	draft, ok := a.sessions.TakeDraft(cb.FromID)
	if !ok {
		_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
		return
	}
	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	created, failed := a.rem.ConfirmPlan(sctx, cb.FromID, draft)
	cancel()

	_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
	var reply string
	if failed > 0 {
		reply = fmt.Sprintf(i18n.T(lang, "plan_partial"), created, failed)
	} else {
		reply = fmt.Sprintf(i18n.T(lang, "plan_saved"), created)
	}
	_ = a.adapter.EditText(ctx, ref(cb), reply, nil)
}

func (a *App) cbCancelPlan(ctx context.Context, cb *transport.Callback) {
	lang := a.language(cb.FromID)
	a.sessions.Reset(cb.FromID)
	_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
	_ = a.adapter.EditText(ctx, ref(cb), i18n.T(lang, "plan_cancel"), nil)
}

func (a *App) cbDeleteTask(ctx context.Context, cb *transport.Callback, rawID string) {
	lang := a.language(cb.FromID)
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
		return
	}
	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	err = a.rem.Delete(sctx, id)
	cancel()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		a.log.Warn("delete task failed", logx.Int64("task_id", id), logx.Err(err))
		_ = a.adapter.AnswerCallback(ctx, cb.ID, "")
		return
	}
	_ = a.adapter.AnswerCallback(ctx, cb.ID, i18n.T(lang, "task_deleted"))

	// Refresh the management view so the deleted row disappears.
	sctx, cancel = context.WithTimeout(ctx, storeTimeout)
	tasks, lerr := a.rem.List(sctx, cb.FromID)
	cancel()
	if lerr != nil {
		return
	}
	_ = a.adapter.EditText(ctx, ref(cb), i18n.T(lang, "task_mgmt"), &transport.SendOptions{
		Markup: taskManagementKeyboard(lang, tasks),
	})
}

func ref(cb *transport.Callback) transport.MessageRef {
	return transport.MessageRef{ChatID: cb.ChatID, MessageID: cb.MessageID}
}

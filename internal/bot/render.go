package bot

import (
	"fmt"
	"strings"

	"github.com/yusufisl4m/pera-assistant/internal/i18n"
	"github.com/yusufisl4m/pera-assistant/internal/plan"
	"github.com/yusufisl4m/pera-assistant/internal/storage"
	"github.com/yusufisl4m/pera-assistant/internal/transport"
)

const endDateFormat = "02.01.2006"

func menuKeyboard(lang i18n.Lang) *transport.Markup {
	return &transport.Markup{
		Reply: [][]string{
			{i18n.T(lang, "btn_tasks"), i18n.T(lang, "btn_github")},
			{i18n.T(lang, "btn_briefing"), i18n.T(lang, "btn_settings")},
		},
		ResizeReply: true,
	}
}

func settingsKeyboard(lang i18n.Lang) *transport.Markup {
	return &transport.Markup{Inline: [][]transport.Button{
		{{Text: i18n.T(lang, "set_tasks"), Data: "conf_tasks"}},
		{
			{Text: i18n.T(lang, "set_lang"), Data: "conf_lang"},
			{Text: i18n.T(lang, "set_info"), Data: "conf_info"},
		},
	}}
}

func languageKeyboard(lang i18n.Lang, withBack bool) *transport.Markup {
	m := &transport.Markup{Inline: [][]transport.Button{
		{
			{Text: "🇹🇷 Türkçe", Data: "lang_TR"},
			{Text: "🇬🇧 English", Data: "lang_EN"},
		},
	}}
	if withBack {
		m.Inline = append(m.Inline, []transport.Button{
			{Text: i18n.T(lang, "back"), Data: "back_settings"},
		})
	}
	return m
}

func taskManagementKeyboard(lang i18n.Lang, tasks []storage.Task) *transport.Markup {
	m := &transport.Markup{Inline: [][]transport.Button{
		{{Text: i18n.T(lang, "add_task"), Data: "action_add_task"}},
	}}
	for _, t := range tasks {
		m.Inline = append(m.Inline, []transport.Button{{
			Text: fmt.Sprintf("🗑️ %s %s", t.TimeOfDay, t.Description),
			Data: fmt.Sprintf("del_%d", t.ID),
		}})
	}
	m.Inline = append(m.Inline, []transport.Button{
		{Text: i18n.T(lang, "back"), Data: "back_settings"},
	})
	return m
}

func confirmKeyboard(lang i18n.Lang) *transport.Markup {
	return &transport.Markup{Inline: [][]transport.Button{
		{
			{Text: i18n.T(lang, "btn_confirm"), Data: "confirm_plan"},
			{Text: i18n.T(lang, "btn_cancel"), Data: "cancel_plan"},
		},
	}}
}

func previewText(lang i18n.Lang, jobs []plan.Job) string {
	var b strings.Builder
	b.WriteString(i18n.T(lang, "preview_title"))
	for _, j := range jobs {
		b.WriteString(fmt.Sprintf("\n🔹 <b>%s</b> - %s", j.TimeOfDay, j.Description))
		if j.EndDate != nil {
			b.WriteString(fmt.Sprintf(i18n.T(lang, "end_note"), j.EndDate.Format(endDateFormat)))
		}
	}
	return b.String()
}

func tasksText(lang i18n.Lang, tasks []storage.Task) string {
	var b strings.Builder
	b.WriteString(i18n.T(lang, "tasks_title"))
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("\n⏰ <b>%s</b> - %s", t.TimeOfDay, t.Description))
		if t.EndDate != nil {
			b.WriteString(fmt.Sprintf(i18n.T(lang, "end_note"), t.EndDate.Format(endDateFormat)))
		}
	}
	return b.String()
}

func digestText(lang i18n.Lang, tasks []storage.Task) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(i18n.T(lang, "digest_title"), len(tasks)))
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("\n🔹 <b>%s</b> - %s", t.TimeOfDay, t.Description))
	}
	b.WriteString("\n")
	b.WriteString(i18n.T(lang, "digest_footer"))
	return b.String()
}

// Package i18n holds the user-facing text catalog. Per-user language is
// persisted in the settings table; TR is the default.
package i18n

type Lang string

const (
	TR Lang = "TR"
	EN Lang = "EN"
)

// Normalize maps arbitrary stored values to a supported language.
func Normalize(v string) Lang {
	if Lang(v) == EN {
		return EN
	}
	return TR
}

// T looks up a catalog key; unknown keys fall back to the key itself so a
// missing translation degrades visibly instead of crashing.
func T(lang Lang, key string) string {
	if m, ok := texts[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := texts[TR][key]; ok {
		return v
	}
	return key
}

var texts = map[Lang]map[string]string{
	TR: {
		"welcome_title":      "🤖 <b>PERA ASİSTAN AKTİF</b> 🤖",
		"select_lang":        "Lütfen dil seçiniz / Please select language:",
		"menu_msg":           "Hoş geldin patron! Günlük rutinini organize etmek ve projelerini takip etmek için hazırım.\n\n👇 Aşağıdaki sabit menüden işlemlerini yönetebilirsin.",
		"btn_tasks":          "📋 Görevlerim",
		"btn_github":         "🐙 GitHub Durumu",
		"btn_briefing":       "☕ Sabah Brifingi",
		"btn_settings":       "⚙️ Ayarlar",
		"settings_title":     "⚙️ <b>AYARLAR MENÜSÜ</b>\nLütfen düzenlemek istediğiniz alanı seçin:",
		"set_tasks":          "📋 Görev Yönetimi",
		"set_lang":           "🌐 Dil / Language",
		"set_info":           "ℹ️ Bilgi",
		"back":               "🔙 Geri",
		"add_task":           "➕ Görev Ekle",
		"task_mgmt":          "📋 <b>Görev Yönetimi</b>\nYeni görev ekleyebilir veya mevcutları silebilirsiniz:",
		"enter_task":         "✍️ Lütfen planınızı yazın:\n<i>(Örn: 08:00 Kahvaltı veya 15:30 Toplantı yarına kadar)</i>",
		"no_tasks":           "📭 Planlanmış görevin yok. Keyfine bak! 😎",
		"tasks_title":        "📂 <b>Kayıtlı Planların:</b>\n──────────────",
		"format_error":       "⚠️ Saat formatı bulunamadı. Lütfen '08:00 Görev' şeklinde yazın.",
		"preview_title":      "📋 <b>Plan Analizi:</b>\n──────────────",
		"btn_confirm":        "✅ Onayla",
		"btn_cancel":         "❌ İptal",
		"plan_saved":         "✅ %d Görev Hafızaya Alındı ve Zamanlandı!",
		"plan_partial":       "⚠️ %d görev kaydedildi, %d görev zamanlanamadı.",
		"plan_cancel":        "❌ İşlem iptal edildi.",
		"task_deleted":       "✅ Görev silindi!",
		"reminder":           "⏰ <b>VAKİT GELDİ:</b>\n👉 %s",
		"digest_title":       "☀️ <b>GÜNAYDIN!</b>\nİşte bugünkü %d görevin:\n──────────────",
		"digest_footer":      "──────────────\nHarika bir gün olsun! 🚀",
		"digest_empty":       "Günaydın! ☕\nBugün için planlanmış bir görevin görünmüyor. Keyfine bak! 😎",
		"end_note":           " (Bitiş: %s)",
		"github_placeholder": "🔍 <b>GitHub Durumu:</b>\nAPI bağlantısı bekleniyor... (Yakında eklenecek)",
		"info_msg": "ℹ️ <b>PERA ASİSTAN KULLANIM KILAVUZU</b>\n\n" +
			"🤖 <b>Ben Kimim?</b>\nSizin için günlük işleri organize eden, sabahları brifing veren akıllı kişisel asistanınızım.\n\n" +
			"🎛 <b>Özellikler:</b>\n" +
			"• <b>Görevlerim:</b> Günlük planlarınızı listeler.\n" +
			"• <b>Sabah Brifingi:</b> Her sabah günün özetini sunar.\n" +
			"• <b>Ayarlar:</b> Yeni görev ekleyebilir veya silebilirsiniz.\n\n" +
			"💡 <i>Görev eklerken doğal dille yazabilirsiniz (Örn: 20:00 Spor yap).</i>",
	},
	EN: {
		"welcome_title":      "🤖 <b>PERA ASSISTANT ACTIVE</b> 🤖",
		"select_lang":        "Please select language:",
		"menu_msg":           "Welcome boss! I am ready to organize your daily routine and track your projects.\n\n👇 Use the pinned menu below to manage your tasks.",
		"btn_tasks":          "📋 My Tasks",
		"btn_github":         "🐙 GitHub Status",
		"btn_briefing":       "☕ Morning Briefing",
		"btn_settings":       "⚙️ Settings",
		"settings_title":     "⚙️ <b>SETTINGS MENU</b>\nPlease select an area to manage:",
		"set_tasks":          "📋 Task Management",
		"set_lang":           "🌐 Language",
		"set_info":           "ℹ️ Info",
		"back":               "🔙 Back",
		"add_task":           "➕ Add Task",
		"task_mgmt":          "📋 <b>Task Management</b>\nAdd a new task or delete existing ones:",
		"enter_task":         "✍️ Please enter your plan:\n<i>(e.g., 08:00 Breakfast or 15:30 Meeting until tomorrow)</i>",
		"no_tasks":           "📭 You have no scheduled tasks. Enjoy your day! 😎",
		"tasks_title":        "📂 <b>Your Scheduled Tasks:</b>\n──────────────",
		"format_error":       "⚠️ No time token found. Please write like '08:00 Task'.",
		"preview_title":      "📋 <b>Plan Analysis:</b>\n──────────────",
		"btn_confirm":        "✅ Confirm",
		"btn_cancel":         "❌ Cancel",
		"plan_saved":         "✅ %d task(s) saved and scheduled!",
		"plan_partial":       "⚠️ %d task(s) saved, %d could not be scheduled.",
		"plan_cancel":        "❌ Operation cancelled.",
		"task_deleted":       "✅ Task deleted!",
		"reminder":           "⏰ <b>TIME'S UP:</b>\n👉 %s",
		"digest_title":       "☀️ <b>GOOD MORNING!</b>\nHere are your %d task(s) for today:\n──────────────",
		"digest_footer":      "──────────────\nHave a great day! 🚀",
		"digest_empty":       "Good morning! ☕\nNothing planned for today. Enjoy your day! 😎",
		"end_note":           " (Ends: %s)",
		"github_placeholder": "🔍 <b>GitHub Status:</b>\nAwaiting API connection... (Coming soon)",
		"info_msg": "ℹ️ <b>PERA ASSISTANT USER GUIDE</b>\n\n" +
			"🤖 <b>Who am I?</b>\nI am your smart personal assistant that organizes your daily tasks and provides morning briefings.\n\n" +
			"🎛 <b>Features:</b>\n" +
			"• <b>My Tasks:</b> Lists your daily plans.\n" +
			"• <b>Morning Briefing:</b> Summarizes your day every morning.\n" +
			"• <b>Settings:</b> You can add or remove tasks here.\n\n" +
			"💡 <i>You can use natural language to add tasks (e.g., 20:00 Workout).</i>",
	},
}
